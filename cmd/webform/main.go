//go:build js && wasm

// Command webform is the browser build of the route form controller.
//
//	GOOS=js GOARCH=wasm go build -o web/app/main.wasm ./cmd/webform
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/app/
package main

import (
	"context"
	"log"
	"route-form-service/internal/adapters/solver"
	"route-form-service/internal/dom/jsdom"
	"route-form-service/internal/form"
)

func main() {
	doc := jsdom.New()

	// No client timeout: the browser fetch governs the request lifetime.
	ctrl, err := form.New(doc, solver.NewHTTPSolver(doc.Origin()), form.NotifierFunc(doc.Alert))
	if err != nil {
		log.Printf("form controller not started: %v", err)
		return
	}
	ctrl.Bind(context.Background())

	// Listeners live for the life of the page.
	select {}
}
