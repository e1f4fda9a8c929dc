package main

import (
	"log"
	"net/http"
	"route-form-service/internal/adapters/solver"
	"route-form-service/internal/api"
	"route-form-service/internal/config"
	"route-form-service/web"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the upstream solver client behind the page host and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	upstream := solver.NewHTTPSolver(
		cfg.SolverURL,
		solver.WithHTTPClient(&http.Client{Timeout: cfg.SolverTimeout}),
	)

	router, err := api.NewRouter(upstream, api.Assets{
		Index:          web.Index,
		Static:         web.Static,
		WasmDir:        cfg.WasmDir,
		SolverEndpoint: upstream.Endpoint(),
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Server listening addr=:%s solver=%s wasm_dir=%s", cfg.Port, upstream.Endpoint(), cfg.WasmDir)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Upper bound is the solver timeout plus headroom for rendering.
		WriteTimeout: cfg.SolverTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
