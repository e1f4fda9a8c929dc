package handlers

import (
	"bytes"
	"log"
	"net/http"
	"route-form-service/internal/dom/htmldom"
	"route-form-service/internal/form"
	"route-form-service/internal/platform/obs"
	"route-form-service/internal/ports"
)

// Cap on urlencoded bodies accepted by the fallback form post.
const maxFormBody = 64 << 10

// PageHandler serves the route form document.
//
// GET renders the page as embedded. POST is the fallback for browsers that never
// load the WebAssembly controller: the same form.Controller runs against a parsed
// copy of the page and the resulting document is sent back.
type PageHandler struct {
	Index  []byte
	Solver ports.Solver
}

type alertCollector []string

func (a *alertCollector) Alert(msg string) { *a = append(*a, msg) }

func (h *PageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			w.Write(h.Index)
		}
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *PageHandler) submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	locations := r.PostForm[form.LocationsField]
	if locations == nil {
		locations = []string{}
	}

	doc, err := htmldom.Parse(bytes.NewReader(h.Index))
	if err != nil {
		log.Printf("fallback parse failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	alerts := &alertCollector{}
	ctrl, err := form.New(doc, h.Solver, alerts, form.Synchronous())
	if err != nil {
		log.Printf("fallback controller failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := restoreLocations(doc, ctrl, locations); err != nil {
		log.Printf("fallback restore failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := ctrl.Submit(r.Context(), locations); err != nil {
		log.Printf("fallback submit failed: req_id=%s locations=%d err=%v", obs.RequestID(r.Context()), len(locations), err)
		if len(*alerts) == 0 {
			alerts.Alert(form.FailureMessage)
		}
	}

	for _, msg := range *alerts {
		showAlert(doc, msg)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		log.Printf("fallback render failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// restoreLocations refills the submitted values, adding inputs when the user had added fields.
func restoreLocations(doc *htmldom.Document, ctrl *form.Controller, locations []string) error {
	f, err := doc.GetElementByID(form.FormID)
	if err != nil {
		return err
	}

	for _, v := range doc.SetFieldValues(f, form.LocationsField, locations) {
		ctrl.AddLocationField().SetAttribute("value", v)
	}
	return nil
}

// showAlert puts msg in a role="alert" box at the top of the result section, or of the body.
func showAlert(doc *htmldom.Document, msg string) {
	box := doc.CreateElement("div").(*htmldom.Element)
	box.SetAttribute("role", "alert")
	box.SetTextContent(msg)

	if section, err := doc.ElementByID("result"); err == nil {
		section.Prepend(box)
		return
	}
	if body := doc.Body(); body != nil {
		body.Prepend(box)
	}
}
