package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"route-form-service/internal/adapters/solver"
	"route-form-service/internal/dom/htmldom"
	"route-form-service/internal/domain"
	"route-form-service/internal/form"
	"route-form-service/web"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, h *PageHandler, values url.Values) *htmldom.Document {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := htmldom.ParseString(rec.Body.String())
	require.NoError(t, err)
	return doc
}

func TestPageGetServesIndex(t *testing.T) {
	h := &PageHandler{Index: web.Index, Solver: solver.NewMockSolver(sampleResult(), nil)}

	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(web.Index), rec.Body.String())
}

func TestPageUnknownPath(t *testing.T) {
	h := &PageHandler{Index: web.Index, Solver: solver.NewMockSolver(sampleResult(), nil)}

	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageFallbackRendersResult(t *testing.T) {
	m := solver.NewMockSolver(sampleResult(), nil)
	h := &PageHandler{Index: web.Index, Solver: m}

	doc := postForm(t, h, url.Values{form.LocationsField: {"A", "B", "C"}})

	assert.Equal(t, [][]string{{"A", "B", "C"}}, m.Calls())

	list, err := doc.ElementByID(form.RouteListID)
	require.NoError(t, err)
	var got []string
	for _, li := range list.Children() {
		got = append(got, li.TextContent())
	}
	assert.Equal(t, []string{"A", "C", "B"}, got)

	distance, err := doc.ElementByID(form.DistanceID)
	require.NoError(t, err)
	assert.Equal(t, "Total Distance: 12.35 km", distance.TextContent())

	link, err := doc.ElementByID(form.MapLinkID)
	require.NoError(t, err)
	href, _ := link.Attribute("href")
	assert.Equal(t, "https://maps.example/x", href)
	assert.Equal(t, "block", link.Style("display"))

	// the third value needed an extra field
	f, err := doc.GetElementByID(form.FormID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, doc.FormValues(f, form.LocationsField))

	container, err := doc.ElementByID(form.LocationsContainerID)
	require.NoError(t, err)
	inputs := container.Children()
	require.Len(t, inputs, 3)
	placeholder, _ := inputs[2].Attribute("placeholder")
	assert.Equal(t, "Enter location 3", placeholder)
}

func TestPageFallbackShowsAlertOnFailure(t *testing.T) {
	m := solver.NewMockSolver(domain.SolverResult{}, &solver.RequestFailedError{Status: 500})
	h := &PageHandler{Index: web.Index, Solver: m}

	doc := postForm(t, h, url.Values{form.LocationsField: {"A", "B"}})

	section, err := doc.ElementByID("result")
	require.NoError(t, err)
	children := section.Children()
	require.NotEmpty(t, children)
	role, _ := children[0].Attribute("role")
	assert.Equal(t, "alert", role)
	assert.Equal(t, form.FailureMessage, children[0].TextContent())

	link, err := doc.ElementByID(form.MapLinkID)
	require.NoError(t, err)
	assert.Equal(t, "none", link.Style("display"))
}

func TestPageFallbackWithoutLocations(t *testing.T) {
	m := solver.NewMockSolver(sampleResult(), nil)
	h := &PageHandler{Index: web.Index, Solver: m}

	postForm(t, h, url.Values{})

	assert.Equal(t, [][]string{{}}, m.Calls())
}

func TestPageMethodNotAllowed(t *testing.T) {
	h := &PageHandler{Index: web.Index, Solver: solver.NewMockSolver(sampleResult(), nil)}

	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
