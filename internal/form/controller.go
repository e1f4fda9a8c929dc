// Package form drives the route form: it grows the list of location inputs,
// submits them to the solver and renders the returned route.
//
// The controller only touches the page through the dom interfaces, acquiring
// every element it needs once in New.
package form

import (
	"context"
	"errors"
	"fmt"
	"log"
	"route-form-service/internal/dom"
	"route-form-service/internal/ports"
	"sync"
)

// Element ids the hosted document must provide.
const (
	FormID               = "tspForm"
	LocationsContainerID = "locationsContainer"
	AddLocationButtonID  = "addLocationBtn"
	RouteListID          = "routeList"
	DistanceID           = "distance"
	MapLinkID            = "googleMapsLink"
)

// Name under which every location input is submitted.
const LocationsField = "locations"

// Fixed text shown to the user for any RequestFailed condition.
const FailureMessage = "Failed to calculate the route."

var ErrMissingElement = errors.New("form: required element missing")

// Notifier surfaces a blocking message to the user (window.alert in the browser).
type Notifier interface {
	Alert(msg string)
}

type NotifierFunc func(msg string)

func (f NotifierFunc) Alert(msg string) { f(msg) }

type State int

const (
	StateIdle State = iota
	StateResultShown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResultShown:
		return "result-shown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Controller struct {
	doc      dom.Document
	solver   ports.Solver
	notifier Notifier
	dispatch func(func())

	form      dom.Element
	container dom.Element
	addButton dom.Element
	routeList dom.Element
	distance  dom.Element
	mapLink   dom.Element

	mu    sync.Mutex
	state State
}

type Option func(*Controller)

// WithDispatcher controls how Bind runs submissions. The default starts a goroutine,
// which keeps the browser event loop free while the request is in flight.
func WithDispatcher(fn func(func())) Option {
	return func(c *Controller) {
		if fn != nil {
			c.dispatch = fn
		}
	}
}

// Run submissions inline on the calling goroutine.
func Synchronous() Option {
	return WithDispatcher(func(f func()) { f() })
}

// New acquires the six required elements from doc.
// It fails with ErrMissingElement if the document does not satisfy the contract.
func New(doc dom.Document, solver ports.Solver, notifier Notifier, opts ...Option) (*Controller, error) {
	if doc == nil || solver == nil || notifier == nil {
		return nil, errors.New("form: document, solver and notifier are required")
	}

	c := &Controller{
		doc:      doc,
		solver:   solver,
		notifier: notifier,
		dispatch: func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(c)
	}

	targets := []struct {
		id  string
		dst *dom.Element
	}{
		{FormID, &c.form},
		{LocationsContainerID, &c.container},
		{AddLocationButtonID, &c.addButton},
		{RouteListID, &c.routeList},
		{DistanceID, &c.distance},
		{MapLinkID, &c.mapLink},
	}
	for _, t := range targets {
		el, err := doc.GetElementByID(t.id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMissingElement, t.id, err)
		}
		*t.dst = el
	}

	return c, nil
}

// Bind registers the click and submit handlers. Submissions use ctx.
// Re-entrant submissions are not guarded: a second submit while one is in flight starts another request.
func (c *Controller) Bind(ctx context.Context) {
	c.addButton.AddEventListener("click", func(dom.Event) {
		c.AddLocationField()
	})

	c.form.AddEventListener("submit", func(e dom.Event) {
		e.PreventDefault()

		locations := c.doc.FormValues(c.form, LocationsField)
		c.dispatch(func() {
			if err := c.Submit(ctx, locations); err != nil {
				log.Printf("form submit failed: locations=%d err=%v", len(locations), err)
			}
		})
	})
}

// AddLocationField appends an empty text input whose placeholder names its 1-based position.
func (c *Controller) AddLocationField() dom.Element {
	input := c.doc.CreateElement("input")
	input.SetAttribute("type", "text")
	input.SetAttribute("name", LocationsField)
	input.SetAttribute("placeholder", fmt.Sprintf("Enter location %d", c.container.ChildElementCount()+1))
	c.container.AppendChild(input)
	return input
}

// Submit sends locations to the solver and renders the result.
//
// A RequestFailed condition alerts FailureMessage and leaves the page untouched.
// Any other error (e.g. an undecodable 2xx body) is returned without an alert.
func (c *Controller) Submit(ctx context.Context, locations []string) error {
	result, err := c.solver.Solve(ctx, locations)
	if err != nil {
		if errors.Is(err, ports.ErrRequestFailed) {
			c.notifier.Alert(FailureMessage)
		}
		return fmt.Errorf("submit %d locations: %w", len(locations), err)
	}

	c.Render(result)
	return nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
