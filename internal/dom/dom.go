// Package dom is the narrow slice of the browser DOM the form controller relies on.
// Adapters exist for the browser (jsdom, via syscall/js) and for parsed HTML trees (htmldom).
package dom

import "errors"

var ErrNotFound = errors.New("element not found")

// Event is the part of a DOM event a listener can act on.
type Event interface {
	PreventDefault()
}

type Listener func(Event)

type Element interface {
	AppendChild(child Element)
	// Remove every child, the equivalent of innerHTML = ''.
	ReplaceChildren()
	// Count element children only (text nodes are ignored), like Element.children.length.
	ChildElementCount() int
	SetTextContent(text string)
	SetAttribute(name, value string)
	Attribute(name string) (string, bool)
	SetStyle(property, value string)
	AddEventListener(event string, fn Listener)
}

type Document interface {
	// Return ErrNotFound (wrapped) when no element carries id.
	GetElementByID(id string) (Element, error)
	CreateElement(tag string) Element
	// Return every value submitted under name by form, in document order (FormData.getAll).
	FormValues(form Element, name string) []string
}
