//go:build js && wasm

package jsdom

import (
	"fmt"
	"route-form-service/internal/dom"
	"syscall/js"
)

type Document struct {
	global js.Value
	doc    js.Value
	funcs  []js.Func
}

type Element struct {
	doc *Document
	v   js.Value
}

type event struct{ v js.Value }

func (e event) PreventDefault() {
	if e.v.Truthy() {
		e.v.Call("preventDefault")
	}
}

// New binds to the page's global document.
func New() *Document {
	g := js.Global()
	return &Document{global: g, doc: g.Get("document")}
}

func (d *Document) GetElementByID(id string) (dom.Element, error) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, fmt.Errorf("get element %q: %w", id, dom.ErrNotFound)
	}
	return &Element{doc: d, v: v}, nil
}

func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{doc: d, v: d.doc.Call("createElement", tag)}
}

func (d *Document) FormValues(form dom.Element, name string) []string {
	el, ok := form.(*Element)
	if !ok {
		return []string{}
	}

	all := d.global.Get("FormData").New(el.v).Call("getAll", name)
	n := all.Length()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, all.Index(i).String())
	}
	return out
}

// Alert shows a blocking window.alert with msg.
func (d *Document) Alert(msg string) {
	d.global.Call("alert", msg)
}

// Location origin of the page, used as the solver base URL.
func (d *Document) Origin() string {
	return d.global.Get("location").Get("origin").String()
}

// Release frees every listener callback created through this document.
func (d *Document) Release() {
	for _, f := range d.funcs {
		f.Release()
	}
	d.funcs = nil
}

func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	e.v.Call("appendChild", c.v)
}

func (e *Element) ReplaceChildren() { e.v.Call("replaceChildren") }

func (e *Element) ChildElementCount() int { return e.v.Get("children").Length() }

func (e *Element) SetTextContent(text string) { e.v.Set("textContent", text) }

func (e *Element) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) Attribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

// AddEventListener wraps fn in a js.Func. The callback runs on the JS event loop,
// so fn must not block; hand long work to a goroutine.
func (e *Element) AddEventListener(eventType string, fn dom.Listener) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev dom.Event = event{v: js.Undefined()}
		if len(args) > 0 {
			ev = event{v: args[0]}
		}
		fn(ev)
		return nil
	})
	e.doc.funcs = append(e.doc.funcs, f)
	e.v.Call("addEventListener", eventType, f)
}
