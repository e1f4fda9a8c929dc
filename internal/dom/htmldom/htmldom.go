// Package htmldom implements dom.Document over a golang.org/x/net/html tree.
//
// It backs the server-rendered fallback page and lets the form controller run
// against the real hosted document in tests. Events never fire on their own; use
// Document.Dispatch to deliver one to registered listeners.
package htmldom

import (
	"fmt"
	"io"
	"route-form-service/internal/dom"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]dom.Listener
}

type Element struct {
	doc  *Document
	node *html.Node
}

// Event is the event value passed to listeners by Dispatch.
type Event struct {
	Type      string
	prevented bool
}

func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) DefaultPrevented() bool { return e.prevented }

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html document: %w", err)
	}
	return &Document{root: root, listeners: map[*html.Node]map[string][]dom.Listener{}}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render html document: %w", err)
	}
	return nil
}

func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Render(&sb)
	return sb.String()
}

func (d *Document) wrap(n *html.Node) *Element { return &Element{doc: d, node: n} }

func (d *Document) GetElementByID(id string) (dom.Element, error) {
	el, err := d.ElementByID(id)
	if err != nil {
		return nil, err
	}
	return el, nil
}

// ElementByID is GetElementByID returning the concrete type.
func (d *Document) ElementByID(id string) (*Element, error) {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("get element %q: %w", id, dom.ErrNotFound)
	}
	return d.wrap(found), nil
}

// Body returns the <body> element, which html.Parse always synthesizes.
func (d *Document) Body() *Element {
	var body *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return false
		}
		return true
	})
	if body == nil {
		return nil
	}
	return d.wrap(body)
}

func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

func (d *Document) FormValues(form dom.Element, name string) []string {
	root := d.nodeOf(form)
	if root == nil {
		return []string{}
	}

	out := []string{}
	for _, n := range formInputs(root, name) {
		v, _ := attr(n, "value")
		out = append(out, v)
	}
	return out
}

// SetFieldValues writes values[i] into the i-th input named name under form.
// Extra values with no matching input are returned so the caller can add fields for them.
func (d *Document) SetFieldValues(form dom.Element, name string, values []string) []string {
	root := d.nodeOf(form)
	if root == nil {
		return values
	}

	inputs := formInputs(root, name)
	i := 0
	for ; i < len(values) && i < len(inputs); i++ {
		setAttr(inputs[i], "value", values[i])
	}
	return values[i:]
}

// Dispatch delivers an event of the given type to the listeners registered on the element with id.
// It reports whether any listener called PreventDefault.
func (d *Document) Dispatch(id, eventType string) (bool, error) {
	el, err := d.ElementByID(id)
	if err != nil {
		return false, err
	}

	ev := &Event{Type: eventType}
	for _, fn := range d.listeners[el.node][eventType] {
		fn(ev)
	}
	return ev.DefaultPrevented(), nil
}

func (d *Document) nodeOf(el dom.Element) *html.Node {
	e, ok := el.(*Element)
	if !ok || e == nil || e.doc != d {
		return nil
	}
	return e.node
}

func (e *Element) Node() *html.Node { return e.node }

func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// Prepend inserts child as the first child of e.
func (e *Element) Prepend(child *Element) {
	if child == nil {
		return
	}
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.InsertBefore(child.node, e.node.FirstChild)
}

func (e *Element) ReplaceChildren() {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
}

func (e *Element) ChildElementCount() int {
	n := 0
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n++
		}
	}
	return n
}

func (e *Element) SetTextContent(text string) {
	e.ReplaceChildren()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// TextContent concatenates all descendant text nodes.
func (e *Element) TextContent() string {
	var sb strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

func (e *Element) SetAttribute(name, value string) { setAttr(e.node, strings.ToLower(name), value) }

func (e *Element) Attribute(name string) (string, bool) { return attr(e.node, strings.ToLower(name)) }

// SetStyle merges one property into the inline style attribute, keeping the others.
func (e *Element) SetStyle(property, value string) {
	raw, _ := attr(e.node, "style")
	styles := parseStyle(raw)
	property = strings.ToLower(strings.TrimSpace(property))
	if value == "" {
		delete(styles, property)
	} else {
		styles[property] = value
	}
	setAttr(e.node, "style", formatStyle(styles))
}

// Style returns the inline value of property, or "" when unset.
func (e *Element) Style(property string) string {
	raw, _ := attr(e.node, "style")
	return parseStyle(raw)[strings.ToLower(property)]
}

func (e *Element) AddEventListener(event string, fn dom.Listener) {
	byType, ok := e.doc.listeners[e.node]
	if !ok {
		byType = map[string][]dom.Listener{}
		e.doc.listeners[e.node] = byType
	}
	byType[event] = append(byType[event], fn)
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// walk visits n and its descendants depth-first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func formInputs(root *html.Node, name string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Input {
			if v, ok := attr(n, "name"); ok && v == name {
				out = append(out, n)
			}
		}
		return true
	})
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func parseStyle(raw string) map[string]string {
	out := map[string]string{}
	for _, decl := range strings.Split(raw, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		out[prop] = val
	}
	return out
}

func formatStyle(styles map[string]string) string {
	props := make([]string, 0, len(styles))
	for p := range styles {
		props = append(props, p)
	}
	sort.Strings(props)

	decls := make([]string, 0, len(props))
	for _, p := range props {
		decls = append(decls, p+": "+styles[p])
	}
	return strings.Join(decls, "; ")
}
