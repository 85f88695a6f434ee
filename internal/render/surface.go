// Package render provides the UI surface contract for the SDK's
// rendering pipeline: an addressable container that markup is written
// into, optional per-item activation callbacks, and the default card
// templates.
package render

import "sync"

// Surface is the addressable UI target a render call writes markup
// into. Implementations replace their whole content on every call;
// concurrent writers are last-writer-wins.
type Surface interface {
	SetContent(html string)
}

// Activator is an optional Surface capability. A surface that
// implements it receives one callback per rendered item, keyed by the
// item's event id, to run when that item is activated (clicked).
type Activator interface {
	OnActivate(eventID string, fn func())
}

// Document is a registry of named surfaces. It plays the role of the
// host page: render targets given as selector strings are resolved
// against it.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{elements: make(map[string]*Element)}
}

// Add registers a new element under selector and returns it. Adding an
// existing selector replaces the element.
func (d *Document) Add(selector string) *Element {
	el := NewElement()
	d.mu.Lock()
	d.elements[selector] = el
	d.mu.Unlock()
	return el
}

// Lookup resolves selector to its element, or nil if the selector is
// unknown.
func (d *Document) Lookup(selector string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.elements[selector]
}

// Element is the bundled Surface implementation. It holds rendered
// markup and activation handlers, and can simulate item activation for
// tests and server-side embedding.
type Element struct {
	mu       sync.Mutex
	content  string
	handlers map[string][]func()
}

// NewElement creates an empty element.
func NewElement() *Element {
	return &Element{handlers: make(map[string][]func())}
}

// SetContent replaces the element's markup. Activation handlers bound
// to the previous content are dropped, mirroring what replacing a DOM
// subtree does to its listeners.
func (e *Element) SetContent(html string) {
	e.mu.Lock()
	e.content = html
	e.handlers = make(map[string][]func())
	e.mu.Unlock()
}

// Content returns the element's current markup.
func (e *Element) Content() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content
}

// OnActivate binds fn to the rendered item with the given event id.
func (e *Element) OnActivate(eventID string, fn func()) {
	e.mu.Lock()
	e.handlers[eventID] = append(e.handlers[eventID], fn)
	e.mu.Unlock()
}

// Activate simulates activating the item with the given event id,
// invoking its bound handlers in registration order. It reports whether
// any handler was bound.
func (e *Element) Activate(eventID string) bool {
	e.mu.Lock()
	fns := append([]func(){}, e.handlers[eventID]...)
	e.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}
