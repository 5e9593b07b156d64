package router

import (
	"maps"
	"slices"
	"sync"
)

// NotFoundBody is served when neither the requested route nor the configured
// not-found route is registered.
const NotFoundBody = "<h1>404 Not Found</h1>"

// Handler renders the HTML body for a route. Handlers are called from many
// goroutines at once and should not block.
type Handler func() string

// Table maps routes to handlers. It is safe for concurrent use: lookups share
// a read lock while Add holds the write lock for the whole insert.
type Table struct {
	mu            sync.RWMutex
	routes        map[string]Handler
	notFoundRoute string
	hasNotFound   bool
	middlewares   []Middleware
}

// NewTable creates a table seeded with a copy of routes, which may be nil.
func NewTable(routes map[string]Handler) *Table {
	t := &Table{routes: make(map[string]Handler, len(routes))}
	for route, h := range routes {
		t.Add(route, h)
	}
	return t
}

// Add registers h for route, replacing any previous handler.
func (t *Table) Add(route string, h Handler) {
	if h == nil {
		panic("router: nil handler for route " + route)
	}
	t.mu.Lock()
	t.routes[route] = h
	t.mu.Unlock()
}

// Lookup returns the handler registered for route.
func (t *Table) Lookup(route string) (Handler, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.routes[route]
	return h, ok
}

// Routes returns the registered routes in sorted order.
func (t *Table) Routes() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.routes))
}

// SetNotFoundRoute makes unregistered routes render the handler of route.
// The route does not have to be registered yet.
func (t *Table) SetNotFoundRoute(route string) {
	t.mu.Lock()
	t.notFoundRoute = route
	t.hasNotFound = true
	t.mu.Unlock()
}

// ClearNotFoundRoute restores the built-in not-found body.
func (t *Table) ClearNotFoundRoute() {
	t.mu.Lock()
	t.notFoundRoute = ""
	t.hasNotFound = false
	t.mu.Unlock()
}

// NotFoundRoute reports the configured not-found route, if any.
func (t *Table) NotFoundRoute() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.notFoundRoute, t.hasNotFound
}

// Resolve renders the body for route. The lookup order is:
//  1. the handler registered for route
//  2. the handler registered for the not-found route, when one is set
//  3. NotFoundBody
//
// Handlers run after the lock is released, so a slow handler never holds up Add.
func (t *Table) Resolve(route string) Resolution {
	t.mu.RLock()
	kind := Matched
	h, ok := t.routes[route]
	if !ok && t.hasNotFound {
		kind = CustomNotFound
		h, ok = t.routes[t.notFoundRoute]
	}
	t.mu.RUnlock()

	if !ok {
		return Resolution{Route: route, Body: NotFoundBody, Kind: BuiltinNotFound}
	}
	return Resolution{Route: route, Body: h(), Kind: kind}
}
