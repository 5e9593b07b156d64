package router

// Kind tells how a route was resolved.
type Kind uint8

const (
	Matched Kind = iota
	CustomNotFound
	BuiltinNotFound
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case CustomNotFound:
		return "custom-404"
	case BuiltinNotFound:
		return "builtin-404"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one requested route.
type Resolution struct {
	Route string
	Body  string
	Kind  Kind
}

// Resolver turns a requested route into an HTML body.
type Resolver interface {
	Resolve(route string) Resolution
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(route string) Resolution

func (f ResolverFunc) Resolve(route string) Resolution {
	return f(route)
}

type Middleware func(Resolver) Resolver

// Use adds middleware to the table. The first one added runs outermost.
func (t *Table) Use(m ...Middleware) {
	t.mu.Lock()
	t.middlewares = append(t.middlewares, m...)
	t.mu.Unlock()
}

func (t *Table) chain(r Resolver) Resolver {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := len(t.middlewares) - 1; i >= 0; i-- {
		r = t.middlewares[i](r)
	}
	return r
}

// Resolver returns the table wrapped in its middleware chain.
func (t *Table) Resolver() Resolver {
	return t.chain(ResolverFunc(t.Resolve))
}
