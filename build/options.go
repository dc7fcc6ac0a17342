package build

// config carries the resolved generator options. Value functions default
// to nil, which yields zero values.
type config[N, E any] struct {
	nodeValue func(i int) N
	edgeValue func(u, v int) E
}

// Option customizes a generator by mutating its config before
// construction begins.
type Option[N, E any] func(*config[N, E])

// WithNodeValue supplies node values by index. Panics on nil to surface
// the programmer error at the call site.
func WithNodeValue[N, E any](fn func(i int) N) Option[N, E] {
	if fn == nil {
		panic("build: WithNodeValue(nil)")
	}

	return func(c *config[N, E]) { c.nodeValue = fn }
}

// WithEdgeValue supplies edge values by endpoint indices. Panics on nil.
func WithEdgeValue[N, E any](fn func(u, v int) E) Option[N, E] {
	if fn == nil {
		panic("build: WithEdgeValue(nil)")
	}

	return func(c *config[N, E]) { c.edgeValue = fn }
}

func resolve[N, E any](opts []Option[N, E]) config[N, E] {
	var c config[N, E]
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c config[N, E]) node(i int) N {
	if c.nodeValue != nil {
		return c.nodeValue(i)
	}
	var zero N

	return zero
}

func (c config[N, E]) edge(u, v int) E {
	if c.edgeValue != nil {
		return c.edgeValue(u, v)
	}
	var zero E

	return zero
}
