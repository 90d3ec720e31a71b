package ident

import "sync"

var generators = sync.Pool{
	New: func() any { return NewGenerator() },
}

// New returns a fresh identifier. It is safe for concurrent use: each call
// borrows a generator from a pool for its exclusive use, so no counter is
// shared between goroutines. Generators dropped by the pool are replaced by
// newly seeded ones.
func New() ID {
	g := generators.Get().(*Generator)
	id := g.Next()
	generators.Put(g)
	return id
}
