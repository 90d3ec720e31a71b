package ident

import (
	"io"
	"log/slog"
	"strings"

	"github.com/viant/ident/internal/mix"
)

// Option configures a Generator.
type Option func(g *Generator)

// WithEntropy sets the reader the counter seed is taken from.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
	}
}

// WithDigest selects the mixing digest by name: "sha1" (default), "blake2b"
// or "sha3". Unknown names leave the current digest in place; use
// Config.Validate to reject them up front.
func WithDigest(name string) Option {
	return func(g *Generator) {
		if fn, err := mix.Lookup(name); err == nil {
			g.digest = fn
			g.digestName = strings.ToLower(strings.TrimSpace(name))
			if g.digestName == "" {
				g.digestName = mix.SHA1
			}
		}
	}
}

// WithLogger sets the logger used for seeding and failure events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithFatal replaces the handler invoked when the generator cannot be seeded.
// The default handler exits the process. If the handler returns, Next panics.
func WithFatal(fn func(err error)) Option {
	return func(g *Generator) {
		g.fatal = fn
	}
}
