package ident

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/viant/ident/internal/entropy"
	"github.com/viant/ident/internal/mix"
)

// Generator produces identifiers from a counter seeded once from an entropy
// source. Each counter value is mixed through a one-way digest, so returned
// identifiers reveal neither the counter nor each other.
//
// A Generator is owned by a single goroutine or worker and must not be used
// concurrently. Use New for a goroutine-safe package-level generator.
type Generator struct {
	entropy     io.Reader
	digest      mix.Func
	digestName  string
	logger      *slog.Logger
	fatal       func(err error)
	initialized bool
	counter     [Size]byte
}

// NewGenerator creates a Generator. The counter is seeded lazily on the
// first call to Next unless Seed is called earlier.
func NewGenerator(options ...Option) *Generator {
	g := &Generator{
		entropy:    rand.Reader,
		digest:     mix.Sha1,
		digestName: mix.SHA1,
	}
	for _, opt := range options {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.fatal == nil {
		g.fatal = func(error) { os.Exit(1) }
	}
	return g
}

// Seed reads the initial counter value if the generator has not been seeded
// yet. It returns the entropy error instead of terminating, so callers can
// check the environment at startup.
func (g *Generator) Seed() error {
	if g.initialized {
		return nil
	}
	if err := entropy.Fill(g.entropy, g.counter[:]); err != nil {
		return fmt.Errorf("failed to seed identifier generator: %w", err)
	}
	g.initialized = true
	g.logger.Debug("generator seeded", "digest", g.digestName)
	return nil
}

// Next returns a new identifier. If the entropy source cannot deliver the
// seed the generator logs the failure and invokes its fatal handler, which
// terminates the process unless replaced with WithFatal.
func (g *Generator) Next() ID {
	if err := g.Seed(); err != nil {
		g.logger.Error("entropy source unavailable", "error", err)
		g.fatal(err)
		panic(err)
	}
	block := g.counter
	g.increment()
	id := ID(g.digest(block))
	id[6] = id[6]&0x0f | 0x40
	id[8] = id[8]&0x3f | 0x80
	return id
}

// increment adds one to the big-endian counter, wrapping past the first byte.
func (g *Generator) increment() {
	for i := Size - 1; i >= 0; i-- {
		g.counter[i]++
		if g.counter[i] != 0 {
			return
		}
	}
}
