// Package ident provides the 128-bit identifiers used to address nodes,
// tables, transactions and other entities.
//
// Identifiers are produced by a Generator holding a 128-bit counter that is
// seeded once from the operating system entropy source. Every counter value
// is mixed through a one-way digest and tagged with version 4 / RFC 4122
// variant bits, so identifiers look random while a single generator never
// repeats itself until its counter wraps.
//
//	g := ident.NewGenerator()
//	id := g.Next()
//	s := id.String() // "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"
//	parsed, err := ident.Parse(s)
//
// A Generator belongs to one goroutine. ident.New is safe for concurrent use
// and borrows pooled generators.
//
// Nil is the all-zero identifier; Unset is a distinct sentinel for fields
// that were never assigned.
package ident
