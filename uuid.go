package ident

import "github.com/google/uuid"

// FromUUID converts a github.com/google/uuid value; the byte layout is shared.
func FromUUID(u uuid.UUID) ID { return ID(u) }

// UUID converts id to a github.com/google/uuid value.
func (id ID) UUID() uuid.UUID { return uuid.UUID(id) }

// Version returns the version nibble, 4 for generated identifiers.
func (id ID) Version() uuid.Version { return uuid.UUID(id).Version() }

// Variant returns the variant bits, uuid.RFC4122 for generated identifiers.
func (id ID) Variant() uuid.Variant { return uuid.UUID(id).Variant() }
