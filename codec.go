package ident

import (
	"errors"
	"fmt"
)

// StringSize is the length of the canonical string form.
const StringSize = Size*2 + 4

// ErrInvalidString is wrapped by every parse failure.
var ErrInvalidString = errors.New("invalid identifier string")

const hexDigits = "0123456789abcdef"

// String returns the canonical 8-4-4-4-12 lowercase hex form.
func (id ID) String() string {
	return string(id.AppendText(make([]byte, 0, StringSize)))
}

// AppendText appends the canonical form of id to dst.
func (id ID) AppendText(dst []byte) []byte {
	for i, b := range id {
		switch i {
		case 4, 6, 8, 10:
			dst = append(dst, '-')
		}
		dst = append(dst, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return dst
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return id.AppendText(make([]byte, 0, StringSize)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := decode(text)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Parse decodes the canonical form. Hex digits may be upper or lower case.
func Parse(s string) (ID, error) {
	return decode([]byte(s))
}

// TryParse decodes s, reporting failure with false instead of an error.
func TryParse(s string) (ID, bool) {
	id, err := decode([]byte(s))
	if err != nil {
		return Nil(), false
	}
	return id, true
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsValid reports whether s is a well-formed canonical identifier.
func IsValid(s string) bool {
	_, ok := TryParse(s)
	return ok
}

func decode(text []byte) (ID, error) {
	var id ID
	if len(text) != StringSize {
		return id, fmt.Errorf("%w: length %d, expected %d", ErrInvalidString, len(text), StringSize)
	}
	j := 0
	for i := 0; i < Size; i++ {
		switch i {
		case 4, 6, 8, 10:
			if text[j] != '-' {
				return id, fmt.Errorf("%w: expected '-' at offset %d", ErrInvalidString, j)
			}
			j++
		}
		high, ok := fromHexDigit(text[j])
		if !ok {
			return id, fmt.Errorf("%w: invalid hex digit at offset %d", ErrInvalidString, j)
		}
		low, ok := fromHexDigit(text[j+1])
		if !ok {
			return id, fmt.Errorf("%w: invalid hex digit at offset %d", ErrInvalidString, j+1)
		}
		id[i] = high<<4 | low
		j += 2
	}
	return id, nil
}

func fromHexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
