// Package entropy reads the random seeds identifier generators start from.
package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"strings"
)

// System names the operating system CSPRNG in configuration.
const System = "system"

// Device reads from an entropy device such as /dev/urandom. Every Read opens
// the device, fills p and closes it again.
type Device string

// Read fills p completely or fails.
func (d Device) Read(p []byte) (int, error) {
	f, err := os.Open(string(d))
	if err != nil {
		return 0, err
	}
	defer f.Close()
	n, err := io.ReadFull(f, p)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

// Source returns the reader named by a configuration value: System (or an
// empty value) selects crypto/rand, anything else is taken as a device path.
func Source(name string) io.Reader {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, System) {
		return rand.Reader
	}
	return Device(name)
}

// Fill reads exactly len(dst) bytes from r.
func Fill(r io.Reader, dst []byte) error {
	if r == nil {
		return fmt.Errorf("entropy source is nil")
	}
	n, err := io.ReadFull(r, dst)
	if err != nil {
		return fmt.Errorf("read %d of %d entropy bytes: %w", n, len(dst), err)
	}
	return nil
}
