// Package codec centralizes problem-bank payload encoding.
//
// Persisted banks are self-describing: the codec name is recorded in the
// blob header so an existing bank can be decoded with the codec it was
// written with, independent of the current default.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the default codec used by the library.
//
// This affects newly-written banks only. Existing blobs record the codec
// name in their header and are decoded by selecting the codec by name.
var Default Codec = GoJSON{}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
