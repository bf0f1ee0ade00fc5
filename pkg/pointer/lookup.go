package pointer

import (
	"fmt"

	"github.com/xeipuuv/gojsonpointer"
)

// Lookup dereferences a plain-rendered pointer against a decoded JSON
// document (maps, slices, scalars) and returns the value it names. It is the
// inverse direction of Resolve: given the pointer attached to a validation
// error and the offending document, it retrieves the offending value.
func Lookup(document any, pointer string) (any, error) {
	p, err := gojsonpointer.NewJsonPointer(pointer)
	if err != nil {
		return nil, fmt.Errorf("parse pointer %q: %w", pointer, err)
	}
	value, _, err := p.Get(document)
	if err != nil {
		return nil, fmt.Errorf("resolve pointer %q: %w", pointer, err)
	}
	return value, nil
}
