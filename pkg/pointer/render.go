package pointer

import (
	"fmt"
	"net/url"
	"strings"
)

// Representation selects how a Pointer renders to text.
type Representation int

const (
	// RepresentationPlain joins segments with "/" after a leading "/",
	// without escaping.
	RepresentationPlain Representation = iota
	// RepresentationURIFragment renders "#" for an empty pointer, otherwise
	// "#/" plus the segments percent-encoded for embedding in a URI
	// fragment.
	RepresentationURIFragment
	// RepresentationNormal is the RFC 6901 form with ~0/~1 escaping. It is
	// named for completeness but not implemented; requesting it panics.
	RepresentationNormal
)

// Pointer is the resolved, ordered segment path. The zero value points at
// the root of the document.
type Pointer struct {
	segments []string
}

// Segments returns a copy of the path segments in root-to-leaf order.
func (p Pointer) Segments() []string {
	if len(p.segments) == 0 {
		return nil
	}
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// String renders the plain representation.
func (p Pointer) String() string {
	return "/" + strings.Join(p.segments, "/")
}

// Render renders the pointer in the requested representation. Requesting
// RepresentationNormal, or an unknown representation, is a defect in the
// calling code and panics with an error wrapping
// ErrRepresentationUnsupported rather than silently falling back.
func (p Pointer) Render(rep Representation) string {
	switch rep {
	case RepresentationPlain:
		return p.String()
	case RepresentationURIFragment:
		if len(p.segments) == 0 {
			return "#"
		}
		escaped := make([]string, len(p.segments))
		for i, seg := range p.segments {
			escaped[i] = url.PathEscape(seg)
		}
		return "#/" + strings.Join(escaped, "/")
	case RepresentationNormal:
		panic(fmt.Errorf("%w: normal (RFC 6901 escaped)", ErrRepresentationUnsupported))
	default:
		panic(fmt.Errorf("%w: representation(%d)", ErrRepresentationUnsupported, int(rep)))
	}
}
