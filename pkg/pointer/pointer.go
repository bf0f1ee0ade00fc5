// Package pointer resolves typed field-access expressions into RFC-6901
// style JSON pointers, so a validation error can name the exact field of a
// data structure that caused it.
//
// An expression is a small typed AST built from a root type:
//
//	ptr := resolver.Resolve(pointer.Root[Example]().Field("Nested").Field("Value"))
//	ptr.String() // "/nested/value" under the CamelCase policy
//
// Field names honor an explicit `json` struct-tag rename first, then the
// resolver's naming policy, then the declared name verbatim.
package pointer

import (
	"fmt"
	"reflect"
	"strconv"
)

// InvalidExpression is the sentinel segment produced when an index literal
// cannot be read as text. Pointer generation is best-effort decoration of an
// error report, so this case degrades instead of panicking.
const InvalidExpression = "INVALID_EXPRESSION"

type nodeKind int

const (
	nodeRoot nodeKind = iota
	nodeField
	nodeIndex
	nodeCall
	nodeWiden
)

func (k nodeKind) String() string {
	switch k {
	case nodeRoot:
		return "root"
	case nodeField:
		return "field access"
	case nodeIndex:
		return "index access"
	case nodeCall:
		return "indexer call"
	case nodeWiden:
		return "widening adapter"
	default:
		return fmt.Sprintf("node(%d)", int(k))
	}
}

// Expr is one node of a field-access expression. Expressions are built
// leaf-outward from Root and are immutable once handed to a Resolver.
type Expr struct {
	kind   nodeKind
	parent *Expr
	root   reflect.Type
	name   string
	lit    any
}

// Root starts an expression at the root parameter of type T.
func Root[T any]() *Expr {
	return &Expr{kind: nodeRoot, root: reflect.TypeOf((*T)(nil)).Elem()}
}

// Field reads the struct field with the given declared name.
func (e *Expr) Field(name string) *Expr {
	return &Expr{kind: nodeField, parent: e, name: name}
}

// Index reads the element of an array or slice at a literal position.
func (e *Expr) Index(literal any) *Expr {
	return &Expr{kind: nodeIndex, parent: e, lit: literal}
}

// At models an indexer-style call ("get element at position") on a
// sequence-like receiver: an array or slice, or a named type exposing an
// At(int) method.
func (e *Expr) At(literal any) *Expr {
	return &Expr{kind: nodeCall, parent: e, lit: literal}
}

// Widen marks an implicit numeric-widening adapter inserted to unify the
// expression's declared return type. It contributes no path segment.
func (e *Expr) Widen() *Expr {
	return &Expr{kind: nodeWiden, parent: e}
}

// NamingPolicy derives a serialized field name from a declared one. It only
// applies to fields without an explicit `json` tag rename.
type NamingPolicy func(declared string) string

// Resolver turns expressions into pointers under a fixed naming policy.
// A Resolver is stateless beyond its configuration and safe for concurrent
// use.
type Resolver struct {
	policy NamingPolicy
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithNamingPolicy sets the policy applied to fields without an explicit
// rename. Without it, declared names are used verbatim.
func WithNamingPolicy(policy NamingPolicy) Option {
	return func(r *Resolver) { r.policy = policy }
}

// NewResolver builds a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve walks the expression from its leaf back to the root parameter and
// produces the ordered segment path. Any node shape outside the supported
// set (field access, literal index, indexer call, widening adapter, root) is
// a defect in the calling code and panics with an error wrapping
// ErrUnsupportedExpression. An unreadable index literal instead degrades the
// whole pointer to the single InvalidExpression segment.
func (r *Resolver) Resolve(e *Expr) Pointer {
	chain := exprChain(e)

	var current reflect.Type
	var segments []string
	for _, node := range chain {
		switch node.kind {
		case nodeRoot:
			current = node.root
		case nodeWiden:
			// Contributes no segment and does not change the path type.
		case nodeField:
			name, next := r.resolveField(current, node.name)
			segments = append(segments, name)
			current = next
		case nodeIndex:
			text, ok := literalText(node.lit)
			if !ok {
				return Pointer{segments: []string{InvalidExpression}}
			}
			segments = append(segments, text)
			current = elemOf(current)
		case nodeCall:
			text, ok := literalText(node.lit)
			if !ok {
				return Pointer{segments: []string{InvalidExpression}}
			}
			segments = append(segments, text)
			current = indexerResult(current)
		default:
			panic(fmt.Errorf("%w: %s", ErrUnsupportedExpression, node.kind))
		}
	}
	return Pointer{segments: segments}
}

// exprChain collects the nodes leaf-to-root, then reverses so resolution
// runs root-to-leaf and the accumulated segments come out in final order.
func exprChain(e *Expr) []*Expr {
	var chain []*Expr
	for node := e; node != nil; node = node.parent {
		chain = append(chain, node)
	}
	if chain[len(chain)-1].kind != nodeRoot {
		panic(fmt.Errorf("%w: expression does not terminate at a root parameter", ErrUnsupportedExpression))
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// resolveField returns the serialized name of a struct field and the static
// type the path continues on. Rename precedence: explicit `json` tag, then
// the naming policy, then the declared name.
func (r *Resolver) resolveField(current reflect.Type, name string) (string, reflect.Type) {
	current = indirect(current)
	if current == nil || current.Kind() != reflect.Struct {
		panic(fmt.Errorf("%w: field access %q on non-struct type %v", ErrUnsupportedExpression, name, current))
	}
	sf, ok := current.FieldByName(name)
	if !ok {
		panic(fmt.Errorf("%w: type %s has no field %q", ErrUnsupportedExpression, current, name))
	}
	if rename, ok := tagRename(sf); ok {
		return rename, sf.Type
	}
	if r.policy != nil {
		return r.policy(name), sf.Type
	}
	return name, sf.Type
}

// tagRename extracts an explicit rename from the field's `json` tag.
func tagRename(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			tag = tag[:i]
			break
		}
	}
	if tag == "" || tag == "-" {
		return "", false
	}
	return tag, true
}

func elemOf(current reflect.Type) reflect.Type {
	current = indirect(current)
	if current == nil || (current.Kind() != reflect.Slice && current.Kind() != reflect.Array) {
		panic(fmt.Errorf("%w: index access on non-sequence type %v", ErrUnsupportedExpression, current))
	}
	return current.Elem()
}

// indexerResult resolves the static type produced by an indexer-style call:
// the element type of an array or slice, or the first return of an At(int)
// method on any other receiver.
func indexerResult(current reflect.Type) reflect.Type {
	base := indirect(current)
	if base != nil && (base.Kind() == reflect.Slice || base.Kind() == reflect.Array) {
		return base.Elem()
	}
	if current != nil {
		if m, ok := current.MethodByName("At"); ok &&
			m.Type.NumIn() == 2 && m.Type.In(1).Kind() == reflect.Int && m.Type.NumOut() == 1 {
			return m.Type.Out(0)
		}
	}
	panic(fmt.Errorf("%w: indexer call on non-sequence type %v", ErrUnsupportedExpression, current))
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// literalText reads an index literal as its decimal string form. Any
// non-integer literal is the degenerate case that triggers the
// InvalidExpression sentinel.
func literalText(lit any) (string, bool) {
	switch v := lit.(type) {
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return "", false
	}
}
