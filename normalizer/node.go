// Package normalizer turns PayPal API responses into plain nested maps and
// slices. Responses are first decoded into a Node tree (records, sequences
// and scalars) that is independent of any SDK type, then flattened.
package normalizer

import "fmt"

// Kind identifies which variant of the Node union is populated
type Kind int

const (
	// KindScalar is an opaque leaf value
	KindScalar Kind = iota

	// KindRecord is an ordered set of named fields
	KindRecord

	// KindSequence is an ordered list of nodes
	KindSequence
)

var kinds = [...]string{
	"scalar",
	"record",
	"sequence",
}

// String representation of `Kind`
func (k Kind) String() string {
	return kinds[k]
}

// Field is a named member of a record
type Field struct {
	Key   string
	Value Node
}

// Node is one of a record, a sequence or a scalar. Nodes are values, so a
// tree of them cannot contain cycles.
type Node struct {
	kind   Kind
	fields []Field
	items  []Node
	scalar interface{}
}

// Record builds a record node from fields, keeping their order
func Record(fields ...Field) Node {
	return Node{kind: KindRecord, fields: fields}
}

// Sequence builds a sequence node
func Sequence(items ...Node) Node {
	return Node{kind: KindSequence, items: items}
}

// Scalar wraps a leaf value without converting it
func Scalar(v interface{}) Node {
	return Node{kind: KindScalar, scalar: v}
}

// F is shorthand for a Field
func F(key string, value Node) Field {
	return Field{Key: key, Value: value}
}

// Kind reports which variant n holds
func (n Node) Kind() Kind {
	return n.kind
}

// Fields returns the fields of a record, or nil
func (n Node) Fields() []Field {
	return n.fields
}

// Items returns the items of a sequence, or nil
func (n Node) Items() []Node {
	return n.items
}

// Value returns the wrapped value of a scalar, or nil
func (n Node) Value() interface{} {
	return n.scalar
}

// IsNull is true for a scalar holding nil. The zero Node is a null scalar,
// which is what lookups return for missing keys.
func (n Node) IsNull() bool {
	return n.kind == KindScalar && n.scalar == nil
}

// Get returns the value of a record field, or a null scalar when n is not a
// record or has no such field
func (n Node) Get(key string) Node {
	for _, f := range n.fields {
		if f.Key == key {
			return f.Value
		}
	}
	return Node{}
}

// Has reports whether a record contains key
func (n Node) Has(key string) bool {
	for _, f := range n.fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Index returns the i-th item of a sequence, or a null scalar when out of range
func (n Node) Index(i int) Node {
	if i < 0 || i >= len(n.items) {
		return Node{}
	}
	return n.items[i]
}

// Path follows a chain of record keys (string) and sequence indexes (int)
func (n Node) Path(steps ...interface{}) Node {
	cur := n
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			cur = cur.Get(s)
		case int:
			cur = cur.Index(s)
		default:
			return Node{}
		}
	}
	return cur
}

// String returns a scalar as text. Null and non-scalar nodes give "".
func (n Node) String() string {
	if n.kind != KindScalar || n.scalar == nil {
		return ""
	}
	if s, ok := n.scalar.(string); ok {
		return s
	}
	return fmt.Sprint(n.scalar)
}
