package domain

import "fmt"

// NodeKind discriminates the three shapes a YAML value can take.
type NodeKind string

const (
	KindMapping  NodeKind = "mapping"
	KindSequence NodeKind = "sequence"
	KindScalar   NodeKind = "scalar"
)

// ConfigNode is one node of a parsed dialog document. The tree preserves
// document order and source positions; mapping entries keep the order they
// appear in, duplicate keys keep the last value and are recorded.
type ConfigNode struct {
	Kind   NodeKind
	Path   string
	Key    string
	Line   int
	Column int

	// Mapping nodes.
	Entries       []MapEntry
	DuplicateKeys []DuplicateKey

	// Sequence nodes.
	Items []*ConfigNode

	// Scalar nodes.
	Value string
}

// MapEntry is one key/value pair of a mapping node, with the key's own
// source position.
type MapEntry struct {
	Key       string
	KeyLine   int
	KeyColumn int
	Value     *ConfigNode
}

// DuplicateKey records a repeated mapping key at the position of its later
// occurrence.
type DuplicateKey struct {
	Key    string
	Line   int
	Column int
}

// Get returns the value under key, or nil when the node is not a mapping or
// the key is absent.
func (n *ConfigNode) Get(key string) *ConfigNode {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Has reports whether the mapping carries the key.
func (n *ConfigNode) Has(key string) bool {
	return n.Get(key) != nil
}

// Scalar returns the scalar value under key. ok is false when the key is
// absent or its value is not a scalar.
func (n *ConfigNode) Scalar(key string) (string, bool) {
	v := n.Get(key)
	if v == nil || v.Kind != KindScalar {
		return "", false
	}
	return v.Value, true
}

// NodeID returns the mapping's "id" scalar, or "".
func (n *ConfigNode) NodeID() string {
	id, _ := n.Scalar("id")
	return id
}

// ActionKind returns the mapping's "kind" scalar, or "".
func (n *ConfigNode) ActionKind() string {
	kind, _ := n.Scalar("kind")
	return kind
}

// RootPath renders the path of a document root: "[id]" when the root mapping
// carries an id, "$" otherwise.
func RootPath(id string) string {
	if id == "" {
		return "$"
	}
	return "[" + id + "]"
}

// ChildPath renders the path of a mapping value. The anonymous root "$"
// contributes nothing, so top-level keys read as plain names.
func ChildPath(parent, key string) string {
	if parent == "$" {
		return key
	}
	return parent + "." + key
}

// ItemPath renders the path of a sequence item, preferring the item's id
// over its index.
func ItemPath(parent string, index int, id string) string {
	if id != "" {
		return fmt.Sprintf("%s[%s]", parent, id)
	}
	return fmt.Sprintf("%s[%d]", parent, index)
}

// ParseError reports malformed input that could not be turned into a tree.
// Line and Column are 1-based; Column is zero when the parser only reported
// a line.
type ParseError struct {
	Source string
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Column > 0 {
		loc = fmt.Sprintf("%s, column %d", loc, e.Column)
	}
	if e.Source == "" {
		return fmt.Sprintf("%s: %s", loc, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, loc, e.Msg)
}
