package radix

import "errors"

// Kind discriminates the three element variants.
type Kind uint8

const (
	// KindBase is a permanently valueless anchor, typically the trie root.
	KindBase Kind = 1
	// KindNode is a valueless split point which may later be promoted.
	KindNode Kind = 2
	// KindValue carries a value. It may still have children.
	KindValue Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindNode:
		return "node"
	case KindValue:
		return "value"
	default:
		return "invalid"
	}
}

// The edit primitives panic with errors wrapping these. They indicate a
// defect in the calling trie algorithm, never a data dependent failure.
var (
	ErrLabelPrefixOutOfRange      = errors.New("radix: label prefix length out of range")
	ErrLabelPrefixNotCharBoundary = errors.New("radix: label prefix does not end on a character boundary")
	ErrNotNode                    = errors.New("radix: element is not a node")
)
