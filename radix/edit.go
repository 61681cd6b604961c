package radix

import (
	"fmt"
	"unicode/utf8"
)

// RemoveLabelPrefix deletes the first prefixLen bytes of the label in place.
//
// Used when an edge is split: the new intermediate element takes the shared
// prefix and e keeps the remainder.
//
// prefixLen MUST be within the label and MUST end on a UTF-8 character
// boundary. Otherwise RemoveLabelPrefix panics.
func (e *Element[T]) RemoveLabelPrefix(prefixLen int) {
	if prefixLen < 0 || prefixLen > len(e.label) {
		panic(fmt.Errorf("%w: prefixLen=%d, len(label)=%d", ErrLabelPrefixOutOfRange, prefixLen, len(e.label)))
	}
	if prefixLen < len(e.label) && !utf8.RuneStart(e.label[prefixLen]) {
		panic(fmt.Errorf("%w: prefixLen=%d, label=%q", ErrLabelPrefixNotCharBoundary, prefixLen, e.label))
	}
	e.label = e.label[prefixLen:]
}

// AddLabelPrefix prepends prefix to the label in place.
//
// Used when folding an element into its only child, or undoing a split.
func (e *Element[T]) AddLabelPrefix(prefix string) {
	e.label = prefix + e.label
}

// NodeToValue promotes a KindNode element to a KindValue element holding
// value.
//
// The promotion happens in place: node keeps its pointer identity, and so
// its slot in the parent, its label and its children in their original
// order. There is no demotion.
//
// node MUST be a KindNode element. Promoting KindBase or KindValue panics.
func NodeToValue[T any](node *Element[T], value T) {
	if node.kind != KindNode {
		panic(fmt.Errorf("%w: kind=%s, label=%q", ErrNotNode, node.kind, node.label))
	}
	node.kind = KindValue
	node.value = value
}
