package radix

import "slices"

// Element is a radix trie node over values of type T.
//
// Storage is uniform across kinds: value is only meaningful when kind is
// KindValue. Children are exclusively owned by the element.
type Element[T any] struct {
	kind     Kind
	label    string
	value    T
	children []*Element[T]
}

// NewBase returns a valueless anchor element.
func NewBase[T any](label string, children ...*Element[T]) *Element[T] {
	return &Element[T]{kind: KindBase, label: label, children: children}
}

// NewNode returns a valueless split point element.
func NewNode[T any](label string, children ...*Element[T]) *Element[T] {
	return &Element[T]{kind: KindNode, label: label, children: children}
}

// NewValue returns an element holding value.
func NewValue[T any](label string, value T, children ...*Element[T]) *Element[T] {
	return &Element[T]{kind: KindValue, label: label, value: value, children: children}
}

func (e *Element[T]) Kind() Kind { return e.kind }

// IsNode reports whether e is a KindNode element, i.e. eligible for NodeToValue.
func (e *Element[T]) IsNode() bool { return e.kind == KindNode }

func (e *Element[T]) Label() string { return e.label }

func (e *Element[T]) SetLabel(label string) { e.label = label }

// Children returns the owned child slice. Elements may be edited through it,
// the slice itself is changed with SetChildren, AppendChild, InsertChild and
// RemoveChild.
func (e *Element[T]) Children() []*Element[T] { return e.children }

func (e *Element[T]) SetChildren(children []*Element[T]) { e.children = children }

func (e *Element[T]) AppendChild(child *Element[T]) {
	e.children = append(e.children, child)
}

// InsertChild inserts child at index i, shifting later siblings right.
// It panics if i is out of range, as slices.Insert does.
func (e *Element[T]) InsertChild(i int, child *Element[T]) {
	e.children = slices.Insert(e.children, i, child)
}

// RemoveChild detaches and returns the child at index i, preserving the
// order of the remaining siblings.
func (e *Element[T]) RemoveChild(i int) *Element[T] {
	child := e.children[i]
	e.children = slices.Delete(e.children, i, i+1)
	return child
}

// Value returns the held value. ok is false for KindBase and KindNode.
func (e *Element[T]) Value() (value T, ok bool) {
	if e.kind != KindValue {
		return value, false
	}
	return e.value, true
}

// ValuePtr gives mutable access to the held value, or nil if e has none.
func (e *Element[T]) ValuePtr() *T {
	if e.kind != KindValue {
		return nil
	}
	return &e.value
}

// Unpack dismantles e into its label, value and children.
//
// value is nil unless e was a KindValue element. Ownership of all parts moves
// to the caller: e is left with an empty label, no children and a zero value
// slot, and must not be reattached.
func (e *Element[T]) Unpack() (label string, value *T, children []*Element[T]) {
	label, children = e.label, e.children
	if e.kind == KindValue {
		v := e.value
		value = &v
	}

	var zero T
	e.label = ""
	e.value = zero
	e.children = nil
	return label, value, children
}

// Len returns the number of value holding elements in the subtree rooted at
// e, e included.
func (e *Element[T]) Len() int {
	n := 0
	if e.kind == KindValue {
		n++
	}
	for _, child := range e.children {
		n += child.Len()
	}
	return n
}
