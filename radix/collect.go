package radix

import "iter"

// KeyValue pairs a reconstructed full key with the element's value.
// Value points into the element, it is not a copy.
type KeyValue[T any] struct {
	Key   string
	Value *T
}

// pending is a queued element tagged with the index of its parent's full
// key in the path label table.
type pending[T any] struct {
	parent  int
	element *Element[T]
}

// All walks the subtree rooted at e in level order and yields the full key
// and value of every KindValue element, e included.
//
// Every element at depth d (relative to e) is yielded before any element at
// depth d+1, and siblings follow their parent's children order. The full key
// is the concatenation of labels from e down to the element, both ends
// included.
func (e *Element[T]) All() iter.Seq2[string, *T] {
	return func(yield func(string, *T) bool) {
		// labels[i] is the full key of the i'th element visited. A child's key
		// is one concatenation against its parent's entry.
		labels := []string{e.label}
		if e.kind == KindValue {
			if !yield(labels[0], &e.value) {
				return
			}
		}

		queue := make([]pending[T], 0, len(e.children))
		for _, child := range e.children {
			queue = append(queue, pending[T]{parent: 0, element: child})
		}

		for head := 0; head < len(queue); head++ {
			p := queue[head]
			// release the reference, the queue only grows
			queue[head] = pending[T]{}

			labels = append(labels, labels[p.parent]+p.element.label)
			i := len(labels) - 1

			if p.element.kind == KindValue {
				if !yield(labels[i], &p.element.value) {
					return
				}
			}
			for _, child := range p.element.children {
				queue = append(queue, pending[T]{parent: i, element: child})
			}
		}
	}
}

// CollectAllChildValues returns the full key and value of every KindValue
// element in the subtree rooted at e, e included, in the level order
// documented on All.
func (e *Element[T]) CollectAllChildValues() []KeyValue[T] {
	res := []KeyValue[T]{}
	for key, value := range e.All() {
		res = append(res, KeyValue[T]{Key: key, Value: value})
	}
	return res
}
