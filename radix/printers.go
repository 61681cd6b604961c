package radix

import (
	"fmt"
	"io"
	"strings"
)

// debug utilities

// Dump writes a preorder rendering of the subtree rooted at e to w, one
// element per line:
//
//	"in" [base]
//	  "d" [node]
//	    "ustry" [value] = 1
func (e *Element[T]) Dump(w io.Writer, opts ...DumpOption) error {
	options := NewDumpOptions(opts...)
	return e.dump(w, options, 0, "")
}

func (e *Element[T]) dump(w io.Writer, o DumpOptions, depth int, parentKey string) error {
	key := parentKey + e.label
	name := e.label
	if o.fullKeys {
		name = key
	}

	var err error
	indent := strings.Repeat(o.indent, depth)
	if o.values && e.kind == KindValue {
		_, err = fmt.Fprintf(w, "%s%q [%s] = %v\n", indent, name, e.kind, e.value)
	} else {
		_, err = fmt.Fprintf(w, "%s%q [%s]\n", indent, name, e.kind)
	}
	if err != nil {
		return err
	}

	for _, child := range e.children {
		if err := child.dump(w, o, depth+1, key); err != nil {
			return err
		}
	}
	return nil
}

// String renders the subtree with the default Dump options.
func (e *Element[T]) String() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = e.Dump(&sb)
	return sb.String()
}
