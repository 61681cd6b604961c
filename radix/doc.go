package radix

/*

# Radix trie elements

This package provides the node type for a compressed prefix tree mapping
string keys to values of any type. Shared key fragments ("labels") are
stored once per shared path rather than once per key.

It follows the same "primitives" style as `go-merklelog/urkle`:

- a single element type with explicit structural accessors
- small in-place edit primitives for splitting and merging edges
- a burden of knowledge on the caller for the trie invariants

The algorithm which inserts, finds and removes keys lives with the caller.
This package only supplies the pieces it manipulates.

## Element kinds

Every element carries a label and an ordered slice of children. The kind
decides whether it also carries a value:

- KindBase: never has a value. Used for the root.
- KindNode: no value yet. Created when an edge is split.
- KindValue: has a value. May still have children, so "leaf" and
  "has value" are independent.

Only a KindNode element can acquire a value, via NodeToValue. The element
keeps its identity, so its slot in the parent's children is undisturbed.

## Core invariants

The caller is responsible for:

1. no two siblings having labels that begin with the same byte
2. each element having exactly one parent slot (no sharing, no cycles)
3. prefix cuts landing on a character boundary

Violations of (3), and attempts to promote anything other than a
KindNode, panic. Violations of (1) and (2) are not detected.

## Key reconstruction

The full key of an element is the concatenation of labels from the
starting element down to it. All walks the subtree breadth first and
materializes each full key with a single concatenation against its
parent's already built key:

	         "in"
	          |
	         "d"
	   /      |      \
	"ustry" "ustri"  "ia"
	          |       |
	         "al"    "n"
	          |
	      "ization"

yields industry, india, industrial, indian, industrialization in that
order. Results are level ordered, not lexicographically sorted.

## Concurrency

There is no internal synchronization. Callers sharing a trie between
goroutines must lock the whole structure.

*/
