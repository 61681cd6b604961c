package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recoverPanic runs f and returns whatever it panicked with, or nil.
func recoverPanic(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}

func requirePanicErrorIs(t *testing.T, target error, f func()) {
	t.Helper()
	r := recoverPanic(f)
	require.NotNil(t, r, "expected a panic")
	err, ok := r.(error)
	require.True(t, ok, "panic value %v is not an error", r)
	require.ErrorIs(t, err, target)
}

func TestRemoveLabelPrefix(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		prefixLen int
		want      string
	}{
		{"split inside the label", "industry", 3, "ustry"},
		{"zero length is a no-op", "india", 0, "india"},
		{"whole label", "india", 5, ""},
		{"multi byte boundary", "héllo", 3, "llo"},
		{"empty label", "", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewNode[int](tt.label)
			e.RemoveLabelPrefix(tt.prefixLen)
			require.Equal(t, tt.want, e.Label())
		})
	}
}

func TestRemoveLabelPrefixPanics(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		prefixLen int
		target    error
	}{
		{"longer than the label", "in", 3, ErrLabelPrefixOutOfRange},
		{"negative", "in", -1, ErrLabelPrefixOutOfRange},
		{"inside a multi byte rune", "héllo", 2, ErrLabelPrefixNotCharBoundary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewValue(tt.label, 1)
			requirePanicErrorIs(t, tt.target, func() { e.RemoveLabelPrefix(tt.prefixLen) })
			// the label is untouched
			require.Equal(t, tt.label, e.Label())
		})
	}
}

func TestAddLabelPrefix(t *testing.T) {
	e := NewValue("al", 1)
	e.AddLabelPrefix("ustri")
	require.Equal(t, "ustrial", e.Label())

	e.AddLabelPrefix("")
	require.Equal(t, "ustrial", e.Label())
}

func TestLabelPrefixRoundTrip(t *testing.T) {
	labels := []string{"", "a", "ization", "ünï", "日本"}
	prefixes := []string{"", "d", "ustri", "é", "語"}

	for _, label := range labels {
		for _, p := range prefixes {
			for _, e := range []*Element[int]{NewBase[int](label), NewNode[int](label), NewValue(label, 1)} {
				e.AddLabelPrefix(p)
				require.Equal(t, p+label, e.Label())
				e.RemoveLabelPrefix(len(p))
				require.Equal(t, label, e.Label())
			}
		}
	}
}

func TestNodeToValue(t *testing.T) {
	al := NewValue("al", 1)
	other := NewValue("um", 2)
	n := NewNode("ustri", al, other)

	parent := NewNode("d", NewValue("ustry", 0), n, NewValue("ia", 3))

	NodeToValue(n, 9)

	require.False(t, n.IsNode())
	require.Equal(t, KindValue, n.Kind())
	require.Equal(t, "ustri", n.Label())
	v, ok := n.Value()
	require.True(t, ok)
	require.Equal(t, 9, v)

	// children preserved in order, by identity
	require.Len(t, n.Children(), 2)
	require.Same(t, al, n.Children()[0])
	require.Same(t, other, n.Children()[1])

	// still occupies the same slot in its parent
	require.Same(t, n, parent.Children()[1])
	require.Equal(t, "ustry", parent.Children()[0].Label())
	require.Equal(t, "ia", parent.Children()[2].Label())
}

func TestNodeToValuePanics(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		e := NewBase[int]("in")
		requirePanicErrorIs(t, ErrNotNode, func() { NodeToValue(e, 1) })
		require.Equal(t, KindBase, e.Kind())
	})
	t.Run("value", func(t *testing.T) {
		e := NewValue("ia", 1)
		requirePanicErrorIs(t, ErrNotNode, func() { NodeToValue(e, 2) })
		v, _ := e.Value()
		require.Equal(t, 1, v)
	})
	t.Run("already promoted", func(t *testing.T) {
		e := NewNode[int]("d")
		NodeToValue(e, 1)
		requirePanicErrorIs(t, ErrNotNode, func() { NodeToValue(e, 2) })
	})
}
