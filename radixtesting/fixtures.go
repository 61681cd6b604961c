package radixtesting

import (
	"math/rand"
	"slices"

	"github.com/YaxinCheng/another-radix-trie/radix"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IndustryKeys is the level ordered key set held by IndustryTree.
var IndustryKeys = []string{
	"industry",
	"india",
	"industrial",
	"indian",
	"industrialization",
}

// IndustryTree builds the compressed trie over
// {industry, industrial, industrialization, india, indian}:
//
//	"in" -> "d" -> "ustry"*
//	             -> "ustri" -> "al"* -> "ization"*
//	             -> "ia"* -> "n"*
//
// Starred elements hold a value.
func IndustryTree() *radix.Element[struct{}] {
	return radix.NewBase("in",
		radix.NewNode("d",
			radix.NewValue[struct{}]("ustry", struct{}{}),
			radix.NewNode("ustri",
				radix.NewValue("al", struct{}{},
					radix.NewValue[struct{}]("ization", struct{}{}),
				),
			),
			radix.NewValue("ia", struct{}{},
				radix.NewValue[struct{}]("n", struct{}{}),
			),
		),
	)
}

// Entry is an expected key/value pair for a generated tree.
type Entry struct {
	Key   string
	Value uuid.UUID
}

type RandomTreeConfig struct {
	MaxDepth    int
	MaxChildren int
	// ValuePercent is the chance, 0-100, that a non root element holds a value.
	ValuePercent int
}

// label alphabet, includes multi byte runes so cuts can miss a boundary.
var labelRunes = []rune("abcdefghijklmnopqrstuvwxyzäöüé")

// RandomTree generates a well formed tree rooted at a KindBase element.
// Every value is a distinct uuid drawn from the context RNG.
//
// The returned entries are the level ordered (key, value) pairs
// CollectAllChildValues must produce. They are derived independently: a
// depth first walk threading the key down, stably sorted by depth.
func (c *TestContext) RandomTree(cfg RandomTreeConfig) (*radix.Element[uuid.UUID], []Entry) {
	root := radix.NewBase[uuid.UUID](c.randomLabel(0))
	c.grow(root, cfg, 1)

	type visit struct {
		depth int
		entry Entry
	}
	var visits []visit
	var walk func(e *radix.Element[uuid.UUID], depth int, key string)
	walk = func(e *radix.Element[uuid.UUID], depth int, key string) {
		key += e.Label()
		if v, ok := e.Value(); ok {
			visits = append(visits, visit{depth, Entry{Key: key, Value: v}})
		}
		for _, child := range e.Children() {
			walk(child, depth+1, key)
		}
	}
	walk(root, 0, "")

	slices.SortStableFunc(visits, func(a, b visit) int { return a.depth - b.depth })
	entries := make([]Entry, 0, len(visits))
	for _, v := range visits {
		entries = append(entries, v.entry)
	}
	return root, entries
}

func (c *TestContext) grow(parent *radix.Element[uuid.UUID], cfg RandomTreeConfig, depth int) {
	if depth > cfg.MaxDepth || cfg.MaxChildren <= 0 {
		return
	}

	// siblings must not share a first rune
	first := c.Rand.Perm(len(labelRunes))
	n := c.Rand.Intn(cfg.MaxChildren + 1)
	for i := 0; i < n && i < len(first); i++ {
		label := string(labelRunes[first[i]]) + c.randomLabel(3)

		var child *radix.Element[uuid.UUID]
		if c.Rand.Intn(100) < cfg.ValuePercent {
			id, err := uuid.NewRandomFromReader(c.Rand)
			require.NoError(c.T, err)
			child = radix.NewValue[uuid.UUID](label, id)
		} else {
			child = radix.NewNode[uuid.UUID](label)
		}
		parent.AppendChild(child)
		c.grow(child, cfg, depth+1)
	}
}

func (c *TestContext) randomLabel(maxRunes int) string {
	return RandomLabel(c.Rand, maxRunes)
}

// RandomLabel returns a label of up to maxRunes runes from the generator
// alphabet. The result may be empty.
func RandomLabel(rng *rand.Rand, maxRunes int) string {
	n := 0
	if maxRunes > 0 {
		n = rng.Intn(maxRunes + 1)
	}
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = labelRunes[rng.Intn(len(labelRunes))]
	}
	return string(rs)
}
