package radix

// DumpOptions controls the rendering produced by Dump.
type DumpOptions struct {
	indent   string
	values   bool
	fullKeys bool
}

type DumpOption func(*DumpOptions)

// NewDumpOptions returns the defaults with opts applied: two space indent,
// values shown, bare labels.
func NewDumpOptions(opts ...DumpOption) DumpOptions {
	options := DumpOptions{
		indent: "  ",
		values: true,
	}
	for _, o := range opts {
		o(&options)
	}
	return options
}

// WithIndent sets the per depth indentation.
func WithIndent(indent string) DumpOption {
	return func(o *DumpOptions) {
		o.indent = indent
	}
}

// WithValues controls whether held values are printed.
func WithValues(values bool) DumpOption {
	return func(o *DumpOptions) {
		o.values = values
	}
}

// WithFullKeys prints each element's full key rather than its own label.
func WithFullKeys(fullKeys bool) DumpOption {
	return func(o *DumpOptions) {
		o.fullKeys = fullKeys
	}
}
