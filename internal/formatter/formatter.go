// Package formatter builds Facturae party fragments from party records.
//
// All formatting is pure: the formatter holds no mutable state, performs no
// I/O and never mutates its inputs, so a single Formatter is safe for
// concurrent use.
package formatter

// Formatter renders parties into Facturae schema blocks.
type Formatter struct {
	split NameSplitter
}

// Option configures the formatter
type Option func(*Formatter)

// WithNameSplitter overrides the default natural-person name decomposition.
func WithNameSplitter(split NameSplitter) Option {
	return func(f *Formatter) {
		if split != nil {
			f.split = split
		}
	}
}

// New creates a formatter with the default name splitting strategy.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		split: SplitName,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
