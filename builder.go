package ahocorasick

import (
	"github.com/coregx/ahocorasick/nfa"
)

// Option configures automaton construction.
type Option func(*Builder)

// WithMatchKind selects the match semantics baked into the automaton.
// The default is MatchKindStandard.
func WithMatchKind(kind MatchKind) Option {
	return func(b *Builder) { b.config.MatchKind = kind }
}

// WithASCIICaseInsensitive makes every pattern match both ASCII cases
// of its letters. Non-ASCII bytes are never folded.
func WithASCIICaseInsensitive(enabled bool) Option {
	return func(b *Builder) { b.config.ASCIICaseInsensitive = enabled }
}

// WithPrefilter controls whether a literal-scanning accelerator is
// built alongside the automaton. It is enabled by default and only
// affects throughput, never which matches are reported.
func WithPrefilter(enabled bool) Option {
	return func(b *Builder) { b.config.Prefilter = enabled }
}

// Builder accumulates patterns and configuration for one automaton.
// It is not safe for concurrent use; the Automaton it builds is.
type Builder struct {
	config   nfa.CompilerConfig
	patterns [][]byte
}

// NewBuilder returns a builder with the given options applied on top
// of the defaults.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{config: nfa.DefaultCompilerConfig()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddPattern adds one pattern. The bytes are copied, so the caller may
// reuse the slice. Pattern ids are assigned in insertion order. The
// builder is returned to allow chaining.
func (b *Builder) AddPattern(pattern []byte) *Builder {
	b.patterns = append(b.patterns, append([]byte(nil), pattern...))
	return b
}

// AddPatterns adds each pattern in order.
func (b *Builder) AddPatterns(patterns [][]byte) *Builder {
	for _, p := range patterns {
		b.AddPattern(p)
	}
	return b
}

// AddString adds one pattern given as a string.
func (b *Builder) AddString(pattern string) *Builder {
	b.patterns = append(b.patterns, []byte(pattern))
	return b
}

// Build compiles the accumulated patterns into an immutable Automaton.
// It returns a *nfa.BuildError when a pattern or the state graph
// exceeds a construction limit.
func (b *Builder) Build() (*Automaton, error) {
	n, err := nfa.NewCompiler(b.config).Compile(b.patterns)
	if err != nil {
		return nil, err
	}
	return &Automaton{nfa: n, prefilter: n.Prefilter()}, nil
}
