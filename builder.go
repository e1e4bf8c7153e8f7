package argmap

import (
	"fmt"
	"log/slog"
	"os"
)

// Builder provides a fluent interface for constructing and merging a
// store. Supplying more than one file or more than one parser is
// ambiguous by construction and fails the build with
// ErrAmbiguousSource.
type Builder struct {
	store  *Store
	parser Parser
	file   string
	args   []string
	logger *slog.Logger
	err    error

	haveParser bool
	haveFile   bool
}

// NewBuilder creates a builder that merges os.Args[1:] by default.
func NewBuilder() *Builder {
	return &Builder{
		store: New(),
		args:  os.Args[1:],
	}
}

// WithParser sets the declared-argument parser.
func (b *Builder) WithParser(parser Parser) *Builder {
	if b.haveParser {
		b.err = fmt.Errorf("%w: parser supplied more than once", ErrAmbiguousSource)
		return b
	}
	b.parser = parser
	b.haveParser = true
	return b
}

// WithFile sets the configuration file path. The reserved --config
// flag still takes precedence over this path at merge time.
func (b *Builder) WithFile(path string) *Builder {
	if b.haveFile {
		b.err = fmt.Errorf("%w: config file supplied more than once (%q and %q)",
			ErrAmbiguousSource, b.file, path)
		return b
	}
	b.file = path
	b.haveFile = true
	return b
}

// WithArgs sets the argument vector to merge, replacing os.Args[1:].
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithLogger sets the logger used for merge diagnostics.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build runs the merge and returns the populated store.
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.logger != nil {
		b.store.SetLogger(b.logger)
	}
	if err := b.store.Merge(b.parser, b.file, b.args); err != nil {
		return nil, err
	}
	return b.store, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Store {
	store, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("argmap build failed: %v", err))
	}
	return store
}
