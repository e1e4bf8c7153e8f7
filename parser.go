package argmap

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseResult is what a declared parser reports back to the merge
// engine: the parsed values for all declared flags and bound
// positionals, plus the residual tokens it did not consume.
type ParseResult struct {
	// Values maps each declared flag and positional name to its parsed
	// value. Typed flags report typed values; string flags and
	// positionals report raw text, which the merge engine runs through
	// type inference.
	Values map[string]any

	// Unknown holds the residual tokens not consumed by the parser:
	// undeclared flags normalized into --key value pairs (--key=value
	// is expanded) followed by bare tokens beyond the bound
	// positionals.
	Unknown []string

	// Positionals lists the names bound by position. Positionals are
	// excluded from default handling: they are either supplied or the
	// parse fails.
	Positionals []string
}

// Parser is the declared-argument capability consumed by the merge
// engine. Implementations must tolerate pre-sliced argument vectors,
// not only the full process argument list.
type Parser interface {
	Parse(argv []string) (*ParseResult, error)
}

// FlagParser adapts a pflag.FlagSet to the Parser interface, carrying
// the residual unknown tokens through instead of rejecting them.
type FlagParser struct {
	fs          *pflag.FlagSet
	positionals []string
}

// NewFlagParser wraps fs. The flag set should use
// pflag.ContinueOnError so parse failures surface as errors rather
// than terminating the process here.
func NewFlagParser(fs *pflag.FlagSet) *FlagParser {
	return &FlagParser{fs: fs}
}

// WithPositionals declares required positional argument names, bound
// in order from the tokens left over after flag parsing.
func (p *FlagParser) WithPositionals(names ...string) *FlagParser {
	p.positionals = append(p.positionals, names...)
	return p
}

// Parse splits argv into declared and unknown tokens, parses the
// declared part with the wrapped flag set, and binds positionals.
func (p *FlagParser) Parse(argv []string) (*ParseResult, error) {
	known, unknown := p.split(argv)

	if err := p.fs.Parse(known); err != nil {
		return nil, fmt.Errorf("failed to parse declared flags: %w", err)
	}

	values := make(map[string]any)
	var visitErr error
	p.fs.VisitAll(func(f *pflag.Flag) {
		v, err := flagValue(p.fs, f)
		if err != nil && visitErr == nil {
			visitErr = err
			return
		}
		values[f.Name] = v
	})
	if visitErr != nil {
		return nil, visitErr
	}

	rest := p.fs.Args()
	for i, name := range p.positionals {
		if i >= len(rest) {
			return nil, fmt.Errorf("missing required positional argument %q", name)
		}
		values[name] = rest[i]
	}
	// Bare tokens beyond the bound positionals are not consumed; they
	// stay residual so the merge engine can reject them.
	if len(rest) > len(p.positionals) {
		unknown = append(unknown, rest[len(p.positionals):]...)
	}

	return &ParseResult{
		Values:      values,
		Unknown:     unknown,
		Positionals: append([]string(nil), p.positionals...),
	}, nil
}

// split partitions argv into tokens belonging to declared flags and
// residual unknown tokens. Unknown --key=value tokens are expanded to
// a key/value pair so the merge engine sees a uniform shape.
func (p *FlagParser) split(argv []string) (known, unknown []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		switch {
		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			name, value, hasValue := strings.Cut(arg[2:], "=")
			flag := p.fs.Lookup(name)
			if flag == nil {
				unknown = append(unknown, "--"+name)
				if hasValue {
					unknown = append(unknown, value)
				} else if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "--") {
					i++
					unknown = append(unknown, argv[i])
				}
				continue
			}
			known = append(known, arg)
			if !hasValue && flag.Value.Type() != "bool" && i+1 < len(argv) {
				i++
				known = append(known, argv[i])
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// Shorthand cluster; route by its final flag, which is the
			// one pflag permits a value for.
			shorthands := strings.TrimPrefix(arg, "-")
			if eq := strings.Index(shorthands, "="); eq >= 0 {
				shorthands = shorthands[:eq]
			}
			flag := p.fs.ShorthandLookup(shorthands[len(shorthands)-1:])
			if flag == nil {
				unknown = append(unknown, arg)
				continue
			}
			known = append(known, arg)
			if !strings.Contains(arg, "=") && flag.Value.Type() != "bool" && i+1 < len(argv) {
				i++
				known = append(known, argv[i])
			}

		default:
			// Positional; the flag set collects it into Args.
			known = append(known, arg)
		}
	}
	return known, unknown
}

// flagValue extracts the parsed value of f with its declared type.
// String-typed flags stay textual so the merge engine can apply
// inference consistently with the other sources.
func flagValue(fs *pflag.FlagSet, f *pflag.Flag) (any, error) {
	switch f.Value.Type() {
	case "bool":
		return fs.GetBool(f.Name)
	case "int":
		v, err := fs.GetInt(f.Name)
		return int64(v), err
	case "int64":
		return fs.GetInt64(f.Name)
	case "float64":
		return fs.GetFloat64(f.Name)
	case "stringSlice":
		return fs.GetStringSlice(f.Name)
	default:
		return f.Value.String(), nil
	}
}
