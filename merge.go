package argmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// ConfigFlag is the reserved command-line flag selecting the
// configuration file. It is consumed by the merge engine itself and
// never stored as a key.
const ConfigFlag = "config"

// Merge populates the store from the four configuration sources in
// strict descending priority:
//
//  1. declared flags the user explicitly passed (and positionals)
//  2. unknown --key value pairs
//  3. the configuration file (--config wins over configFile)
//  4. declared-flag defaults
//
// Each later tier uses set-if-absent semantics, so a value set by a
// higher-priority tier is never overridden. Merge is one-shot: the
// store must be empty, and a populated store fails with
// ErrAlreadyInitialized.
//
// Whether a flag was explicitly passed is decided by literal presence
// of a --name or -name token in argv, never by parser internals, so a
// user passing a value identical to the default still counts as
// explicit.
func (s *Store) Merge(parser Parser, configFile string, argv []string) error {
	if n := s.Len(); n != 0 {
		return fmt.Errorf("%w: store already holds %d keys", ErrAlreadyInitialized, n)
	}

	cliPath, argv, err := extractConfigPath(argv)
	if err != nil {
		return err
	}

	if parser == nil {
		fs := pflag.NewFlagSet("argmap", pflag.ContinueOnError)
		parser = NewFlagParser(fs)
	}
	result, err := parser.Parse(argv)
	if err != nil {
		return err
	}

	positional := make(map[string]bool, len(result.Positionals))
	for _, name := range result.Positionals {
		positional[name] = true
	}

	// Tier 1: explicit declared-flag values and positionals.
	for _, name := range sortedKeys(result.Values) {
		if !positional[name] && !userSpecified(argv, name) {
			continue
		}
		value := result.Values[name]
		if text, ok := value.(string); ok {
			value = Infer(text)
		}
		if err := s.SetOnce(name, value); err != nil {
			return err
		}
	}

	// Tier 2: unknown --key value pairs.
	if err := s.applyUnknown(result.Unknown); err != nil {
		return err
	}

	// Tier 3: configuration file.
	path := configFile
	if cliPath != "" {
		if configFile != "" && configFile != cliPath {
			s.log().Warn("config path overridden by --config flag",
				"given", configFile, "config", cliPath)
		}
		path = cliPath
	}
	if path != "" {
		if err := s.applyFile(path); err != nil {
			return err
		}
	}

	// Tier 4: declared-flag defaults, excluding positionals.
	for _, name := range sortedKeys(result.Values) {
		if positional[name] || userSpecified(argv, name) {
			continue
		}
		s.SetDefault(name, result.Values[name])
	}

	return nil
}

// applyUnknown writes tier-2 values. Residual tokens must form
// complete --key value pairs with unique keys; anything else is a
// fatal configuration error.
func (s *Store) applyUnknown(tokens []string) error {
	if len(tokens)%2 != 0 {
		return fmt.Errorf("%w: got %d tokens %q", ErrOddUnknownArgs, len(tokens), tokens)
	}

	seen := make(map[string]bool, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		key, value := tokens[i], tokens[i+1]
		if !strings.HasPrefix(key, "--") {
			return fmt.Errorf("%w: got %q", ErrMalformedKey, key)
		}
		key = strings.TrimPrefix(key, "--")
		if seen[key] {
			return fmt.Errorf("%w: --%s", ErrDuplicateUnknownArg, key)
		}
		seen[key] = true

		if err := s.SetOnce(key, Infer(value)); err != nil {
			return err
		}
	}
	return nil
}

// applyFile writes tier-3 values: every top-level key of the file
// mapping, with set-if-absent semantics.
func (s *Store) applyFile(path string) error {
	s.log().Info("reading configuration file", "path", path)

	tree, err := decodeFile(path)
	if err != nil {
		return err
	}
	if tree == nil {
		return nil // empty file
	}

	mapping, ok := tree.(map[string]any)
	if !ok {
		return fmt.Errorf("config file %q: top-level document must be a mapping, got %T", path, tree)
	}

	for _, key := range sortedKeys(mapping) {
		s.SetDefault(key, mapping[key])
	}
	return nil
}

// extractConfigPath strips the reserved --config tokens from argv and
// returns the selected path, if any.
func extractConfigPath(argv []string) (string, []string, error) {
	var path string
	rest := make([]string, 0, len(argv))

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--"+ConfigFlag {
			if i+1 >= len(argv) {
				return "", nil, fmt.Errorf("missing value for --%s flag", ConfigFlag)
			}
			path = argv[i+1]
			i++
			continue
		}
		if strings.HasPrefix(arg, "--"+ConfigFlag+"=") {
			path = strings.TrimPrefix(arg, "--"+ConfigFlag+"=")
			continue
		}
		rest = append(rest, arg)
	}
	return path, rest, nil
}

// userSpecified reports whether a --name or -name token literally
// appears in argv, in either space-separated or = form.
func userSpecified(argv []string, name string) bool {
	for _, arg := range argv {
		if arg == "--"+name || arg == "-"+name ||
			strings.HasPrefix(arg, "--"+name+"=") ||
			strings.HasPrefix(arg, "-"+name+"=") {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
