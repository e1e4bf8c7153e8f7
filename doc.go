// Package argmap maintains a process-wide, write-once configuration store
// merged from command-line arguments, a YAML file, and declared-flag
// defaults under a fixed priority order.
//
// Features:
//   - Write-once mapping: no key is ever overwritten after first assignment
//   - Four-source priority merge: explicit flags > unknown CLI args > file > defaults
//   - Set-if-absent accessor for declaring arguments at their point of use
//   - YAML scalar type inference that never coerces yes/no/on/off to booleans
//   - Round-trip persistence: the saved file reproduces every typed value
//   - Thread-safe operations using sync.RWMutex
//   - Builder pattern for initialization
//   - Struct decoding via mapstructure
//
// Quick Start:
//
//	fs := pflag.NewFlagSet("train", pflag.ContinueOnError)
//	fs.String("stage", "train", "pipeline stage")
//	fs.Int("epochs", 10, "training epochs")
//
//	store, err := argmap.NewBuilder().
//	    WithParser(argmap.NewFlagParser(fs)).
//	    WithFile("args.yaml").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere else in the program: declare-and-read in one call.
//	lr := store.SetDefault("lr", 0.001)
//
//	// At the end of the run, persist the exact merged configuration.
//	store.Save("out/args.yaml")
//
// Merge Precedence (highest to lowest):
//  1. Declared flags the user explicitly passed (--epochs 20)
//  2. Unknown --key value pairs from the command line
//  3. Configuration file (the --config flag overrides the programmatic path)
//  4. Declared-flag defaults
//
// Reproducibility:
// Because values are never overwritten, the final saved file plus the
// program's SetDefault call sites fully determine every value on a
// re-run, even if defaults in code change over time.
//
// Thread Safety:
// The merge runs once near process start. Afterward the store is safe
// for concurrent use; first-time writes are serialized by an internal
// mutex so concurrent SetDefault calls for the same key settle on a
// single winner.
package argmap
