// Command argmap-demo merges a demo flag set, a YAML file, and ad-hoc
// --key value arguments into one store and prints the result.
//
// Examples:
//
//	argmap-demo --epochs 20 --lr 0.01
//	argmap-demo --config args.yaml --stage predict --batch_size 64
//	argmap-demo --out out/args.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"argmap"
)

func main() {
	root := &cobra.Command{
		Use:   "argmap-demo [flags] [--key value ...]",
		Short: "Merge CLI arguments, a YAML file, and defaults into a write-once store",
		// The merge engine owns all argument handling, including
		// unknown --key value pairs cobra would otherwise reject.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	fs := pflag.NewFlagSet("argmap-demo", pflag.ContinueOnError)
	fs.String("stage", "train", "pipeline stage to run")
	fs.Int("epochs", 10, "number of training epochs")
	fs.Float64("lr", 0.001, "learning rate")
	fs.String("out", "", "path to save the merged configuration")
	fs.Usage = func() {
		fmt.Fprintln(cmd.OutOrStderr(), cmd.UseLine())
		fs.PrintDefaults()
	}

	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			fs.Usage()
			return nil
		}
	}

	store, err := argmap.NewBuilder().
		WithParser(argmap.NewFlagParser(fs)).
		WithArgs(args).
		Build()
	if err != nil {
		return err
	}

	// Values declared at their point of use still land in the saved
	// output, keeping the run reproducible.
	store.SetDefault("seed", 42)

	data, err := argmap.DumpYAML(store.Snapshot())
	if err != nil {
		return err
	}
	cmd.OutOrStdout().Write(data)

	if out, err := store.String("out"); err == nil && out != "" {
		return store.Save(out)
	}
	return nil
}
