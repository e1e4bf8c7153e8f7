package argmap

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagParser(t *testing.T) {
	t.Run("SeparatesDeclaredAndUnknown", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("stage", "train", "")
		fs.Int("epochs", 10, "")

		parser := NewFlagParser(fs)
		argv := []string{"--stage", "predict", "--alpha", "1", "--epochs=5", "--beta", "x"}

		result, err := parser.Parse(argv)
		require.NoError(t, err)

		assert.Equal(t, "predict", result.Values["stage"])
		assert.Equal(t, int64(5), result.Values["epochs"])
		assert.Equal(t, []string{"--alpha", "1", "--beta", "x"}, result.Unknown)
	})

	t.Run("ExpandsUnknownEqualsForm", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		parser := NewFlagParser(fs)

		result, err := parser.Parse([]string{"--rate=0.5"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--rate", "0.5"}, result.Unknown)
	})

	t.Run("NegativeValueForUnknownFlag", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		parser := NewFlagParser(fs)

		result, err := parser.Parse([]string{"--offset", "-3"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--offset", "-3"}, result.Unknown)
	})

	t.Run("BoolFlagTakesNoValue", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Bool("verbose", false, "")

		parser := NewFlagParser(fs)
		result, err := parser.Parse([]string{"--verbose", "--alpha", "1"})
		require.NoError(t, err)

		assert.Equal(t, true, result.Values["verbose"])
		assert.Equal(t, []string{"--alpha", "1"}, result.Unknown)
	})

	t.Run("Shorthand", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.StringP("name", "n", "anon", "")

		parser := NewFlagParser(fs)
		result, err := parser.Parse([]string{"-n", "alice"})
		require.NoError(t, err)
		assert.Equal(t, "alice", result.Values["name"])
	})

	t.Run("InvalidDeclaredValue", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Int("epochs", 10, "")

		parser := NewFlagParser(fs)
		_, err := parser.Parse([]string{"--epochs", "many"})
		assert.Error(t, err)
	})

	t.Run("PreSlicedVector", func(t *testing.T) {
		// Parsers must accept any argument slice, not just os.Args.
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("stage", "train", "")

		parser := NewFlagParser(fs)
		result, err := parser.Parse([]string{"--stage", "eval"})
		require.NoError(t, err)
		assert.Equal(t, "eval", result.Values["stage"])
	})

	t.Run("LeftoverBareTokensStayResidual", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)

		parser := NewFlagParser(fs).WithPositionals("input")
		result, err := parser.Parse([]string{"data.txt", "stray", "extra"})
		require.NoError(t, err)
		assert.Equal(t, "data.txt", result.Values["input"])
		assert.Equal(t, []string{"stray", "extra"}, result.Unknown)
	})
}
