package argmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	s := New()
	require.NoError(t, s.SetOnce("server.host", "example.com"))
	require.NoError(t, s.SetOnce("server.port", int64(9000)))
	require.NoError(t, s.SetOnce("server.timeout", "30s"))
	require.NoError(t, s.SetOnce("debug", true))
	require.NoError(t, s.SetOnce("tags", "a,b,c"))

	type serverConfig struct {
		Host    string        `yaml:"host"`
		Port    int           `yaml:"port"`
		Timeout time.Duration `yaml:"timeout"`
	}

	t.Run("Subtree", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, s.Scan("server", &cfg))

		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("Root", func(t *testing.T) {
		var cfg struct {
			Server serverConfig `yaml:"server"`
			Debug  bool         `yaml:"debug"`
			Tags   []string     `yaml:"tags"`
		}
		require.NoError(t, s.Scan("", &cfg))

		assert.Equal(t, "example.com", cfg.Server.Host)
		assert.True(t, cfg.Debug)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
	})

	t.Run("AbsentSectionDecodesEmpty", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, s.Scan("missing.section", &cfg))
		assert.Equal(t, serverConfig{}, cfg)
	})

	t.Run("NonPointerTarget", func(t *testing.T) {
		var cfg serverConfig
		err := s.Scan("server", cfg)
		assert.Error(t, err)
	})

	t.Run("NonMapPath", func(t *testing.T) {
		var cfg serverConfig
		err := s.Scan("debug", &cfg)
		assert.Error(t, err)
	})
}
