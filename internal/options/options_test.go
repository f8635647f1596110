package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	bits  int
	name  string
	calls []string
}

func withBits(bits int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if bits < 0 {
			return errors.New("bits cannot be negative")
		}
		c.bits = bits
		c.calls = append(c.calls, "bits")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("geo"), withBits(12))
		require.NoError(t, err)
		require.Equal(t, 12, cfg.bits)
		require.Equal(t, "geo", cfg.name)
		require.Equal(t, []string{"name", "bits"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withBits(-1), withName("never"))
		require.EqualError(t, err, "bits cannot be negative")
		require.Empty(t, cfg.name)
		require.Empty(t, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, &testConfig{}, cfg)
	})
}
