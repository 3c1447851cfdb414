package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type encoderConfig struct {
	scheme   string
	capacity int
	strict   bool
}

func (c *encoderConfig) setCapacity(n int) error {
	if n < 0 {
		return errors.New("capacity cannot be negative")
	}
	c.capacity = n

	return nil
}

func TestOption_New(t *testing.T) {
	t.Run("applies a fallible option", func(t *testing.T) {
		cfg := &encoderConfig{}
		opt := New(func(c *encoderConfig) error {
			return c.setCapacity(16)
		})

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 16, cfg.capacity)
	})

	t.Run("propagates option errors", func(t *testing.T) {
		cfg := &encoderConfig{}
		opt := New(func(c *encoderConfig) error {
			return c.setCapacity(-1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "capacity cannot be negative")
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &encoderConfig{}
	opt := NoError(func(c *encoderConfig) {
		c.scheme = "gzip"
	})

	err := opt.apply(cfg)
	require.NoError(t, err)
	require.Equal(t, "gzip", cfg.scheme)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &encoderConfig{}
		err := Apply(cfg,
			New(func(c *encoderConfig) error { return c.setCapacity(8) }),
			NoError(func(c *encoderConfig) { c.scheme = "deflate" }),
			NoError(func(c *encoderConfig) { c.strict = true }),
		)

		require.NoError(t, err)
		require.Equal(t, 8, cfg.capacity)
		require.Equal(t, "deflate", cfg.scheme)
		require.True(t, cfg.strict)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		cfg := &encoderConfig{}
		err := Apply(cfg,
			New(func(c *encoderConfig) error { return c.setCapacity(4) }),
			New(func(c *encoderConfig) error { return c.setCapacity(-1) }),
			NoError(func(c *encoderConfig) { c.scheme = "unreached" }),
		)

		require.Error(t, err)
		require.Equal(t, 4, cfg.capacity)
		require.Empty(t, cfg.scheme)
	})

	t.Run("accepts zero options", func(t *testing.T) {
		cfg := &encoderConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, encoderConfig{}, *cfg)
	})
}

func TestOption_OtherTargetTypes(t *testing.T) {
	var n int
	opt := NoError(func(p *int) {
		*p = 42
	})

	err := opt.apply(&n)
	require.NoError(t, err)
	require.Equal(t, 42, n)
}
