package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DefaultsWithoutConfigFile(t *testing.T) {
	cfg := Get()

	require.NotNil(t, cfg)
	assert.Equal(t, 9095, cfg.Port)
	assert.EqualValues(t, 2, cfg.RoundRobinTimeQuantum)

	// Singleton: repeated calls return the same instance.
	assert.Same(t, cfg, Get())
}
