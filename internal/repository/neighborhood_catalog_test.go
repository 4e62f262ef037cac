package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborhoodCatalog_Lookup(t *testing.T) {
	catalog := NewNeighborhoodCatalog()

	t.Run("case-insensitive", func(t *testing.T) {
		upper, ok := catalog.Lookup("SOHO")
		require.True(t, ok)
		lower, ok := catalog.Lookup("soho")
		require.True(t, ok)
		assert.Equal(t, upper, lower)
		assert.Equal(t, "SoHo", upper.Name)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		n, ok := catalog.Lookup("  Times Square ")
		require.True(t, ok)
		assert.Equal(t, "Times Square", n.Name)
		assert.InDelta(t, 40.7580, n.Coordinates.Lat, 1e-9)
		assert.InDelta(t, -73.9855, n.Coordinates.Lng, 1e-9)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := catalog.Lookup("atlantis")
		assert.False(t, ok)
	})
}

func TestNeighborhoodCatalog_Keys(t *testing.T) {
	catalog := NewNeighborhoodCatalog()

	keys := catalog.Keys()
	assert.Len(t, keys, 16)
	assert.Equal(t, "times square", keys[0])
	assert.Equal(t, "brooklyn heights", keys[len(keys)-1])

	// Stable across calls.
	assert.Equal(t, keys, catalog.Keys())

	// Every key resolves.
	for _, key := range keys {
		_, ok := catalog.Lookup(key)
		assert.True(t, ok, "key %q should resolve", key)
	}
}

func TestNeighborhoodCatalog_All(t *testing.T) {
	catalog := NewNeighborhoodCatalog()
	all := catalog.All()
	require.Len(t, all, 16)
	assert.Equal(t, "Times Square", all[0].Name)
}
