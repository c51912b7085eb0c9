package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cryptdroid/meteor/internal/physics"
)

func TestListOrderAndValidity(t *testing.T) {
	list := List()
	require.Len(t, list, 5)
	assert.Equal(t, "Chelyabinsk (2013)", list[0].Name)
	assert.Equal(t, "Chicxulub-class", list[len(list)-1].Name)

	// Every preset must be runnable as-is.
	engine := physics.NewEngine(physics.DefaultConstants(), nil)
	for _, p := range list {
		_, err := engine.Simulate(p.Parameters)
		assert.NoError(t, err, "preset %q", p.Name)
	}
}

func TestListReturnsCopy(t *testing.T) {
	first := List()
	first[0].Name = "mutated"

	fresh := List()
	assert.Equal(t, "Chelyabinsk (2013)", fresh[0].Name)
}

func TestFind(t *testing.T) {
	p, ok := Find("Tunguska (1908)")
	require.True(t, ok)
	assert.Equal(t, 50.0, p.Parameters.DiameterM)

	_, ok = Find("no such scenario")
	assert.False(t, ok)
}
