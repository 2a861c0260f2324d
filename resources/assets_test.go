package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconsAreBundled(t *testing.T) {
	for _, name := range []string{IconActive, IconPaused} {
		resource, err := Icon(name)
		require.NoError(t, err)
		assert.Equal(t, name, resource.Name())
		assert.Contains(t, string(resource.Content()), "<svg")

		cached := MustIcon(name)
		assert.Same(t, resource, cached)
	}
}

func TestMissingIcon(t *testing.T) {
	_, err := Icon("absent.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("absent.svg") })
}
