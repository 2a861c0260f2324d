package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimensions(t *testing.T) {
	output := "name of display:    :0\n" +
		"screen #0:\n" +
		"  dimensions:    2560x1440 pixels (677x381 millimeters)\n" +
		"  resolution:    96x96 dots per inch\n"

	width, height, err := parseDimensions(output)

	require.NoError(t, err)
	assert.Equal(t, 2560, width)
	assert.Equal(t, 1440, height)
}

func TestParseDimensionsMissingLine(t *testing.T) {
	_, _, err := parseDimensions("name of display:    :0\n")

	assert.Error(t, err)
}
