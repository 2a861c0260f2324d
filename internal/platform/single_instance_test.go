package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceGuard(t *testing.T) {
	name := "PomoBar-" + t.Name()

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Contains(t, guard.Address(), "127.0.0.1:")

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestPortFromNameIsStable(t *testing.T) {
	port := portFromName("PomoBar")

	assert.Equal(t, port, portFromName("PomoBar"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}
