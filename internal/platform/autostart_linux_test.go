package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopEntry(t *testing.T) {
	item, err := newLoginItem("PomoBar", "/opt/pomo bar/pomobar")
	require.NoError(t, err)

	content, err := renderLoginItem(desktopEntryTemplate, item)
	require.NoError(t, err)
	entry := string(content)
	assert.Contains(t, entry, "[Desktop Entry]\n")
	assert.Contains(t, entry, "Name=PomoBar\n")
	assert.Contains(t, entry, "Exec=\"/opt/pomo bar/pomobar\"\n")
}

func TestDesktopExecLine(t *testing.T) {
	assert.Equal(t, "/usr/bin/pomobar", desktopExecLine("/usr/bin/pomobar"))
	assert.Equal(t, `"/opt/a b/pomobar"`, desktopExecLine("/opt/a b/pomobar"))
	assert.Equal(t, `"/opt/\$x y"`, desktopExecLine("/opt/$x y"))
}

func TestAutostartRoundTrip(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	service := NewService()

	require.NoError(t, service.EnableAutostart("Pomo Bar", "/usr/bin/pomobar"))
	path := filepath.Join(configDir, "autostart", "pomo-bar.desktop")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Exec=/usr/bin/pomobar\n")

	require.NoError(t, service.DisableAutostart("Pomo Bar"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	assert.NoError(t, service.DisableAutostart("Pomo Bar"))
}
