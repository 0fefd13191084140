package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 9876, c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "menu.yaml", c.MenuFile)
	assert.Equal(t, "ul", c.Kind)
	assert.False(t, c.Watch)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navmenu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8000\nkind: ol\nlog-level: debug\n"), 0o600))

	t.Setenv("NAVMENU_PORT", "8100")
	t.Setenv("NAVMENU_SHUTDOWN_TIMEOUT", "2s")

	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyKind, "ul", "")
	fs.Bool(KeyWatch, false, "")
	require.NoError(t, fs.Parse([]string{"--watch"}))
	require.NoError(t, BindFlags(v, fs))

	c, err := Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, 8100, c.Port, "env beats file")
	assert.Equal(t, "ol", c.Kind, "file beats unset flag")
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.Watch, "set flag")
	assert.Equal(t, 2*time.Second, c.ShutdownTimeout)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("NAVMENU_KIND", "not a tag")
	_, err = Load(New(), "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{Port: 80, Kind: "ul"}, true},
		{"port zero", Config{Port: 0, Kind: "div"}, true},
		{"port high", Config{Port: 70000, Kind: "ul"}, false},
		{"negative port", Config{Port: -1, Kind: "ul"}, false},
		{"bad kind", Config{Port: 80, Kind: ""}, false},
		{"negative timeout", Config{Port: 80, Kind: "ul", ShutdownTimeout: -time.Second}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
