package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tracking/internal/core"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, cfg.Load(viper.New(), fs)
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "Tracking", cfg.Title)
	assert.Equal(t, core.Size{W: 500, H: 500}, cfg.Window)
	assert.Equal(t, core.Size{W: 1920, H: 1080}, cfg.Reference)
	assert.False(t, cfg.ReferenceFromDisplay)
	assert.Equal(t, 10*time.Millisecond, cfg.Tick)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.HUD)
	assert.Empty(t, cfg.File)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t, "--width=640", "--height=480", "--tick=20ms", "--tps=120", "--hud", "--log-level=debug", "--title=Eyes")
	require.NoError(t, err)

	assert.Equal(t, core.Size{W: 640, H: 480}, cfg.Window)
	assert.Equal(t, 20*time.Millisecond, cfg.Tick)
	assert.Equal(t, 120, cfg.TPS)
	assert.True(t, cfg.HUD)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Eyes", cfg.Title)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracking.yaml")
	data := "window:\n  width: 800\nreference:\n  width: 2560\n  height: 1440\ntick: 5ms\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := load(t, "--config="+path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.W)
	assert.Equal(t, 500, cfg.Window.H)
	assert.Equal(t, core.Size{W: 2560, H: 1440}, cfg.Reference)
	assert.Equal(t, 5*time.Millisecond, cfg.Tick)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracking.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tps": 30, "window": {"width": 700, "height": 700}}`), 0644))

	t.Setenv("TRACKING_TPS", "45")
	t.Setenv("TRACKING_WINDOW_HEIGHT", "650")

	cfg, err := load(t, "--config="+path, "--tps=90")
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.TPS, "flag beats env and file")
	assert.Equal(t, 650, cfg.Window.H, "env beats file")
	assert.Equal(t, 700, cfg.Window.W, "file beats default")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(t, "--config=/nonexistent/tracking.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"--width=0"}},
		{"negative reference", []string{"--ref-height=-1"}},
		{"zero tick", []string{"--tick=0s"}},
		{"zero tps", []string{"--tps=0"}},
		{"bad level", []string{"--log-level=loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), err.Error())
		})
	}
}

func TestUseDisplay(t *testing.T) {
	cfg := NewConfig()
	cfg.UseDisplay(core.Size{W: 2560, H: 1440})
	assert.Equal(t, core.DefaultReference, cfg.Reference, "ignored unless requested")

	cfg.ReferenceFromDisplay = true
	cfg.UseDisplay(core.Size{})
	assert.Equal(t, core.DefaultReference, cfg.Reference, "invalid display ignored")

	cfg.UseDisplay(core.Size{W: 2560, H: 1440})
	assert.Equal(t, core.Size{W: 2560, H: 1440}, cfg.Reference)
}
