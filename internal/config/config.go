// Package config layers defaults, an optional config file, TRACKING_*
// environment variables and command-line flags into a Config.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core"
	"tracking/internal/logging"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TRACKING_WINDOW_WIDTH.
const EnvPrefix = "TRACKING"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the runtime parameters for the application.
type Config struct {
	Title  string
	Window core.Size

	// Reference is the resolution cursor offsets are normalized against.
	Reference core.Size
	// ReferenceFromDisplay replaces Reference with the monitor size at startup.
	ReferenceFromDisplay bool

	Tick     time.Duration
	TPS      int
	LogLevel string
	HUD      bool

	File string
}

// NewConfig returns a Config populated with the demo defaults.
func NewConfig() *Config {
	return &Config{
		Title:     "Tracking",
		Window:    core.DefaultWindow,
		Reference: core.DefaultReference,
		Tick:      core.DefaultTick,
		TPS:       60,
		LogLevel:  "info",
	}
}

// flag name -> viper key
var flagKeys = map[string]string{
	"title":       "window.title",
	"width":       "window.width",
	"height":      "window.height",
	"ref-width":   "reference.width",
	"ref-height":  "reference.height",
	"ref-display": "reference.display",
	"tick":        "tick",
	"tps":         "tps",
	"log-level":   "log.level",
	"hud":         "hud",
	"config":      "config",
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Window.W, "width", c.Window.W, "window width in pixels")
	fs.IntVar(&c.Window.H, "height", c.Window.H, "window height in pixels")
	fs.IntVar(&c.Reference.W, "ref-width", c.Reference.W, "reference display width used to normalize cursor offsets")
	fs.IntVar(&c.Reference.H, "ref-height", c.Reference.H, "reference display height used to normalize cursor offsets")
	fs.BoolVar(&c.ReferenceFromDisplay, "ref-display", c.ReferenceFromDisplay, "use the monitor resolution as the reference")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "period between cursor samples")
	fs.IntVar(&c.TPS, "tps", c.TPS, "engine updates per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the HUD at startup")
	fs.StringVar(&c.File, "config", c.File, "optional config file (json, yaml or toml)")
}

// Load resolves every value through v and validates the result. Flags that
// were set on fs win over environment variables, which win over the config
// file, which wins over the defaults held in c.
func (c *Config) Load(v *viper.Viper, fs *pflag.FlagSet) error {
	c.setDefaults(v)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c.Title = v.GetString("window.title")
	c.Window = core.Size{W: v.GetInt("window.width"), H: v.GetInt("window.height")}
	c.Reference = core.Size{W: v.GetInt("reference.width"), H: v.GetInt("reference.height")}
	c.ReferenceFromDisplay = v.GetBool("reference.display")
	c.Tick = v.GetDuration("tick")
	c.TPS = v.GetInt("tps")
	c.LogLevel = v.GetString("log.level")
	c.HUD = v.GetBool("hud")
	c.File = v.GetString("config")

	return c.Validate()
}

func (c *Config) setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", c.Title)
	v.SetDefault("window.width", c.Window.W)
	v.SetDefault("window.height", c.Window.H)
	v.SetDefault("reference.width", c.Reference.W)
	v.SetDefault("reference.height", c.Reference.H)
	v.SetDefault("reference.display", c.ReferenceFromDisplay)
	v.SetDefault("tick", c.Tick)
	v.SetDefault("tps", c.TPS)
	v.SetDefault("log.level", c.LogLevel)
	v.SetDefault("hud", c.HUD)
	v.SetDefault("config", c.File)
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if !c.Window.Valid() {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.W, c.Window.H)
	}
	if !c.Reference.Valid() {
		return fmt.Errorf("%w: reference size %dx%d", ErrInvalidConfig, c.Reference.W, c.Reference.H)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick %v", ErrInvalidConfig, c.Tick)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// UseDisplay replaces Reference with the given display size when
// ReferenceFromDisplay is set and the size is usable.
func (c *Config) UseDisplay(display core.Size) {
	if c.ReferenceFromDisplay && display.Valid() {
		c.Reference = display
	}
}
