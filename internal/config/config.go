// Package config loads anchormark settings from a config file, ANCHORMARK_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/anchormark"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Each is also the long flag name and, upper-cased with
// dashes turned into underscores, the suffix of its environment variable.
const (
	KeyAnchorSize  = "anchor-size"
	KeyHandleSize  = "handle-size"
	KeyStrokeWidth = "stroke-width"
	KeyColor       = "color"
	KeyOutput      = "output"
	KeyFormats     = "formats"
	KeyMargin      = "margin"
	KeyScale       = "scale"
	KeyLimit       = "limit"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "ANCHORMARK"

// FileName is the base name of the config file, without extension.
const FileName = ".anchormark"

// Config holds the resolved settings. Sizes stay as text so they go
// through the same lenient parsing as interactive input.
type Config struct {
	AnchorSize  string   `mapstructure:"anchor-size"`
	HandleSize  string   `mapstructure:"handle-size"`
	StrokeWidth string   `mapstructure:"stroke-width"`
	Color       string   `mapstructure:"color"`
	Output      string   `mapstructure:"output"`
	Formats     []string `mapstructure:"formats"`
	Margin      float64  `mapstructure:"margin"`
	Scale       float64  `mapstructure:"scale"`
	Limit       int      `mapstructure:"limit"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		AnchorSize:  "5",
		HandleSize:  "5",
		StrokeWidth: "0.5",
		Color:       anchormark.AnnotationColor.Hex(),
		Output:      "annotated",
		Formats:     []string{"png"},
		Margin:      10,
		Scale:       1,
		Limit:       0,
	}
}

// New returns a viper instance with defaults, config search paths and
// environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyAnchorSize, d.AnchorSize)
	v.SetDefault(KeyHandleSize, d.HandleSize)
	v.SetDefault(KeyStrokeWidth, d.StrokeWidth)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyFormats, d.Formats)
	v.SetDefault(KeyMargin, d.Margin)
	v.SetDefault(KeyScale, d.Scale)
	v.SetDefault(KeyLimit, d.Limit)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "anchormark"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// AddFlags registers one flag per setting on fs and binds it to v.
func AddFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	d := Defaults()
	fs.String(KeyAnchorSize, d.AnchorSize, "anchor marker size in points")
	fs.String(KeyHandleSize, d.HandleSize, "handle dot size in points")
	fs.String(KeyStrokeWidth, d.StrokeWidth, "stroke width of markers and handle lines")
	fs.String(KeyColor, d.Color, "annotation color, as a name or #rrggbb")
	fs.StringP(KeyOutput, "o", d.Output, "output path without extension")
	fs.StringSliceP(KeyFormats, "f", d.Formats, "output formats (see the backends command)")
	fs.Float64(KeyMargin, d.Margin, "margin around the drawing, in output units")
	fs.Float64(KeyScale, d.Scale, "output units per document point")
	fs.Int(KeyLimit, d.Limit, "maximum number of drawing commands, 0 for no limit")

	for _, key := range []string{
		KeyAnchorSize, KeyHandleSize, KeyStrokeWidth, KeyColor,
		KeyOutput, KeyFormats, KeyMargin, KeyScale, KeyLimit,
	} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("config: bind %s: %w", key, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and resolves all settings. When file
// is empty the search paths from New are used and a missing file is not an
// error. It reports which file was read, or "" if none.
func Load(v *viper.Viper, file string) (Config, string, error) {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, "", fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, "", err
	}
	return c, v.ConfigFileUsed(), nil
}

// Validate checks the settings that have no lenient fallback.
func (c Config) Validate() error {
	if _, err := anchormark.ParseColor(c.Color); err != nil {
		return fmt.Errorf("config: %s: %w", KeyColor, err)
	}
	if c.Output == "" {
		return fmt.Errorf("config: %s must not be empty", KeyOutput)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("config: %s must name at least one format", KeyFormats)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: %s must be positive, got %g", KeyScale, c.Scale)
	}
	if c.Margin < 0 {
		return fmt.Errorf("config: %s must not be negative, got %g", KeyMargin, c.Margin)
	}
	if c.Limit < 0 {
		return fmt.Errorf("config: %s must not be negative, got %d", KeyLimit, c.Limit)
	}
	return nil
}

// DrawParams parses the size settings. Unusable values fall back to the
// defaults.
func (c Config) DrawParams() anchormark.DrawParams {
	return anchormark.ParseDrawParams(c.AnchorSize, c.HandleSize, c.StrokeWidth)
}

// AnnotationColor parses the color setting.
func (c Config) AnnotationColor() (anchormark.Color, error) {
	return anchormark.ParseColor(c.Color)
}
