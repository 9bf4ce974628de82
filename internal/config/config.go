package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/koki-develop/asciify/internal/ascii"
	"github.com/koki-develop/asciify/internal/resize"
	i2a "github.com/qeesung/image2ascii/ascii"
	"gopkg.in/yaml.v3"
)

// EnvPath overrides the default config file location.
const EnvPath = "ASCIIFY_CONFIG"

// LiteralPrefix marks a charset as a literal ramp even when it matches a
// preset name.
const LiteralPrefix = "literal:"

// Built-in charset presets. Index 0 is used for the darkest pixels, so the
// dense-first ramps suit light backgrounds and image2ascii suits dark ones.
var builtinPresets = map[string]string{
	"standard":    ascii.DefaultCharset,
	"detailed":    "$@B%8&WM#*oahkbdpqwmZ0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ",
	"simple":      "#+-. ",
	"blocks":      "█▓▒░ ",
	"binary":      "# ",
	"image2ascii": string(i2a.DefaultOptions.Pixels),
}

type Config struct {
	Width   int
	Charset string
	Invert  bool
	Aspect  float64
	Filter  string
	Presets map[string]string
}

// file is the on-disk shape; pointers tell absent keys from zero values.
type file struct {
	Width   *int              `yaml:"width"`
	Charset *string           `yaml:"charset"`
	Invert  *bool             `yaml:"invert"`
	Aspect  *float64          `yaml:"aspect"`
	Filter  *string           `yaml:"filter"`
	Presets map[string]string `yaml:"presets"`
}

func Default() *Config {
	presets := make(map[string]string, len(builtinPresets))
	for name, ramp := range builtinPresets {
		presets[name] = ramp
	}
	return &Config{
		Width:   ascii.DefaultMaxWidth,
		Charset: "standard",
		Aspect:  ascii.DefaultAspectCorrection,
		Filter:  resize.Bilinear.String(),
		Presets: presets,
	}
}

// Path returns the config file location: $ASCIIFY_CONFIG if set, otherwise
// asciify/config.yaml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "asciify", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults. With an empty
// path the default location is used and a missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Charset != nil {
		cfg.Charset = *f.Charset
	}
	if f.Invert != nil {
		cfg.Invert = *f.Invert
	}
	if f.Aspect != nil {
		cfg.Aspect = *f.Aspect
	}
	if f.Filter != nil {
		cfg.Filter = *f.Filter
	}
	for name, ramp := range f.Presets {
		if ramp == "" {
			return nil, fmt.Errorf("preset %q: %w", name, ascii.ErrEmptyCharset)
		}
		cfg.Presets[name] = ramp
	}
	return cfg, nil
}

// ResolveCharset maps a preset name to its ramp. Anything else is used as a
// literal ramp, as is whatever follows LiteralPrefix.
func (c *Config) ResolveCharset(s string) string {
	if lit, ok := strings.CutPrefix(s, LiteralPrefix); ok {
		return lit
	}
	if ramp, ok := c.Presets[s]; ok {
		return ramp
	}
	return s
}

func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) Params() (ascii.Params, error) {
	f, err := resize.ParseFilter(c.Filter)
	if err != nil {
		return ascii.Params{}, &ascii.InvalidParameterError{Name: "filter", Err: err}
	}
	return ascii.Params{
		MaxWidth:         c.Width,
		Charset:          c.ResolveCharset(c.Charset),
		Invert:           c.Invert,
		AspectCorrection: c.Aspect,
		Filter:           f,
	}, nil
}
