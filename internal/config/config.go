package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidWindow   = errors.New("window width and height must be positive")
	ErrInvalidKeyState = errors.New("key state must be 0 or 1")
)

// Config drives the zsharp command: where the builtin declarations live
// and the defaults handed to the graphics and input collaborators.
type Config struct {
	Builtins string         `yaml:"builtins"`
	Debug    bool           `yaml:"debug"`
	Prompt   string         `yaml:"prompt"`
	Window   Window         `yaml:"window"`
	Keys     map[string]int `yaml:"keys"`
}

// Window holds the arguments of the console's :init command.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func Default() Config {
	return Config{
		Prompt: "> ",
		Window: Window{Title: "ZSharp", Width: 800, Height: 600},
		Keys:   map[string]int{},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML over the defaults. Unknown fields are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return ErrInvalidWindow
	}
	for name, state := range c.Keys {
		if state != 0 && state != 1 {
			return fmt.Errorf("%w: %s=%d", ErrInvalidKeyState, name, state)
		}
	}
	return nil
}

// Encode writes the config as YAML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: encoder close: %w", err)
	}
	return buf.Bytes(), nil
}
