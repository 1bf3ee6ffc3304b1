package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/tidwall/jsonc"
)

// Config represents the trisieve configuration.
type Config struct {
	Target        uint64 `json:"target"`
	Format        string `json:"format"`
	Verbose       bool   `json:"verbose"`
	MaxSieveLimit uint64 `json:"maxSieveLimit"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Target:        500,
		Format:        "text",
		MaxSieveLimit: 1 << 28,
	}
}

// ConfigDir returns the platform-appropriate config directory for trisieve.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trisieve"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "trisieve"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "trisieve"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "trisieve"), nil
	default:
		return filepath.Join(home, ".config", "trisieve"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// FileError reports a config file that exists but could not be read or
// parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// fileConfig mirrors Config with pointer fields, so a key set to 0 or false
// in the file is distinguishable from a missing key.
type fileConfig struct {
	Target        *uint64 `json:"target"`
	Format        *string `json:"format"`
	Verbose       *bool   `json:"verbose"`
	MaxSieveLimit *uint64 `json:"maxSieveLimit"`
}

// Parse decodes a config file body on top of the defaults. Line and block
// comments and trailing commas are accepted.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
		return Config{}, fmt.Errorf("parsing: %w", err)
	}
	cfg := Default()
	mergeFile(&cfg, fc)
	return cfg, nil
}

// LoadFile loads config from the config file merged over the defaults.
// A missing file yields Default() and a nil error; any other failure is a
// *FileError.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, &FileError{Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, &FileError{Path: path, Err: err}
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(dst *Config, src fileConfig) {
	if src.Target != nil {
		dst.Target = *src.Target
	}
	if src.Format != nil && *src.Format != "" {
		dst.Format = *src.Format
	}
	if src.Verbose != nil {
		dst.Verbose = *src.Verbose
	}
	if src.MaxSieveLimit != nil {
		dst.MaxSieveLimit = *src.MaxSieveLimit
	}
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("TRISIEVE_TARGET"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TRISIEVE_TARGET must be a non-negative integer: %w", err)
		}
		cfg.Target = n
	}
	if v := os.Getenv("TRISIEVE_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("TRISIEVE_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TRISIEVE_VERBOSE must be a boolean: %w", err)
		}
		cfg.Verbose = b
	}
	if v := os.Getenv("TRISIEVE_MAX_SIEVE_LIMIT"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TRISIEVE_MAX_SIEVE_LIMIT must be a non-negative integer: %w", err)
		}
		cfg.MaxSieveLimit = n
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "target":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("target must be a non-negative integer: %w", err)
		}
		cfg.Target = n
	case "format":
		cfg.Format = value
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be a boolean: %w", err)
		}
		cfg.Verbose = b
	case "maxSieveLimit":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("maxSieveLimit must be a non-negative integer: %w", err)
		}
		cfg.MaxSieveLimit = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
