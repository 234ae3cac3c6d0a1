// Package config loads site configuration files.
//
// A file goes through four steps: environment (.env files and ${VAR}
// expansion), strict YAML decoding, normalization and validation. The result
// carries the normalization notes and the full validation report so callers
// can surface warnings even when the build succeeds.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/navbuilder/internal/site"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by Init when the target file exists and force is not set.
var ErrConfigExists = errors.New("configuration file already exists")

// DefaultEnvFiles are tried in order; the first one found is loaded.
var DefaultEnvFiles = []string{".env", ".env.local"}

// Loaded is a validated configuration plus the notes gathered while loading it.
type Loaded struct {
	Path          string
	Site          *site.SiteConfig
	Report        *site.Report
	Normalization *NormalizationResult
	EnvFile       string
}

// Loader reads configuration files.
type Loader struct {
	EnvFiles []string
}

// NewLoader returns a Loader using DefaultEnvFiles.
func NewLoader() *Loader {
	return &Loader{EnvFiles: DefaultEnvFiles}
}

// Load loads and validates a configuration file with the default loader.
func Load(path string) (*Loaded, error) {
	return NewLoader().Load(path)
}

// Load reads, decodes, normalizes and validates the file at path.
// Validation failures are returned as *site.ConfigError together with the partial
// Loaded value so the caller can print the full report.
func (l *Loader) Load(path string) (*Loaded, error) {
	envFile, _ := loadEnvFile(l.EnvFiles)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Decode(expandEnv(string(data)))
	if err != nil {
		return nil, err
	}

	norm, err := NormalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	built, report := site.NewBuilder(site.Static(cfg)).BuildReport()
	loaded := &Loaded{Path: path, Site: built, Report: report, Normalization: norm, EnvFile: envFile}
	if err := report.Err(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// Decode strictly decodes YAML into a SiteConfig without validating it.
func Decode(data string) (*site.SiteConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader([]byte(data)))
	dec.KnownFields(true)

	var cfg site.SiteConfig
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("configuration file is empty")
		}
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Init writes the built-in declaration as a starting configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	cfg, err := site.Build()
	if err != nil {
		return fmt.Errorf("built-in declaration is invalid: %w", err)
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal renders a configuration in the file format accepted by Load.
func Marshal(cfg *site.SiteConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}
