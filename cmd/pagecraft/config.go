package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pthm/pagecraft/lib/bundle"
	"github.com/pthm/pagecraft/lib/generator"
	"gopkg.in/yaml.v3"
)

// envPrefix prefixes every environment override, e.g. PAGECRAFT_ADDR.
const envPrefix = "PAGECRAFT_"

// Config holds the server configuration.
type Config struct {
	Addr        string `yaml:"addr"`
	SigningKey  string `yaml:"signing_key"`
	LogLevel    string `yaml:"log_level"`
	Title       string `yaml:"title"`
	ArchiveName string `yaml:"archive_name"`
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:        ":8080",
		LogLevel:    "info",
		Title:       generator.DefaultTitle,
		ArchiveName: bundle.ArchiveName,
	}
}

// LoadConfig builds a config from defaults, the YAML file at path (skipped
// when path is empty) and then PAGECRAFT_* variables from lookup.
func LoadConfig(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if lookup != nil {
		cfg.applyEnv(lookup)
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	for key, dst := range c.fields() {
		if v, ok := lookup(envPrefix + strings.ToUpper(key)); ok {
			*dst = v
		}
	}
}

// fields maps each YAML key to its field.
func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"addr":         &c.Addr,
		"signing_key":  &c.SigningKey,
		"log_level":    &c.LogLevel,
		"title":        &c.Title,
		"archive_name": &c.ArchiveName,
	}
}

// bindFlags registers config overrides on fs and returns the function that
// applies them once fs is parsed. Only flags that were set are applied, so
// unset flags never mask the file or environment.
func bindFlags(fs *flag.FlagSet) func(*Config) {
	addr := fs.String("addr", "", "listen address")
	title := fs.String("title", "", "generated page title")
	level := fs.String("log-level", "", "log level (debug, info, warn, error)")
	archive := fs.String("archive-name", "", "download name of the exported site")

	return func(c *Config) {
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "addr":
				c.Addr = *addr
			case "title":
				c.Title = *title
			case "log-level":
				c.LogLevel = *level
			case "archive-name":
				c.ArchiveName = *archive
			}
		})
	}
}

// loadServeConfig parses serve flags and resolves the config with
// precedence defaults < file < environment < flags.
func loadServeConfig(args []string, lookup func(string) (string, bool)) (*Config, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	apply := bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(*configPath, lookup)
	if err != nil {
		return nil, err
	}
	apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.SigningKey != "" && len(c.SigningKey) < 16 {
		errs = append(errs, errors.New("signing_key must be at least 16 bytes"))
	}
	if c.ArchiveName == "" || strings.ContainsAny(c.ArchiveName, `/\`) || !strings.HasSuffix(c.ArchiveName, ".zip") {
		errs = append(errs, fmt.Errorf("archive_name %q must be a plain .zip file name", c.ArchiveName))
	}
	return errors.Join(errs...)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log_level %q must be debug, info, warn or error", s)
}

// newLogger returns a text logger at the configured level.
func (c *Config) newLogger(w io.Writer) *slog.Logger {
	lvl, _ := parseLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
