package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/mlconfig/internal/config"
)

const (
	// FormatYAML renders output as YAML.
	FormatYAML = "yaml"
	// FormatJSON renders output as indented JSON.
	FormatJSON = "json"
)

var (
	// ErrKeyNotFound is returned by Get when the key is absent and no default was supplied.
	ErrKeyNotFound = errors.New("config key not found")
	// ErrUnknownFormat is returned by Dump for output formats other than yaml and json.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Options selects the sources of the default Config instance.
type Options struct {
	ConfigFile string
	EnvPrefix  string
}

// LoadConfig builds the process-wide Config at the entry point.
func LoadConfig(opts Options, logger *zap.Logger) (*config.Config, error) {
	cfgOpts := []config.Option{config.WithLogger(logger)}
	if opts.EnvPrefix != "" {
		cfgOpts = append(cfgOpts, config.WithEnvPrefix(opts.EnvPrefix))
	}

	cfg, err := config.New(opts.ConfigFile, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// App encapsulates the configuration, logger and output stream used by the commands.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

// New constructs an App from explicitly injected dependencies.
func New(cfg *config.Config, logger *zap.Logger, out io.Writer) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		out:    out,
	}
}

// Get prints the value at a dotted key. Scalars print as plain text, nested
// values as YAML. When the key is absent def is printed instead; an empty def
// yields ErrKeyNotFound.
func (a *App) Get(key, def string) error {
	value, ok := a.cfg.Lookup(key)
	if !ok {
		if def == "" {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		a.logger.Debug("key not found, using default", zap.String("key", key))
		value = config.String(def)
	}

	if text, ok := config.Text(value); ok {
		_, err := fmt.Fprintln(a.out, text)
		return err
	}
	return a.encode(FormatYAML, config.Native(value))
}

// Dump prints the whole store in the requested format.
func (a *App) Dump(format string) error {
	return a.encode(format, config.Native(a.cfg.ToDict()))
}

// Paths prints the derived database URL, data directory and output directory.
func (a *App) Paths() error {
	url, err := config.DatabaseURL(a.cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "database_url: %s\ndata_dir: %s\noutput_dir: %s\n",
		url, config.DataDir(a.cfg), config.OutputDir(a.cfg))
	return err
}

func (a *App) encode(format string, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
