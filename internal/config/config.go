package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// DefaultEnvPrefix selects which environment variables are treated as configuration.
const DefaultEnvPrefix = "ML_"

// Config is a layered configuration store built from an optional file and the environment.
// Precedence: Environment variables > Config file.
type Config struct {
	values    Map
	envPrefix string
	environ   func() []string
	logger    *zap.Logger
}

// Option configures the behaviour of New.
type Option func(*Config)

// WithEnvPrefix overrides the prefix used by the construct-time environment merge.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithEnviron overrides the environment snapshot source, primarily for tests.
func WithEnviron(environ func() []string) Option {
	return func(c *Config) {
		c.environ = environ
	}
}

// WithLogger attaches a logger for load diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// New builds a Config. When path is non-empty its document is loaded first;
// matching environment variables are always merged on top.
func New(path string, opts ...Option) (*Config, error) {
	c := &Config{
		values:    Map{},
		envPrefix: DefaultEnvPrefix,
		environ:   os.Environ,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}

	c.MergeFromEnvironment(c.envPrefix)

	return c, nil
}

// LoadFile merges the top-level keys of a JSON or YAML document into the store.
// The format is chosen by extension before the file is opened.
func (c *Config) LoadFile(path string) error {
	doc, err := loadFromFile(path)
	if err != nil {
		return err
	}

	for key, value := range doc {
		c.values[key] = value
	}
	c.logger.Debug("config file loaded",
		zap.String("path", path),
		zap.Int("keys", len(doc)),
	)
	return nil
}

// MergeFromEnvironment stores every variable starting with prefix as a flat,
// lower-cased top-level string key, overwriting existing keys.
// ML_DATABASE_URL becomes "database_url".
func (c *Config) MergeFromEnvironment(prefix string) {
	applied := 0
	for _, entry := range c.environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		c.values[strings.ToLower(name[len(prefix):])] = String(value)
		applied++
	}
	c.logger.Debug("environment overrides applied",
		zap.String("prefix", prefix),
		zap.Int("keys", applied),
	)
}

// Lookup resolves a dotted key, descending only through Maps.
func (c *Config) Lookup(key string) (Value, bool) {
	var current Value = c.values
	for _, segment := range SplitPath(key) {
		level, ok := current.(Map)
		if !ok {
			return nil, false
		}
		next, ok := level[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Get returns the value at a dotted key, or def if any segment is missing.
// A nil def is the absence sentinel.
func (c *Config) Get(key string, def Value) Value {
	if value, ok := c.Lookup(key); ok {
		return value
	}
	return def
}

// GetString returns the scalar at key rendered as text. Missing keys, nulls,
// empty strings and non-scalar values yield def.
func (c *Config) GetString(key, def string) string {
	value, ok := c.Lookup(key)
	if !ok {
		return def
	}
	text, ok := Text(value)
	if !ok || text == "" {
		return def
	}
	return text
}

// Set assigns value at a dotted key, creating intermediate Maps as needed.
// It fails with ErrTypeMismatch, leaving the store untouched, when an
// intermediate segment already holds a non-Map value.
func (c *Config) Set(key string, value Value) error {
	segments := SplitPath(key)
	parents := segments[:len(segments)-1]

	// Validate the whole path before creating anything.
	level := c.values
	for i, segment := range parents {
		next, ok := level[segment]
		if !ok {
			break
		}
		nested, ok := next.(Map)
		if !ok {
			return fmt.Errorf("%w: %q", ErrTypeMismatch, strings.Join(segments[:i+1], pathSeparator))
		}
		level = nested
	}

	level = c.values
	for _, segment := range parents {
		nested, ok := level[segment].(Map)
		if !ok || nested == nil {
			nested = Map{}
			level[segment] = nested
		}
		level = nested
	}
	level[segments[len(segments)-1]] = value
	return nil
}

// ToDict returns a shallow copy of the top level. Nested Maps are shared with
// the live store, so mutating them affects the Config.
func (c *Config) ToDict() Map {
	return c.values.Clone()
}
