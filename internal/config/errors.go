package config

import "errors"

var (
	// ErrUnsupportedFormat is returned when a configuration file extension is not .json, .yml or .yaml.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	// ErrMissingConfiguration is returned when a required setting is absent from every source.
	ErrMissingConfiguration = errors.New("missing configuration")
	// ErrTypeMismatch is returned by Set when an intermediate path segment holds a non-mapping value.
	ErrTypeMismatch = errors.New("path segment is not a mapping")
	// ErrNotMapping is returned when a configuration document's root is not a mapping.
	ErrNotMapping = errors.New("config document is not a mapping")
	// ErrExtraData is returned when a config file holds more than one JSON value or YAML document.
	ErrExtraData = errors.New("extra data after config document")
	// ErrUnsupportedValue is returned when a parsed document contains a node with no Value representation.
	ErrUnsupportedValue = errors.New("unsupported config value type")
)
