package config

import (
	"fmt"

	"github.com/kbukum/httpcore/header"
	"github.com/kbukum/httpcore/logger"
	"github.com/kbukum/httpcore/uri"
	"github.com/kbukum/httpcore/validation"
)

// Config is the root httpcore configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Limits  Limits        `yaml:"limits" mapstructure:"limits"`
}

// Limits bounds the size of parsed protocol values.
type Limits struct {
	// HeaderMapMaxSize is the most values a header map accepts.
	HeaderMapMaxSize int `yaml:"header_map_max_size" mapstructure:"header_map_max_size" validate:"min=1,max=32768"`
	// URIMaxLength is the longest URI accepted, in bytes.
	URIMaxLength int `yaml:"uri_max_length" mapstructure:"uri_max_length" validate:"min=1,max=65534"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Limits.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ApplyDefaults fills unset limits with the package maximums.
func (l *Limits) ApplyDefaults() {
	if l.HeaderMapMaxSize == 0 {
		l.HeaderMapMaxSize = header.MaxSize
	}
	if l.URIMaxLength == 0 {
		l.URIMaxLength = uri.MaxLen
	}
}

// NewHeaderMap creates a header map bounded by HeaderMapMaxSize.
func (l Limits) NewHeaderMap() *header.Map {
	return header.NewMapWithLimit(l.HeaderMapMaxSize)
}

// ParseURI parses s, rejecting input longer than URIMaxLength.
func (l Limits) ParseURI(s string) (uri.URI, error) {
	return uri.ParseWithLimit(s, l.URIMaxLength)
}
