package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for omitted fields.
func applyDefaults(c *Config) {
	def := Default()

	setString(&c.API, def.API)
	setString(&c.TypePrefix, def.TypePrefix)
	setString(&c.FunctionPrefix, def.FunctionPrefix)
	setString(&c.StructTypeEnum, def.StructTypeEnum)
	setString(&c.BaseStruct, def.BaseStruct)
	setString(&c.DiscriminantMember, def.DiscriminantMember)
	setString(&c.ObjectTypeEnum, def.ObjectTypeEnum)
	setString(&c.Outputs.Source, def.Outputs.Source)
	setString(&c.Outputs.Header, def.Outputs.Header)
	setString(&c.Outputs.Defines, def.Outputs.Defines)

	if c.HeaderGuardPrefix == nil {
		c.HeaderGuardPrefix = def.HeaderGuardPrefix
	}

	// A nil slice was omitted; an explicit empty list is kept.
	if c.VendorTags == nil {
		c.VendorTags = def.VendorTags
	}

	if c.Includes == nil {
		c.Includes = def.Includes
	}

	if c.HeaderIncludes == nil {
		c.HeaderIncludes = def.HeaderIncludes
	}

	if c.ExtraStructSizes == nil {
		c.ExtraStructSizes = def.ExtraStructSizes
	}

	if c.NarrowingHelpers == nil {
		c.NarrowingHelpers = def.NarrowingHelpers
	}
}

func setString(field *string, def string) {
	if *field == "" {
		*field = def
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
