package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"vkenum-generator/internal/gen"
	"vkenum-generator/internal/naming"
	"vkenum-generator/internal/registry"
	"vkenum-generator/internal/resolve"
)

// ErrInvalid is wrapped by every configuration validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the generator configuration file.
type Config struct {
	// API selects the features, extensions and require blocks to keep.
	API                string   `yaml:"api"`
	TypePrefix         string   `yaml:"type_prefix"`
	FunctionPrefix     string   `yaml:"function_prefix"`
	VendorTags         []string `yaml:"vendor_tags"`
	StructTypeEnum     string   `yaml:"struct_type_enum"`
	BaseStruct         string   `yaml:"base_struct"`
	DiscriminantMember string   `yaml:"discriminant_member"`
	ObjectTypeEnum     string   `yaml:"object_type_enum"`
	// HeaderGuardPrefix is a pointer so an explicit "" can drop the prefix.
	HeaderGuardPrefix *string           `yaml:"header_guard_prefix"`
	Includes          []string          `yaml:"includes"`
	HeaderIncludes    []string          `yaml:"header_includes"`
	ExtraStructSizes  []StructSize      `yaml:"extra_struct_sizes"`
	NarrowingHelpers  []NarrowingHelper `yaml:"narrowing_helpers"`
	Outputs           Outputs           `yaml:"outputs"`
}

// StructSize is a struct size entry the registry does not describe.
type StructSize struct {
	Discriminant string `yaml:"discriminant"`
	Struct       string `yaml:"struct"`
}

// NarrowingHelper describes a flags narrowing function.
type NarrowingHelper struct {
	Function  string `yaml:"function"`
	Result    string `yaml:"result"`
	ParamType string `yaml:"param_type"`
	Param     string `yaml:"param"`
	MaskEnum  string `yaml:"mask_enum"`
}

// Outputs holds the artifact file names.
type Outputs struct {
	Source  string `yaml:"source"`
	Header  string `yaml:"header"`
	Defines string `yaml:"defines"`
}

// Default returns the stock Vulkan configuration.
func Default() *Config {
	merge := registry.DefaultMergeOptions()
	res := resolve.DefaultConfig()
	g := gen.DefaultGeneratorConfig()

	prefix := g.HeaderGuardPrefix

	cfg := &Config{
		API:                merge.API,
		TypePrefix:         g.TypePrefix,
		FunctionPrefix:     g.FunctionPrefix,
		VendorTags:         append([]string(nil), naming.DefaultVendorTags...),
		StructTypeEnum:     res.StructTypeEnum,
		BaseStruct:         g.BaseStruct,
		DiscriminantMember: merge.DiscriminantMember,
		ObjectTypeEnum:     res.ObjectTypeEnum,
		HeaderGuardPrefix:  &prefix,
		Includes:           append([]string(nil), g.Includes...),
		HeaderIncludes:     append([]string(nil), g.HeaderIncludes...),
		Outputs: Outputs{
			Source:  g.Outputs.Source,
			Header:  g.Outputs.Header,
			Defines: g.Outputs.Defines,
		},
	}

	for _, s := range g.ExtraStructSizes {
		cfg.ExtraStructSizes = append(cfg.ExtraStructSizes, StructSize(s))
	}

	for _, h := range g.NarrowingHelpers {
		cfg.NarrowingHelpers = append(cfg.NarrowingHelpers, NarrowingHelper(h))
	}

	return cfg
}

// Validate checks the fields that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error

	for i, s := range c.ExtraStructSizes {
		if s.Discriminant == "" || s.Struct == "" {
			errs = append(errs, fmt.Errorf("extra_struct_sizes[%d]: discriminant and struct are required", i))
		}
	}

	for i, h := range c.NarrowingHelpers {
		if h.Function == "" || h.Result == "" || h.ParamType == "" || h.Param == "" || h.MaskEnum == "" {
			errs = append(errs, fmt.Errorf("narrowing_helpers[%d]: function, result, param_type, param and mask_enum are required", i))
		}
	}

	names := map[string]string{}
	for _, out := range []struct{ key, name string }{
		{"source", c.Outputs.Source},
		{"header", c.Outputs.Header},
		{"defines", c.Outputs.Defines},
	} {
		if prev, ok := names[out.name]; ok {
			errs = append(errs, fmt.Errorf("outputs.%s: %q is already used by outputs.%s", out.key, out.name, prev))
		}

		names[out.name] = out.key
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// MergeOptions returns the registry merge options.
func (c *Config) MergeOptions() registry.MergeOptions {
	return registry.MergeOptions{
		API:                c.API,
		DiscriminantMember: c.DiscriminantMember,
	}
}

// ResolveConfig returns the resolution configuration.
func (c *Config) ResolveConfig(logger hclog.Logger) resolve.Config {
	return resolve.Config{
		VendorTags:     c.VendorTags,
		StructTypeEnum: c.StructTypeEnum,
		ObjectTypeEnum: c.ObjectTypeEnum,
		Logger:         logger,
	}
}

// GeneratorConfig returns the artifact generation configuration.
func (c *Config) GeneratorConfig(logger hclog.Logger) gen.GeneratorConfig {
	g := gen.GeneratorConfig{
		TypePrefix:         c.TypePrefix,
		FunctionPrefix:     c.FunctionPrefix,
		StructTypeEnum:     c.StructTypeEnum,
		BaseStruct:         c.BaseStruct,
		DiscriminantMember: c.DiscriminantMember,
		Includes:           c.Includes,
		HeaderIncludes:     c.HeaderIncludes,
		Outputs: gen.Outputs{
			Source:  c.Outputs.Source,
			Header:  c.Outputs.Header,
			Defines: c.Outputs.Defines,
		},
		Logger: logger,
	}

	if c.HeaderGuardPrefix != nil {
		g.HeaderGuardPrefix = *c.HeaderGuardPrefix
	}

	for _, s := range c.ExtraStructSizes {
		g.ExtraStructSizes = append(g.ExtraStructSizes, gen.StructSize(s))
	}

	for _, h := range c.NarrowingHelpers {
		g.NarrowingHelpers = append(g.NarrowingHelpers, gen.NarrowingHelper(h))
	}

	return g
}
