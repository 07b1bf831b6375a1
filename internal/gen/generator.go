package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"vkenum-generator/internal/diagnostic"
	"vkenum-generator/internal/resolve"
)

// Outputs holds the artifact file names.
type Outputs struct {
	Source  string
	Header  string
	Defines string
}

// StructSize is a struct size entry that is not described by the registry,
// such as the loader create-info structs.
type StructSize struct {
	Discriminant string
	Struct       string
}

// NarrowingHelper describes an inline function projecting a wide flags value
// onto the bits representable in a legacy narrower flags type.
type NarrowingHelper struct {
	Function  string
	Result    string
	ParamType string
	Param     string
	// MaskEnum is the bitmask enumeration whose all-bits mask is applied.
	MaskEnum string
}

// GeneratorConfig holds configuration for artifact generation.
type GeneratorConfig struct {
	// TypePrefix is stripped from enumeration names to build function names.
	TypePrefix string
	// FunctionPrefix is prepended to every generated function name.
	FunctionPrefix string
	// HeaderGuardPrefix prefixes the include guards of both headers.
	HeaderGuardPrefix string
	// StructTypeEnum names the enumeration of struct discriminants.
	StructTypeEnum string
	// BaseStruct is the struct type the size lookup takes a pointer to.
	BaseStruct string
	// DiscriminantMember is the type-tag member read by the size lookup.
	DiscriminantMember string
	// Includes are emitted verbatim after #include in the source file.
	Includes []string
	// HeaderIncludes are emitted verbatim after #include in both headers.
	HeaderIncludes   []string
	ExtraStructSizes []StructSize
	NarrowingHelpers []NarrowingHelper
	Outputs          Outputs
	// Logger receives generation warnings. Nil disables logging.
	Logger hclog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		TypePrefix:         "Vk",
		FunctionPrefix:     "vk_",
		HeaderGuardPrefix:  "MESA",
		StructTypeEnum:     "VkStructureType",
		BaseStruct:         "VkBaseInStructure",
		DiscriminantMember: "sType",
		Includes: []string{
			"<string.h>",
			"<vulkan/vulkan.h>",
			"<vulkan/vk_android_native_buffer.h>",
			"<vulkan/vk_layer.h>",
			`"util/macros.h"`,
		},
		HeaderIncludes: []string{
			"<vulkan/vulkan.h>",
			"<vulkan/vk_android_native_buffer.h>",
		},
		ExtraStructSizes: []StructSize{
			{Discriminant: "VK_STRUCTURE_TYPE_LOADER_INSTANCE_CREATE_INFO", Struct: "VkLayerInstanceCreateInfo"},
			{Discriminant: "VK_STRUCTURE_TYPE_LOADER_DEVICE_CREATE_INFO", Struct: "VkLayerDeviceCreateInfo"},
		},
		NarrowingHelpers: []NarrowingHelper{
			{
				Function:  "vk_format_features2_to_features",
				Result:    "VkFormatFeatureFlags",
				ParamType: "VkFormatFeatureFlags2",
				Param:     "features2",
				MaskEnum:  "VkFormatFeatureFlagBits",
			},
		},
		Outputs: Outputs{
			Source:  "vk_enum_to_str.c",
			Header:  "vk_enum_to_str.h",
			Defines: "vk_enum_defines.h",
		},
	}
}

// Generator renders artifacts from a resolved Context.
type Generator struct {
	config GeneratorConfig
	log    hclog.Logger
	// diags collects the non-fatal findings of the last Generate call.
	diags diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	log := config.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Generator{
		config: config,
		log:    log.Named("gen"),
	}
}

// GeneratedFile represents a generated artifact.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "vk_enum_to_str.c").
	Filename string
	// Content is the rendered file content.
	Content []byte
}

// Diagnostics returns the non-fatal findings of the last Generate call.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diags
}

// Generate renders the source, header and defines artifacts, in that order.
// Template data is built sequentially; the templates are then executed
// concurrently over the read-only data.
func (g *Generator) Generate(ctx *resolve.Context) ([]GeneratedFile, error) {
	g.diags = diagnostic.Diagnostics{}

	data, err := g.buildTemplateData(ctx)
	if err != nil {
		return nil, err
	}

	jobs := []struct {
		filename string
		tmpl     *template.Template
	}{
		{g.config.Outputs.Source, sourceTemplate},
		{g.config.Outputs.Header, headerTemplate},
		{g.config.Outputs.Defines, definesTemplate},
	}

	files := make([]GeneratedFile, len(jobs))

	var eg errgroup.Group

	for i, job := range jobs {
		eg.Go(func() error {
			var buf bytes.Buffer
			if err := job.tmpl.Execute(&buf, data); err != nil {
				return fmt.Errorf("executing template for %s: %w", job.filename, err)
			}

			files[i] = GeneratedFile{Filename: job.filename, Content: buf.Bytes()}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, f := range files {
		g.log.Debug("rendered artifact", "file", f.Filename, "bytes", len(f.Content))
	}

	return files, nil
}
