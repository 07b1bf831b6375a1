package gen

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"vkenum-generator/internal/diagnostic"
	"vkenum-generator/internal/naming"
	"vkenum-generator/internal/resolve"
)

const (
	narrowBitWidth = 32
	includeGuardH  = "_H"
)

// templateData holds everything the three artifact templates render. It is
// shared read-only by the concurrent template executions.
type templateData struct {
	Includes       []string
	HeaderIncludes []string
	Header         string
	HeaderGuard    string
	DefinesGuard   string

	Enums      []enumFunc
	StructSize structSizeFunc
	Objects    objectNameFunc

	Extensions []extensionNumber
	AllBits    []define
	Redefines  []redefineBlock
	Narrowing  []narrowingFunc
}

// switchCase is one "case Label: return Result" arm.
type switchCase struct {
	Label  string
	Result string
}

// enumFunc is the string conversion function of one plain enumeration.
type enumFunc struct {
	Name        string
	Function    string
	Guard       string
	MaxEnumName string
	Cases       []switchCase
}

// structSizeCase is the group of discriminants that map to one struct.
type structSizeCase struct {
	Struct string
	Guard  string
	Labels []string
}

type structSizeFunc struct {
	Function   string
	BaseStruct string
	Member     string
	Cases      []structSizeCase
}

type objectNameFunc struct {
	Function string
	Enum     string
	Cases    []switchCase
}

type extensionNumber struct {
	Name   string
	Number int64
}

type define struct {
	Name  string
	Value string
	Guard string
}

// redefineBlock re-emits the constants of a 64-bit bitmask as wide literals.
type redefineBlock struct {
	Enum      string
	Guard     string
	Constants []define
}

type narrowingFunc struct {
	NarrowingHelper

	Mask  string
	Guard string
}

// buildTemplateData constructs the template data from a resolved context.
func (g *Generator) buildTemplateData(ctx *resolve.Context) (*templateData, error) {
	data := &templateData{
		Includes:       g.config.Includes,
		HeaderIncludes: g.config.HeaderIncludes,
		Header:         g.config.Outputs.Header,
		HeaderGuard:    g.includeGuard(g.config.Outputs.Header),
		DefinesGuard:   g.includeGuard(g.config.Outputs.Defines),
	}

	for _, e := range ctx.Enums.Sorted() {
		data.Enums = append(data.Enums, g.enumFunc(e))
	}

	structSize, err := g.structSizeFunc(ctx)
	if err != nil {
		return nil, err
	}

	data.StructSize = structSize
	data.Objects = g.objectNameFunc(ctx)

	for _, ext := range ctx.Extensions.Sorted() {
		data.Extensions = append(data.Extensions, extensionNumber{Name: ext.Name, Number: ext.Number})
	}

	for _, e := range ctx.Bitmasks.Sorted() {
		if e.BitWidth <= narrowBitWidth {
			data.AllBits = append(data.AllBits, define{
				Name:  naming.AllBitsName(e.Name),
				Value: fmt.Sprintf("0x%xu", e.AllBits()),
				Guard: e.Guard,
			})

			continue
		}

		block := redefineBlock{Enum: e.Name, Guard: e.Guard}
		for _, c := range e.Constants() {
			block.Constants = append(block.Constants, define{
				Name:  c.Name,
				Value: fmt.Sprintf("0x%xULL", uint64(c.Value)),
			})
		}

		data.Redefines = append(data.Redefines, block)
	}

	data.Narrowing = g.narrowingFuncs(ctx)

	return data, nil
}

func (g *Generator) enumFunc(e *resolve.Enum) enumFunc {
	fn := enumFunc{
		Name:        e.Name,
		Function:    g.config.FunctionPrefix + naming.TrimTypePrefix(e.Name, g.config.TypePrefix) + "_to_str",
		Guard:       e.Guard,
		MaxEnumName: e.MaxEnumName,
	}

	// Values is already deduplicated by numeric value.
	for _, v := range e.Values() {
		fn.Cases = append(fn.Cases, switchCase{
			Label:  strconv.FormatInt(v.Value, 10),
			Result: v.Name,
		})
	}

	return fn
}

// structSizeFunc builds the size lookup. Configured extra entries must name a
// declared discriminant that no registry struct already maps.
func (g *Generator) structSizeFunc(ctx *resolve.Context) (structSizeFunc, error) {
	fn := structSizeFunc{
		Function:   g.config.FunctionPrefix + g.snakeName(g.config.StructTypeEnum) + "_size",
		BaseStruct: g.config.BaseStruct,
		Member:     g.config.DiscriminantMember,
	}

	for _, s := range ctx.Structs.Sorted() {
		c := structSizeCase{Struct: s.Name, Guard: s.Guard()}

		for _, d := range s.Discriminants {
			c.Labels = append(c.Labels, d.Name)
		}

		fn.Cases = append(fn.Cases, c)
	}

	stypes := ctx.Enums.Get(g.config.StructTypeEnum)

	for _, extra := range g.config.ExtraStructSizes {
		var (
			v  int64
			ok bool
		)

		if stypes != nil {
			v, ok = stypes.Value(extra.Discriminant)
		}

		if !ok {
			return structSizeFunc{}, fmt.Errorf("%w: extra size entry %s for %s is not a %s value",
				resolve.ErrInconsistent, extra.Discriminant, extra.Struct, g.config.StructTypeEnum)
		}

		if owner, owned := ctx.Structs.Owner(v); owned {
			return structSizeFunc{}, fmt.Errorf("%w: extra size entry %s duplicates the case of %s",
				resolve.ErrInconsistent, extra.Discriminant, owner)
		}

		fn.Cases = append(fn.Cases, structSizeCase{
			Struct: extra.Struct,
			Labels: []string{extra.Discriminant},
		})
	}

	return fn, nil
}

func (g *Generator) objectNameFunc(ctx *resolve.Context) objectNameFunc {
	enum := ctx.ObjectTypes.Enum

	fn := objectNameFunc{
		Function: g.config.FunctionPrefix + naming.TrimTypePrefix(enum, g.config.TypePrefix) + "_to_ObjectName",
		Enum:     enum,
	}

	for _, ot := range ctx.ObjectTypes.Entries() {
		fn.Cases = append(fn.Cases, switchCase{
			Label:  strconv.FormatInt(ot.Value, 10),
			Result: ot.Name,
		})
	}

	return fn
}

// narrowingFuncs keeps the helpers whose mask enumeration has a 32-bit
// all-bits define. Others are skipped with a warning.
func (g *Generator) narrowingFuncs(ctx *resolve.Context) []narrowingFunc {
	var out []narrowingFunc

	for _, h := range g.config.NarrowingHelpers {
		mask := ctx.Bitmasks.Get(h.MaskEnum)
		if mask == nil || mask.BitWidth > narrowBitWidth {
			g.log.Warn("skipping narrowing helper, mask enumeration unavailable",
				"function", h.Function, "enum", h.MaskEnum)
			g.diags.AddWarning(diagnostic.CodeSkippedNarrowing,
				fmt.Sprintf("no 32-bit bitmask %s to derive the mask from", h.MaskEnum), h.Function, h.MaskEnum)

			continue
		}

		out = append(out, narrowingFunc{
			NarrowingHelper: h,
			Mask:            naming.AllBitsName(h.MaskEnum),
			Guard:           mask.Guard,
		})
	}

	return out
}

// snakeName turns "VkStructureType" into "structure_type".
func (g *Generator) snakeName(name string) string {
	return strings.ToLower(naming.ShoutCase(naming.TrimTypePrefix(name, g.config.TypePrefix)))
}

// includeGuard turns "vk_enum_to_str.h" into "MESA_VK_ENUM_TO_STR_H".
func (g *Generator) includeGuard(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	guard := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(base)) + includeGuardH

	if g.config.HeaderGuardPrefix == "" {
		return guard
	}

	return g.config.HeaderGuardPrefix + "_" + guard
}
