package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultBitWidth = 32
	maxBitPos       = 63
	negativeDir     = "-"
)

// MergeOptions controls which parts of the documents are kept.
type MergeOptions struct {
	// API is matched against feature "api", extension "supported" and
	// require "api" lists.
	API string
	// DiscriminantMember is the name of the struct type-tag member.
	DiscriminantMember string
}

// DefaultMergeOptions returns the stock Vulkan options.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		API:                "vulkan",
		DiscriminantMember: "sType",
	}
}

type merger struct {
	opts MergeOptions
	reg  *Registry

	enums    map[string]*EnumDecl
	exts     map[string]*ExtensionDecl
	structs  map[string]*StructDecl
	handles  map[string]*HandleDecl
	required map[string]struct{}
	skipped  map[string]struct{}

	// pass collects the contribution of the document being merged.
	pass      *Pass
	passEnums map[string]*EnumDecl
	passExts  map[string]*ExtensionDecl
}

// Merge validates the documents and merges them, in order, into one Registry.
func Merge(opts MergeOptions, docs ...*Document) (*Registry, error) {
	m := &merger{
		opts: opts,
		reg: &Registry{
			Platforms:     make(map[string]string),
			FilteredTypes: make(map[string]struct{}),
		},
		enums:    make(map[string]*EnumDecl),
		exts:     make(map[string]*ExtensionDecl),
		structs:  make(map[string]*StructDecl),
		handles:  make(map[string]*HandleDecl),
		required: make(map[string]struct{}),
		skipped:  make(map[string]struct{}),
	}

	// Platforms first so extensions in any document can reference them.
	for _, doc := range docs {
		m.mergePlatforms(doc.Platforms)
	}

	for _, doc := range docs {
		m.mergeTypes(doc.Types)
	}

	for _, doc := range docs {
		if err := m.mergeDocument(doc); err != nil {
			return nil, err
		}
	}

	for name := range m.skipped {
		if _, ok := m.required[name]; !ok {
			m.reg.FilteredTypes[name] = struct{}{}
		}
	}

	return m.reg, nil
}

// mergeDocument merges the enum blocks, features and extensions of one
// document and records them as a Pass.
func (m *merger) mergeDocument(doc *Document) error {
	m.pass = &Pass{}
	m.passEnums = make(map[string]*EnumDecl)
	m.passExts = make(map[string]*ExtensionDecl)

	if err := m.mergeEnums(doc.Enums); err != nil {
		return err
	}

	if err := m.mergeFeatures(doc.Features); err != nil {
		return err
	}

	if err := m.mergeExtensions(doc.Extensions); err != nil {
		return err
	}

	m.reg.Passes = append(m.reg.Passes, m.pass)

	return nil
}

func (m *merger) mergePlatforms(platforms []Platform) {
	for _, p := range platforms {
		if _, ok := m.reg.Platforms[p.Name]; ok {
			continue
		}

		m.reg.Platforms[p.Name] = p.Protect
	}
}

func (m *merger) mergeEnums(blocks []EnumsBlock) error {
	for _, block := range blocks {
		if block.Type != EnumsTypeEnum && block.Type != EnumsTypeBitmask {
			continue
		}

		decl, ok := m.enums[block.Name]
		if !ok {
			width, err := parseBitWidth(block.BitWidth)
			if err != nil {
				return fmt.Errorf("%w: enums %s: %w", ErrMalformed, block.Name, err)
			}

			decl = &EnumDecl{
				Name:     block.Name,
				Bitmask:  block.Type == EnumsTypeBitmask,
				BitWidth: width,
			}
			m.enums[block.Name] = decl
			m.reg.Enums = append(m.reg.Enums, decl)
		}

		part := m.passEnum(decl)

		for _, entry := range block.Entries {
			if !m.apiMatches(entry.API) {
				continue
			}

			c, err := parseConstant(entry, 0)
			if err != nil {
				return fmt.Errorf("%w: enums %s: %w", ErrMalformed, block.Name, err)
			}

			decl.Constants = append(decl.Constants, c)
			part.Constants = append(part.Constants, c)
		}
	}

	return nil
}

// passEnum returns the current document's share of decl.
func (m *merger) passEnum(decl *EnumDecl) *EnumDecl {
	if part, ok := m.passEnums[decl.Name]; ok {
		return part
	}

	part := &EnumDecl{Name: decl.Name, Bitmask: decl.Bitmask, BitWidth: decl.BitWidth}
	m.passEnums[decl.Name] = part
	m.pass.Enums = append(m.pass.Enums, part)

	return part
}

func (m *merger) mergeTypes(types []TypeDecl) {
	for _, t := range types {
		switch t.Category {
		case CategoryStruct:
			if t.Alias != "" || t.Name == "" {
				continue
			}

			if _, ok := m.structs[t.Name]; ok {
				continue
			}

			s := &StructDecl{
				Name:          t.Name,
				Discriminants: m.discriminants(t.Members),
			}
			m.structs[t.Name] = s
			m.reg.Structs = append(m.reg.Structs, s)

		case CategoryHandle:
			if t.HandleName == "" {
				continue
			}

			if _, ok := m.handles[t.HandleName]; ok {
				continue
			}

			h := &HandleDecl{
				Name:        t.HandleName,
				ObjTypeEnum: t.ObjTypeEnum,
			}
			m.handles[t.HandleName] = h
			m.reg.Handles = append(m.reg.Handles, h)
		}
	}
}

// discriminants extracts the permitted values of the type-tag member.
func (m *merger) discriminants(members []Member) []string {
	for _, member := range members {
		if strings.TrimSpace(member.Name) != m.opts.DiscriminantMember {
			continue
		}

		return splitList(member.Values)
	}

	return nil
}

func (m *merger) mergeFeatures(features []Feature) error {
	for _, f := range features {
		if !m.apiMatches(f.API) {
			m.skipTypes(f.Requires)

			continue
		}

		for _, req := range f.Requires {
			if !m.apiMatches(req.API) {
				m.skipTypes([]Require{req})

				continue
			}

			for _, t := range req.Types {
				m.required[t.Name] = struct{}{}
			}

			for _, entry := range req.Enums {
				if entry.Extends == "" || !m.apiMatches(entry.API) {
					continue
				}

				c, err := parseConstant(entry, 0)
				if err != nil {
					return fmt.Errorf("%w: feature %s: %w", ErrMalformed, f.Name, err)
				}

				ee := EnumExtension{Extends: entry.Extends, Constant: c}
				m.reg.FeatureEnums = append(m.reg.FeatureEnums, ee)
				m.pass.FeatureEnums = append(m.pass.FeatureEnums, ee)
			}
		}
	}

	return nil
}

func (m *merger) mergeExtensions(extensions []Extension) error {
	for _, ext := range extensions {
		if !listContains(ext.Supported, m.opts.API) {
			m.skipTypes(ext.Requires)

			continue
		}

		decl, err := m.extensionDecl(ext)
		if err != nil {
			return fmt.Errorf("%w: extension %s: %w", ErrMalformed, ext.Name, err)
		}

		part := m.passExtension(decl)

		for _, req := range ext.Requires {
			if !m.apiMatches(req.API) {
				m.skipTypes([]Require{req})

				continue
			}

			for _, t := range req.Types {
				m.required[t.Name] = struct{}{}
				decl.Types = append(decl.Types, t.Name)
				part.Types = append(part.Types, t.Name)
			}

			for _, entry := range req.Enums {
				if entry.Extends == "" || !m.apiMatches(entry.API) {
					continue
				}

				c, err := parseConstant(entry, decl.Number)
				if err != nil {
					return fmt.Errorf("%w: extension %s: %w", ErrMalformed, ext.Name, err)
				}

				ee := EnumExtension{Extends: entry.Extends, Constant: c}
				decl.Enums = append(decl.Enums, ee)
				part.Enums = append(part.Enums, ee)
			}
		}
	}

	return nil
}

// extensionDecl returns the merged declaration for ext, creating it on first
// sight. Later declarations of the same name only contribute require blocks.
func (m *merger) extensionDecl(ext Extension) (*ExtensionDecl, error) {
	if decl, ok := m.exts[ext.Name]; ok {
		return decl, nil
	}

	number, err := strconv.ParseInt(strings.TrimSpace(ext.Number), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid extension number %q: %w", ext.Number, err)
	}

	if number < 1 {
		return nil, fmt.Errorf("extension number %d must be positive", number)
	}

	decl := &ExtensionDecl{
		Name:     ext.Name,
		Number:   number,
		Platform: ext.Platform,
	}

	if ext.Platform != "" {
		guard, ok := m.reg.Platforms[ext.Platform]
		if !ok {
			return nil, fmt.Errorf("unknown platform %q", ext.Platform)
		}

		decl.Guard = guard
	}

	m.exts[ext.Name] = decl
	m.reg.Extensions = append(m.reg.Extensions, decl)

	return decl, nil
}

// passExtension returns the current document's share of decl.
func (m *merger) passExtension(decl *ExtensionDecl) *ExtensionDecl {
	if part, ok := m.passExts[decl.Name]; ok {
		return part
	}

	part := &ExtensionDecl{
		Name:     decl.Name,
		Number:   decl.Number,
		Platform: decl.Platform,
		Guard:    decl.Guard,
	}
	m.passExts[decl.Name] = part
	m.pass.Extensions = append(m.pass.Extensions, part)

	return part
}

func (m *merger) skipTypes(reqs []Require) {
	for _, req := range reqs {
		for _, t := range req.Types {
			m.skipped[t.Name] = struct{}{}
		}
	}
}

// apiMatches reports whether an optional api list includes the configured API.
func (m *merger) apiMatches(apiList string) bool {
	return apiList == "" || listContains(apiList, m.opts.API)
}

// parseConstant validates an <enum> entry. extNumber is the number of the
// enclosing extension, zero outside extensions.
func parseConstant(entry EnumEntry, extNumber int64) (Constant, error) {
	if entry.Name == "" {
		return Constant{}, errors.New("enum entry without a name")
	}

	c := Constant{Name: entry.Name}

	switch {
	case entry.Value != "":
		v, err := strconv.ParseInt(strings.TrimSpace(entry.Value), 0, 64)
		if err != nil {
			return Constant{}, fmt.Errorf("constant %s: invalid value %q: %w", entry.Name, entry.Value, err)
		}

		c.Kind = ValueLiteral
		c.Value = v

	case entry.BitPos != "":
		pos, err := strconv.ParseUint(strings.TrimSpace(entry.BitPos), 0, 8)
		if err != nil || pos > maxBitPos {
			return Constant{}, fmt.Errorf("constant %s: invalid bitpos %q", entry.Name, entry.BitPos)
		}

		c.Kind = ValueBitPos
		c.BitPos = uint(pos)

	case entry.Alias != "":
		c.Kind = ValueAlias
		c.Alias = entry.Alias

	case entry.Offset != "":
		offset, err := strconv.ParseInt(strings.TrimSpace(entry.Offset), 0, 64)
		if err != nil {
			return Constant{}, fmt.Errorf("constant %s: invalid offset %q: %w", entry.Name, entry.Offset, err)
		}

		number := extNumber
		if entry.ExtNumber != "" {
			number, err = strconv.ParseInt(strings.TrimSpace(entry.ExtNumber), 0, 64)
			if err != nil {
				return Constant{}, fmt.Errorf("constant %s: invalid extnumber %q: %w", entry.Name, entry.ExtNumber, err)
			}
		}

		if number < 1 {
			return Constant{}, fmt.Errorf("constant %s: offset without an extension number", entry.Name)
		}

		c.Kind = ValueOffset
		c.ExtNumber = number
		c.Offset = offset
		c.Negate = entry.Dir == negativeDir

	default:
		return Constant{}, fmt.Errorf("constant %s has no value, bitpos, alias or offset", entry.Name)
	}

	return c, nil
}

func parseBitWidth(s string) (int, error) {
	if s == "" {
		return defaultBitWidth, nil
	}

	width, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid bitwidth %q: %w", s, err)
	}

	if width != 32 && width != 64 {
		return 0, fmt.Errorf("unsupported bitwidth %d", width)
	}

	return width, nil
}

// splitList splits a comma separated attribute, dropping empty items.
func splitList(s string) []string {
	var out []string

	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}

	return out
}

func listContains(list, item string) bool {
	for _, v := range splitList(list) {
		if v == item {
			return true
		}
	}

	return false
}
