package resolve

import (
	"maps"
	"slices"
)

// EnumTable holds the enumerations of one kind, keyed by name.
type EnumTable struct {
	kind   EnumKind
	byName map[string]*Enum
}

// NewEnumTable creates an empty table for enumerations of the given kind.
func NewEnumTable(kind EnumKind) *EnumTable {
	return &EnumTable{
		kind:   kind,
		byName: make(map[string]*Enum),
	}
}

// Declare returns the enumeration with the given name, creating it on first
// use. The bit width and sentinel of later declarations are ignored.
func (t *EnumTable) Declare(name string, bitWidth int, maxEnumName string) *Enum {
	if e, ok := t.byName[name]; ok {
		return e
	}

	e := newEnum(name, t.kind, bitWidth, maxEnumName)
	t.byName[name] = e

	return e
}

// Get returns the enumeration with the given name, or nil.
func (t *EnumTable) Get(name string) *Enum {
	return t.byName[name]
}

// Len returns the number of enumerations.
func (t *EnumTable) Len() int {
	return len(t.byName)
}

// Sorted returns every enumeration ordered by name.
func (t *EnumTable) Sorted() []*Enum {
	out := make([]*Enum, 0, len(t.byName))
	for _, name := range slices.Sorted(maps.Keys(t.byName)) {
		out = append(out, t.byName[name])
	}

	return out
}

// Extension is an API extension that can contribute constants and types.
type Extension struct {
	Name   string
	Number int64
	// Guard is inherited from the owning platform, empty when portable.
	Guard string
}

// ExtensionTable holds extensions keyed by name.
type ExtensionTable struct {
	byName map[string]*Extension
}

// NewExtensionTable creates an empty extension table.
func NewExtensionTable() *ExtensionTable {
	return &ExtensionTable{byName: make(map[string]*Extension)}
}

// Add registers an extension. The first registration of a name wins.
func (t *ExtensionTable) Add(ext *Extension) *Extension {
	if cur, ok := t.byName[ext.Name]; ok {
		return cur
	}

	t.byName[ext.Name] = ext

	return ext
}

// Get returns the extension with the given name, or nil.
func (t *ExtensionTable) Get(name string) *Extension {
	return t.byName[name]
}

// Sorted returns every extension ordered by name.
func (t *ExtensionTable) Sorted() []*Extension {
	out := make([]*Extension, 0, len(t.byName))
	for _, name := range slices.Sorted(maps.Keys(t.byName)) {
		out = append(out, t.byName[name])
	}

	return out
}
