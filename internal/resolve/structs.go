package resolve

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Discriminant is one permitted type-tag value of a struct.
type Discriminant struct {
	Name  string
	Value int64
}

// Struct is a chainable struct: one that carries a type-tag member with at
// least one permitted value.
type Struct struct {
	Name          string
	Discriminants []Discriminant
	// Extension is the extension that owns the struct, nil for core structs.
	Extension *Extension
}

// Guard returns the owning extension's guard, empty when unguarded.
func (s *Struct) Guard() string {
	if s.Extension == nil {
		return ""
	}

	return s.Extension.Guard
}

// StructTable holds chainable structs keyed by name.
type StructTable struct {
	byName map[string]*Struct
	// owners maps discriminant values to the struct that claimed them.
	owners map[int64]string
}

// NewStructTable creates an empty struct table.
func NewStructTable() *StructTable {
	return &StructTable{
		byName: make(map[string]*Struct),
		owners: make(map[int64]string),
	}
}

// Get returns the struct with the given name, or nil.
func (t *StructTable) Get(name string) *Struct {
	return t.byName[name]
}

// Len returns the number of chainable structs.
func (t *StructTable) Len() int {
	return len(t.byName)
}

// Owner returns the struct that claimed a discriminant value.
func (t *StructTable) Owner(value int64) (string, bool) {
	name, ok := t.owners[value]

	return name, ok
}

// Sorted returns every struct ordered by name.
func (t *StructTable) Sorted() []*Struct {
	out := make([]*Struct, 0, len(t.byName))
	for _, name := range slices.Sorted(maps.Keys(t.byName)) {
		out = append(out, t.byName[name])
	}

	return out
}

// ObjectType maps a handle's discriminant value to its display name.
type ObjectType struct {
	Value int64
	Name  string
}

// ObjectTypeTable maps object type values to handle names.
type ObjectTypeTable struct {
	// Enum is the name of the designated object type enumeration.
	Enum    string
	byValue map[int64]string
}

// NewObjectTypeTable creates an empty table bound to the given enumeration.
func NewObjectTypeTable(enum string) *ObjectTypeTable {
	return &ObjectTypeTable{
		Enum:    enum,
		byValue: make(map[int64]string),
	}
}

// Name returns the display name recorded for value.
func (t *ObjectTypeTable) Name(value int64) (string, bool) {
	name, ok := t.byValue[value]

	return name, ok
}

// Len returns the number of recorded object types.
func (t *ObjectTypeTable) Len() int {
	return len(t.byValue)
}

// Entries returns every recorded object type ordered by value.
func (t *ObjectTypeTable) Entries() []ObjectType {
	out := make([]ObjectType, 0, len(t.byValue))
	for v, name := range t.byValue {
		out = append(out, ObjectType{Value: v, Name: name})
	}

	slices.SortFunc(out, func(a, b ObjectType) int {
		return cmp.Compare(a.Value, b.Value)
	})

	return out
}

// add registers a struct, rejecting discriminant values already claimed by
// another struct.
func (t *StructTable) add(s *Struct) error {
	for _, d := range s.Discriminants {
		if owner, ok := t.owners[d.Value]; ok && owner != s.Name {
			return fmt.Errorf("%w: discriminant %s of %s is already used by %s",
				ErrInconsistent, d.Name, s.Name, owner)
		}
	}

	for _, d := range s.Discriminants {
		t.owners[d.Value] = s.Name
	}

	t.byName[s.Name] = s

	return nil
}
