package registry

// ValueKind tags which attribute defines a constant's value.
type ValueKind int

const (
	_ ValueKind = iota // zero value is invalid

	ValueLiteral
	ValueBitPos
	ValueAlias
	ValueOffset
)

// Constant is a validated, still unresolved enumeration constant.
type Constant struct {
	Name string
	Kind ValueKind

	// Value holds the literal for ValueLiteral.
	Value int64
	// BitPos holds the bit index for ValueBitPos.
	BitPos uint
	// Alias names the aliased constant for ValueAlias.
	Alias string
	// ExtNumber, Offset and Negate describe a ValueOffset constant.
	ExtNumber int64
	Offset    int64
	Negate    bool
}

// EnumDecl is a merged enumeration declaration.
type EnumDecl struct {
	Name      string
	Bitmask   bool
	BitWidth  int
	Constants []Constant
}

// EnumExtension adds a constant to an enumeration declared elsewhere.
type EnumExtension struct {
	// Extends is the name of the base enumeration.
	Extends  string
	Constant Constant
}

// ExtensionDecl is a merged extension that targets the configured API.
type ExtensionDecl struct {
	Name     string
	Number   int64
	Platform string
	// Guard is the platform's compilation guard, empty for portable extensions.
	Guard string
	// Enums are the enum extensions of every matching require block.
	Enums []EnumExtension
	// Types are the type names pulled in by every matching require block.
	Types []string
}

// StructDecl is a struct declaration.
type StructDecl struct {
	Name string
	// Discriminants are the permitted values of the type-tag member. Empty
	// when the struct has no type-tag member or the member lists no values.
	Discriminants []string
}

// HandleDecl is a named handle declaration.
type HandleDecl struct {
	Name string
	// ObjTypeEnum names the constant of the object type enumeration that
	// identifies this handle.
	ObjTypeEnum string
}

// Pass is what one document contributed, in the order documents were given.
// Its declarations share name, kind and number with the merged ones but only
// carry the constants and types of that document.
type Pass struct {
	Enums        []*EnumDecl
	FeatureEnums []EnumExtension
	Extensions   []*ExtensionDecl
}

// Registry is the merged, filtered content of every loaded document.
type Registry struct {
	// Passes holds one entry per document. Resolution consumes these so a
	// document is processed completely before the next one.
	Passes []*Pass
	// Enums holds plain and bitmask enumerations in first-declaration order.
	Enums []*EnumDecl
	// FeatureEnums holds feature-level enum extensions in document order.
	FeatureEnums []EnumExtension
	// Extensions holds supported extensions in document order.
	Extensions []*ExtensionDecl
	Structs    []*StructDecl
	Handles    []*HandleDecl
	// Platforms maps platform names to guards.
	Platforms map[string]string
	// FilteredTypes holds types required only by skipped extensions.
	FilteredTypes map[string]struct{}
}

// Enum returns the enumeration with the given name, or nil.
func (r *Registry) Enum(name string) *EnumDecl {
	for _, e := range r.Enums {
		if e.Name == name {
			return e
		}
	}

	return nil
}

// Extension returns the extension with the given name, or nil.
func (r *Registry) Extension(name string) *ExtensionDecl {
	for _, e := range r.Extensions {
		if e.Name == name {
			return e
		}
	}

	return nil
}

// IsFiltered reports whether a type was only required by skipped extensions.
func (r *Registry) IsFiltered(typeName string) bool {
	_, ok := r.FilteredTypes[typeName]

	return ok
}
