package resolve

import (
	"errors"

	"github.com/hashicorp/go-hclog"

	"vkenum-generator/internal/diagnostic"
	"vkenum-generator/internal/naming"
)

// ErrInconsistent is wrapped by every fatal consistency error: conflicting
// redeclarations, unresolvable discriminants and duplicate switch arms.
var ErrInconsistent = errors.New("inconsistent registry")

// Config holds configuration for the resolution pass.
type Config struct {
	// VendorTags are the suffixes kept last in sentinel names.
	VendorTags []string
	// StructTypeEnum is the plain enumeration holding struct discriminants.
	StructTypeEnum string
	// ObjectTypeEnum is the plain enumeration holding handle discriminants.
	ObjectTypeEnum string
	// Logger receives progress and diagnostics. Nil disables logging.
	Logger hclog.Logger
}

// DefaultConfig returns the stock Vulkan resolution configuration.
func DefaultConfig() Config {
	return Config{
		VendorTags:     naming.DefaultVendorTags,
		StructTypeEnum: "VkStructureType",
		ObjectTypeEnum: "VkObjectType",
	}
}

// Context owns every table built by one resolution pass.
type Context struct {
	// Enums holds plain enumerations.
	Enums *EnumTable
	// Bitmasks holds bitmask enumerations.
	Bitmasks    *EnumTable
	Extensions  *ExtensionTable
	Structs     *StructTable
	ObjectTypes *ObjectTypeTable
	// Diagnostics contains the non-fatal findings of the pass.
	Diagnostics diagnostic.Diagnostics
}

func newContext(cfg Config) *Context {
	return &Context{
		Enums:       NewEnumTable(EnumKindPlain),
		Bitmasks:    NewEnumTable(EnumKindBitmask),
		Extensions:  NewExtensionTable(),
		Structs:     NewStructTable(),
		ObjectTypes: NewObjectTypeTable(cfg.ObjectTypeEnum),
	}
}

// Enum looks a name up in the plain table, then in the bitmask table.
func (c *Context) Enum(name string) *Enum {
	if e := c.Enums.Get(name); e != nil {
		return e
	}

	return c.Bitmasks.Get(name)
}
