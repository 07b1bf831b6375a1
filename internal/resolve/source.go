package resolve

import (
	"fmt"

	"vkenum-generator/internal/registry"
)

// Extension-relative numbering: every extension owns a block of
// extensionBlockSize values starting at extensionBase.
const (
	extensionBase      = 1_000_000_000
	extensionBlockSize = 1000
)

// ConstantSource describes how a constant obtains its value. It is one of
// Literal, BitPosition, ExtensionOffset or AliasOf.
type ConstantSource interface {
	isConstantSource()
}

// Literal is an explicit value.
type Literal struct {
	Value int64
}

// BitPosition is a single bit, value 1<<Pos.
type BitPosition struct {
	Pos uint
}

// ExtensionOffset is a value relative to an extension's number block.
type ExtensionOffset struct {
	ExtNumber int64
	Offset    int64
	Negate    bool
}

// AliasOf copies the value of another constant of the same enumeration.
type AliasOf struct {
	Name string
}

func (Literal) isConstantSource()         {}
func (BitPosition) isConstantSource()     {}
func (ExtensionOffset) isConstantSource() {}
func (AliasOf) isConstantSource()         {}

// Value returns the bit value.
func (b BitPosition) Value() int64 {
	return int64(uint64(1) << b.Pos)
}

// Value returns 1000000000 + (ExtNumber-1)*1000 + Offset, negated when Negate
// is set.
func (o ExtensionOffset) Value() int64 {
	v := extensionBase + (o.ExtNumber-1)*extensionBlockSize + o.Offset
	if o.Negate {
		return -v
	}

	return v
}

// SourceOf converts a raw registry constant into its ConstantSource.
func SourceOf(c registry.Constant) (ConstantSource, error) {
	switch c.Kind {
	case registry.ValueLiteral:
		return Literal{Value: c.Value}, nil
	case registry.ValueBitPos:
		return BitPosition{Pos: c.BitPos}, nil
	case registry.ValueOffset:
		return ExtensionOffset{ExtNumber: c.ExtNumber, Offset: c.Offset, Negate: c.Negate}, nil
	case registry.ValueAlias:
		return AliasOf{Name: c.Alias}, nil
	default:
		return nil, fmt.Errorf("constant %s: unknown value kind %d", c.Name, c.Kind)
	}
}
