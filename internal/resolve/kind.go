package resolve

//go:generate go tool stringer -type=EnumKind -trimprefix=EnumKind -output=kind_string.go

// EnumKind distinguishes plain enumerations from bitmask enumerations.
type EnumKind int

const (
	_ EnumKind = iota // skip zero value, it marks an invalid kind

	EnumKindPlain
	EnumKindBitmask
)
