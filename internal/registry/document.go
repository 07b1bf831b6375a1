package registry

import "encoding/xml"

// Category values of <type> elements consumed by the generator.
const (
	CategoryStruct = "struct"
	CategoryHandle = "handle"
)

// Type values of <enums> blocks. Blocks of any other type (API constants)
// are ignored.
const (
	EnumsTypeEnum    = "enum"
	EnumsTypeBitmask = "bitmask"
)

// Document is one decoded registry document.
type Document struct {
	XMLName    xml.Name     `xml:"registry"`
	Platforms  []Platform   `xml:"platforms>platform"`
	Types      []TypeDecl   `xml:"types>type"`
	Enums      []EnumsBlock `xml:"enums"`
	Features   []Feature    `xml:"feature"`
	Extensions []Extension  `xml:"extensions>extension"`
}

// Platform associates a platform name with its compilation guard.
type Platform struct {
	Name    string `xml:"name,attr"`
	Protect string `xml:"protect,attr"`
}

// TypeDecl is a <type> element. Struct declarations carry Name and Members,
// handle declarations carry HandleName and ObjTypeEnum.
type TypeDecl struct {
	Category    string   `xml:"category,attr"`
	Name        string   `xml:"name,attr"`
	Alias       string   `xml:"alias,attr"`
	ObjTypeEnum string   `xml:"objtypeenum,attr"`
	HandleName  string   `xml:"name"`
	Members     []Member `xml:"member"`
}

// Member is one field of a struct declaration.
type Member struct {
	Values string `xml:"values,attr"`
	Type   string `xml:"type"`
	Name   string `xml:"name"`
}

// EnumsBlock is an <enums> element.
type EnumsBlock struct {
	Name     string      `xml:"name,attr"`
	Type     string      `xml:"type,attr"`
	BitWidth string      `xml:"bitwidth,attr"`
	Entries  []EnumEntry `xml:"enum"`
}

// EnumEntry is an <enum> element, either inside an <enums> block or inside a
// <require> block where Extends names the enumeration it adds to.
type EnumEntry struct {
	Name      string `xml:"name,attr"`
	Value     string `xml:"value,attr"`
	BitPos    string `xml:"bitpos,attr"`
	Alias     string `xml:"alias,attr"`
	Offset    string `xml:"offset,attr"`
	ExtNumber string `xml:"extnumber,attr"`
	Dir       string `xml:"dir,attr"`
	Extends   string `xml:"extends,attr"`
	API       string `xml:"api,attr"`
}

// Feature is a core API version block.
type Feature struct {
	API      string    `xml:"api,attr"`
	Name     string    `xml:"name,attr"`
	Requires []Require `xml:"require"`
}

// Extension is an <extension> element.
type Extension struct {
	Name      string    `xml:"name,attr"`
	Number    string    `xml:"number,attr"`
	Platform  string    `xml:"platform,attr"`
	Supported string    `xml:"supported,attr"`
	Requires  []Require `xml:"require"`
}

// Require is a <require> block of a feature or extension.
type Require struct {
	API   string      `xml:"api,attr"`
	Enums []EnumEntry `xml:"enum"`
	Types []TypeRef   `xml:"type"`
}

// TypeRef names a type pulled in by a <require> block.
type TypeRef struct {
	Name string `xml:"name,attr"`
}
