package naming

import (
	"slices"
	"strings"
	"unicode"
)

const (
	separator     = "_"
	maxEnumMarker = "_MAX_ENUM"
	allMarker     = "ALL"
)

// DefaultVendorTags are the registrar suffixes kept last in sentinel names.
var DefaultVendorTags = []string{"AMD", "EXT", "INTEL", "KHR", "NV", "LUNARG"}

// ShoutCase converts a mixed-case identifier to upper snake case.
// Examples:
//   - "VkResult" -> "VK_RESULT"
//   - "VkDebugReportObjectTypeEXT" -> "VK_DEBUG_REPORT_OBJECT_TYPE_EXT"
//   - "VkFormatFeatureFlagBits2" -> "VK_FORMAT_FEATURE_FLAG_BITS2"
func ShoutCase(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)

	var b strings.Builder

	b.Grow(len(s) + len(s)/2)

	for i, r := range runes {
		if i > 0 && startsWord(runes, i) {
			b.WriteString(separator)
		}

		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}

// startsWord reports whether a separator goes before runes[i].
func startsWord(runes []rune, i int) bool {
	return unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1])
}

// MaxEnumName returns the sentinel constant name for an enumeration.
// If the last segment of the upper-snake name is one of vendorTags it is moved
// after the marker: "VkDebugReportObjectTypeEXT" ->
// "VK_DEBUG_REPORT_OBJECT_TYPE_MAX_ENUM_EXT".
func MaxEnumName(enumName string, vendorTags []string) string {
	shout := ShoutCase(enumName)

	idx := strings.LastIndex(shout, separator)
	if idx >= 0 {
		last := shout[idx+1:]
		if slices.Contains(vendorTags, last) {
			return shout[:idx] + maxEnumMarker + separator + last
		}
	}

	return shout + maxEnumMarker
}

// AllBitsName returns the name of the all-bits mask of a bitmask enumeration,
// inserting "ALL" after the leading namespace segment:
// "VkFormatFeatureFlagBits" -> "VK_ALL_FORMAT_FEATURE_FLAG_BITS".
func AllBitsName(enumName string) string {
	shout := ShoutCase(enumName)

	head, tail, found := strings.Cut(shout, separator)
	if !found {
		return allMarker + separator + shout
	}

	return head + separator + allMarker + separator + tail
}

// TrimTypePrefix strips the API type prefix ("Vk") from an identifier.
// Identifiers without the prefix are returned unchanged.
func TrimTypePrefix(name, prefix string) string {
	return strings.TrimPrefix(name, prefix)
}
