// Package naming derives the synthesized C identifiers the generator emits
// for an enumeration: its upper-snake form, the out-of-band "max enum"
// sentinel and the all-bits mask name.
//
// Conversion rules:
//   - A separator is inserted before every capital letter that is not itself
//     preceded by a capital, so acronym runs stay together
//     ("VkDebugReportObjectTypeEXT" -> "VK_DEBUG_REPORT_OBJECT_TYPE_EXT").
//   - Vendor tags (KHR, EXT, ...) always end the sentinel name.
package naming
