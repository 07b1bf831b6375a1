// Package gen renders the C introspection artifacts from a resolved registry.
//
// Generation uses text/template. Every artifact is a pure function of the
// resolved context and the generator configuration, so identical inputs
// always produce byte-identical files.
//
// Artifacts:
//   - vk_enum_to_str.c: one string conversion function per plain
//     enumeration, the struct size lookup and the object type name lookup
//   - vk_enum_to_str.h: declarations of the above
//   - vk_enum_defines.h: extension numbers, all-bits masks, 64-bit bitmask
//     redefinitions and narrowing helpers
//
// Declarations owned by a platform-guarded extension are wrapped in the same
// #ifdef block in every artifact.
package gen
