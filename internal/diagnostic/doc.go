// Package diagnostic provides structured, non-fatal findings collected while
// resolving a registry.
//
// Key capabilities:
//   - Dropped references (enum extensions whose base enumeration is unknown)
//   - Aliases that never acquired a value
//   - Structs and handles excluded from the lookup tables by API filtering
//   - Skipped optional artifacts
package diagnostic
