// Package resolve turns the merged raw registry into the immutable model
// consumed by artifact generation.
//
// Resolution pipeline:
//  1. Declare every enumeration (plain and bitmask) and its constants
//  2. Apply feature-level enum extensions
//  3. Apply extensions in document order: enum extensions, struct ownership,
//     platform guards on enumerations
//  4. Report aliases that never acquired a value
//  5. Build the discriminant-keyed struct table and the object type table
//
// Every constant value comes from a ConstantSource. Alias sources may point
// forward; they wait in a per-enumeration pending map keyed by the missing
// base name and are flushed through a worklist as soon as the base is bound.
// The canonical name of a value is re-evaluated on every binding: the
// shortest name wins, ties go to the name registered first.
//
// All tables are owned by a single Context. Once Resolve returns the Context
// is never mutated again, so readers need no synchronization.
package resolve
