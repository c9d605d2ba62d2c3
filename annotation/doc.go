// SPDX-License-Identifier: MIT

// Package annotation provides the metadata bag attached to every annotatable
// object of phylochar: taxa, character sequences, column types, subsets and
// whole matrices.
//
// The bag is deliberately opaque to the rest of the module. Containers only
// rely on two properties:
//
//   - An annotation Set is owned by exactly one object; it is never shared.
//   - Set.Clone produces a fully independent copy (nested annotations included),
//     which is the deep-copy contract every copy operation in charmatrix uses.
//
// Annotations keep insertion order. Names are not required to be unique; Find
// returns the first match, Values returns all of them.
package annotation
