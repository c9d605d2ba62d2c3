// SPDX-License-Identifier: MIT

// Package taxon provides taxon identities and the ordered namespace that is
// the sole arbiter of taxon identity for a group of related matrices.
//
// Identity is pointer identity: two *Taxon with the same label are distinct
// taxa unless one is resolved to the other by a label lookup. A Namespace
// holds unique *Taxon references in insertion order; that order is the
// iteration order every consumer (matrices, writers) observes.
//
// Label lookup policy:
//
//   - Namespace.GetTaxon uses the namespace's own case policy
//     (WithCaseSensitive; default case-insensitive).
//   - FindTaxon / RequireTaxon take the policy per call.
//
// Copying:
//
//   - Namespace.Clone duplicates the namespace and every taxon, returning a
//     Mapping (old → new) so containers keyed on taxa can be remapped
//     consistently.
//   - Mapping.Require resolves a taxon into a target namespace by label,
//     creating the counterpart if missing.
//
// Namespaces are not safe for concurrent mutation.
package taxon
