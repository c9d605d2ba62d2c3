// SPDX-License-Identifier: MIT

// Package charmatrix implements character matrices: the mapping between taxon
// identities and character sequences used by phylogenetic data, together with
// the merge, concatenation, subsetting and copy algebra over them.
//
// Model:
//
//	Matrix ──ns──▶ taxon.Namespace            (referenced, never owned)
//	   │
//	   ├── seqs: *taxon.Taxon → *Sequence      (at most one per taxon)
//	   ├── CharacterTypes  []*CharacterType    (shared column semantics)
//	   ├── Subsets         label → *Subset     (case-insensitive labels)
//	   └── Alphabets       []*statealphabet.Alphabet + default (discrete only)
//
// Variants are selected by DataType tag:
//
//	continuous   Cell.Value carries a float64; no alphabets
//	standard     discrete, alphabet defined per use
//	dna, rna, nucleotide, protein, restriction, infinite
//	             discrete, seeded with the matching built-in alphabet
//
// Invariants (hold after every public mutation):
//
//  1. Every taxon keying a sequence is a member of Namespace().
//  2. At most one sequence per taxon.
//  3. For fixed-alphabet variants every cell state belongs to a registered alphabet,
//     and the default alphabet is always registered.
//  4. Merges require the identical *taxon.Namespace (pointer equality).
//  5. Matrix equality is identity; matrices are mutable aggregates.
//
// Iteration order over taxa is always namespace order filtered to taxa that
// have a sequence, never map order.
//
// Keys:
//
//	ByIndex(i)    position in the namespace (ErrIndexOutOfRange)
//	ByLabel(s)    label lookup under the namespace case policy (ErrTaxonNotFound)
//	ByTaxon(t)    the taxon itself, passed through
//
// Get auto-creates an empty sequence for a namespace taxon that has none.
//
// Copy contracts:
//
//	ShallowCopy   same namespace, same *Sequence objects, annotations cloned
//	DeepCopy      clones namespace, taxa, sequences, subsets, annotations;
//	               alphabets and character types stay shared
//	ScopedCopy    deep copy with every taxon remapped by label into a target namespace
//	NewFrom       clone-from constructor; reuses the source namespace or a
//	               supplied one, optionally relabels
//
// Bulk merges (AddSequences, ReplaceSequences, UpdateSequences,
// ExtendSequences, ExtendMatrix) and Concatenate are not atomic on failure
// halfway through a batch; Concatenate validates every source before building
// so it never returns a partial result.
//
// Nothing in this package is safe for concurrent mutation.
package charmatrix
