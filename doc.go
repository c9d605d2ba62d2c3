// SPDX-License-Identifier: MIT

// Package phylochar is an in-memory toolkit for phylogenetic character
// matrices: aligned DNA, RNA and protein sequences, standard
// (morphological) characters and continuous measurements, keyed by taxon.
//
// What is in the box?
//
//	A small set of packages that fit together:
//		• Taxa: identity-bearing taxa and ordered, label-indexed namespaces
//		• State alphabets: fixed molecular alphabets and mutable standard ones
//		• Matrices: one Matrix type over eight data types, with CRUD by
//		  index, label or taxon, bulk merges, padding and column export
//		• Copy algebra: shallow, deep and namespace-scoped copies
//		• Concatenation: column-wise joins that remember each locus as a subset
//		• I/O: a schema registry with FASTA, YAML and CBOR implementations
//
// Layout:
//
//	annotation/     metadata bags attached to taxa, sequences, matrices
//	taxon/          Taxon, Namespace and the copy-time taxon Mapping
//	statealphabet/  State, Alphabet and the built-in alphabets
//	charmatrix/     Sequence, Matrix, subsets, merges, copies, registry
//	dataio/         fasta / yaml / cbor readers and writers, parallel loading
//	cmd/phylochar/  command-line front end
//	examples/       runnable programs
//
// Quick picture of a concatenated matrix:
//
//	           cox1     cytb
//	Homo     ATGTTC | CCA
//	Pan      ATGTTT | CCG
//	         [0..5]   [6..8]   ← one character subset per source
//
//	go get github.com/katalvlaran/phylochar
package phylochar
