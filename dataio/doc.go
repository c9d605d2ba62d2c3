// SPDX-License-Identifier: MIT

// Package dataio provides concrete readers and writers for character
// matrices and registers them with the charmatrix schema registry:
//
//	fasta  one matrix per stream; ">label" headers, symbols or numbers below
//	yaml   one or more matrices per document, with subsets and annotations
//	cbor   the yaml document model in canonical CBOR
//
// Importing the package (even as _ "…/dataio") is enough to make
// charmatrix.ParseFromStream and (*Matrix).Write accept these schema names.
//
// Reader options (charmatrix.WithSchemaOption):
//
//	OptionLabel     string  label of the produced matrix (fasta)
//	OptionAlphabet  string or *statealphabet.Alphabet
//	                default alphabet of standard matrices (fasta)
//
// ConcatenateSources and ConcatenatePaths parse several sources in parallel,
// each into a private namespace, then re-home every matrix onto one shared
// namespace by taxon label and concatenate them in source order.
package dataio
