// SPDX-License-Identifier: MIT

// Package statealphabet defines the discrete character-state vocabulary used
// by character matrices: an Alphabet is a fixed set of State identities, each
// denoted by one symbol.
//
// States are identity-bearing: two states are "the same" only when they are
// the same *State pointer. Alphabets are shared vocabularies and are never
// copied by the containers that reference them. Two alphabets can agree on
// every symbol and still denote different states; charmatrix remaps between
// such alphabets by symbol.
//
// Kinds of states:
//
//   - Fundamental   a single observable state (A, C, G, T, 0, 1, gap).
//   - Ambiguous     "one of" a set of fundamental states (N, R, Y, ?).
//
// Built-in constant alphabets (frozen, not mutable):
//
//	DNA, RNA, Nucleotide, Protein, RestrictionSites, InfiniteSites
//
// Standard (morphological) data defines its alphabet per use; NewStandard
// builds one from a symbol string.
package statealphabet
