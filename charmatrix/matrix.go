// SPDX-License-Identifier: MIT

package charmatrix

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/phylochar/annotation"
	"github.com/katalvlaran/phylochar/statealphabet"
	"github.com/katalvlaran/phylochar/taxon"
	"go.uber.org/zap"
)

// Matrix maps taxa of one namespace to character sequences.
// Use the typed constructors (NewDNA, NewContinuous, ...) or New(tag).
type Matrix struct {
	v     *variant
	label string
	oid   string

	ns   *taxon.Namespace
	seqs map[*taxon.Taxon]*Sequence

	characterTypes []*CharacterType
	subsets        *subsetIndex

	// discrete variants only
	alphabets       []*statealphabet.Alphabet
	defaultAlphabet *statealphabet.Alphabet

	annotations *annotation.Set
	log         *zap.Logger
}

// newMatrix allocates an empty matrix of variant v and applies o.
// Fixed-alphabet variants are seeded with their built-in alphabet.
func newMatrix(v *variant, o options) *Matrix {
	m := &Matrix{
		v:           v,
		label:       o.label,
		oid:         uuid.NewString(),
		ns:          o.namespace,
		seqs:        make(map[*taxon.Taxon]*Sequence),
		subsets:     newSubsetIndex(),
		annotations: annotation.NewSet(),
		log:         o.logger,
	}
	if m.ns == nil {
		m.ns = taxon.NewNamespace()
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if v.fixedAlphabet() {
		m.alphabets = append(m.alphabets, v.seed)
		m.defaultAlphabet = v.seed
	}
	if v.discrete && o.alphabet != nil {
		m.SetDefaultAlphabet(o.alphabet)
	}

	return m
}

// NewContinuous creates an empty continuous matrix.
func NewContinuous(opts ...Option) *Matrix { return newMatrix(variants[Continuous], gatherOptions(opts)) }

// NewStandard creates an empty standard (morphological) matrix with no alphabet.
// Supply one with WithDefaultAlphabet or AddAlphabet.
func NewStandard(opts ...Option) *Matrix { return newMatrix(variants[Standard], gatherOptions(opts)) }

// NewDNA creates an empty DNA matrix seeded with statealphabet.DNA.
func NewDNA(opts ...Option) *Matrix { return newMatrix(variants[DNA], gatherOptions(opts)) }

// NewRNA creates an empty RNA matrix seeded with statealphabet.RNA.
func NewRNA(opts ...Option) *Matrix { return newMatrix(variants[RNA], gatherOptions(opts)) }

// NewNucleotide creates an empty generic nucleotide matrix.
func NewNucleotide(opts ...Option) *Matrix { return newMatrix(variants[Nucleotide], gatherOptions(opts)) }

// NewProtein creates an empty protein matrix seeded with statealphabet.Protein.
func NewProtein(opts ...Option) *Matrix { return newMatrix(variants[Protein], gatherOptions(opts)) }

// NewRestrictionSites creates an empty restriction-site matrix.
func NewRestrictionSites(opts ...Option) *Matrix {
	return newMatrix(variants[RestrictionSites], gatherOptions(opts))
}

// NewInfiniteSites creates an empty infinite-sites matrix.
func NewInfiniteSites(opts ...Option) *Matrix {
	return newMatrix(variants[InfiniteSites], gatherOptions(opts))
}

// DataType returns the variant tag.
func (m *Matrix) DataType() DataType { return m.v.dataType }

// TypeName returns the variant name, e.g. "DnaCharacterMatrix".
func (m *Matrix) TypeName() string { return m.v.name }

// Discrete reports whether cells hold state references.
func (m *Matrix) Discrete() bool { return m.v.discrete }

// Label returns the matrix label.
func (m *Matrix) Label() string { return m.label }

// SetLabel renames the matrix.
func (m *Matrix) SetLabel(label string) { m.label = label }

// OID is a process-unique object id.
func (m *Matrix) OID() string { return m.oid }

// Namespace returns the taxon namespace the matrix is bound to.
func (m *Matrix) Namespace() *taxon.Namespace { return m.ns }

// SetNamespace rebinds the matrix to ns without touching the sequence map.
// Follow with ReconstructNamespace or UpdateNamespace to restore invariant 1.
func (m *Matrix) SetNamespace(ns *taxon.Namespace) {
	if ns == nil {
		ns = taxon.NewNamespace()
	}
	m.ns = ns
}

// Annotations returns the matrix metadata bag.
func (m *Matrix) Annotations() *annotation.Set { return m.annotations }

// Logger returns the attached logger (a no-op logger by default).
func (m *Matrix) Logger() *zap.Logger { return m.log }

// Coerce converts raw values into a sequence using the variant coercer.
func (m *Matrix) Coerce(raw any) (*Sequence, error) { return m.v.coercer.Coerce(m, raw) }

// CharacterTypes returns the column types in order.
func (m *Matrix) CharacterTypes() []*CharacterType {
	out := make([]*CharacterType, len(m.characterTypes))
	copy(out, m.characterTypes)

	return out
}

// AddCharacterType appends a column type; nil is ignored.
func (m *Matrix) AddCharacterType(ct *CharacterType) {
	if ct != nil {
		m.characterTypes = append(m.characterTypes, ct)
	}
}

// NewCharacterType creates, appends and returns a column type.
func (m *Matrix) NewCharacterType(label string, a *statealphabet.Alphabet) *CharacterType {
	ct := NewCharacterType(label, a)
	m.characterTypes = append(m.characterTypes, ct)

	return ct
}

// empty returns a matrix with the same variant, label, namespace, logger
// and registered alphabets, but no sequences, subsets or column types.
func (m *Matrix) empty() *Matrix {
	out := newMatrix(m.v, options{label: m.label, namespace: m.ns, logger: m.log})
	out.alphabets = append([]*statealphabet.Alphabet(nil), m.alphabets...)
	out.defaultAlphabet = m.defaultAlphabet

	return out
}
