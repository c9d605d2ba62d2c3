// SPDX-License-Identifier: MIT

package charmatrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/annotation"
	"github.com/katalvlaran/phylochar/statealphabet"
	"github.com/katalvlaran/phylochar/taxon"
)

// CharacterType binds a column position's semantics to a state alphabet.
// Column types are shared by reference between a matrix and all of its copies;
// they cannot be structurally copied.
type CharacterType struct {
	label       string
	alphabet    *statealphabet.Alphabet
	annotations *annotation.Set
}

// NewCharacterType creates a column type bound to a (which may be nil).
func NewCharacterType(label string, a *statealphabet.Alphabet) *CharacterType {
	return &CharacterType{label: label, alphabet: a, annotations: annotation.NewSet()}
}

// Label returns the column type label.
func (ct *CharacterType) Label() string { return ct.label }

// Alphabet returns the bound alphabet.
func (ct *CharacterType) Alphabet() *statealphabet.Alphabet { return ct.alphabet }

// SetAlphabet rebinds the column type.
func (ct *CharacterType) SetAlphabet(a *statealphabet.Alphabet) { ct.alphabet = a }

// rebound returns a new column type carrying ct's label and a clone of its
// annotations, bound to a. ct itself is left untouched, so matrices still
// sharing it keep their binding.
func (ct *CharacterType) rebound(a *statealphabet.Alphabet) *CharacterType {
	return &CharacterType{label: ct.label, alphabet: a, annotations: ct.annotations.Clone()}
}

// Annotations returns the column type metadata bag.
func (ct *CharacterType) Annotations() *annotation.Set { return ct.annotations }

// Copy always fails with ErrUnsupported.
func (ct *CharacterType) Copy() (*CharacterType, error) {
	return nil, errors.Wrapf(ErrUnsupported, "cannot directly copy CharacterType %q", ct.label)
}

// ScopedCopy always fails with ErrUnsupported.
func (ct *CharacterType) ScopedCopy(*taxon.Namespace) (*CharacterType, error) {
	return nil, errors.Wrapf(ErrUnsupported, "cannot directly copy CharacterType %q", ct.label)
}
