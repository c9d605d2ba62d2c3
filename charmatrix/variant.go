// SPDX-License-Identifier: MIT

package charmatrix

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/statealphabet"
)

// DataType tags a matrix variant.
type DataType string

// Recognized data types.
const (
	Continuous       DataType = "continuous"
	DNA              DataType = "dna"
	RNA              DataType = "rna"
	Nucleotide       DataType = "nucleotide"
	Protein          DataType = "protein"
	Standard         DataType = "standard"
	RestrictionSites DataType = "restriction"
	InfiniteSites    DataType = "infinite"
)

// String implements fmt.Stringer.
func (d DataType) String() string { return string(d) }

// Coercer converts raw values into a sequence for a particular matrix.
// FromDict, FromEntries and SetValues route every non-*Sequence value through
// the matrix variant's coercer.
type Coercer interface {
	Coerce(m *Matrix, raw any) (*Sequence, error)
}

// CoercerFunc adapts a function to Coercer.
type CoercerFunc func(m *Matrix, raw any) (*Sequence, error)

// Coerce implements Coercer.
func (f CoercerFunc) Coerce(m *Matrix, raw any) (*Sequence, error) { return f(m, raw) }

// variant is the per-data-type configuration record.
type variant struct {
	dataType DataType
	name     string
	discrete bool
	// seed is the built-in alphabet of fixed-alphabet variants (nil otherwise).
	seed    *statealphabet.Alphabet
	coercer Coercer
}

// fixedAlphabet reports whether the variant is seeded with a constant alphabet.
func (v *variant) fixedAlphabet() bool { return v.seed != nil }

var variants = map[DataType]*variant{
	Continuous:       {dataType: Continuous, name: "ContinuousCharacterMatrix", coercer: CoercerFunc(coerceContinuous)},
	Standard:         {dataType: Standard, name: "StandardCharacterMatrix", discrete: true, coercer: CoercerFunc(coerceDiscrete)},
	DNA:              {dataType: DNA, name: "DnaCharacterMatrix", discrete: true, seed: statealphabet.DNA, coercer: CoercerFunc(coerceDiscrete)},
	RNA:              {dataType: RNA, name: "RnaCharacterMatrix", discrete: true, seed: statealphabet.RNA, coercer: CoercerFunc(coerceDiscrete)},
	Nucleotide:       {dataType: Nucleotide, name: "NucleotideCharacterMatrix", discrete: true, seed: statealphabet.Nucleotide, coercer: CoercerFunc(coerceDiscrete)},
	Protein:          {dataType: Protein, name: "ProteinCharacterMatrix", discrete: true, seed: statealphabet.Protein, coercer: CoercerFunc(coerceDiscrete)},
	RestrictionSites: {dataType: RestrictionSites, name: "RestrictionSitesCharacterMatrix", discrete: true, seed: statealphabet.RestrictionSites, coercer: CoercerFunc(coerceDiscrete)},
	InfiniteSites:    {dataType: InfiniteSites, name: "InfiniteSitesCharacterMatrix", discrete: true, seed: statealphabet.InfiniteSites, coercer: CoercerFunc(coerceDiscrete)},
}

// coerceErr marks err as a coercion failure while keeping its own sentinel.
func coerceErr(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrCoercion)
}

// passthrough handles the value shapes every variant accepts as-is.
func passthrough(raw any) (*Sequence, bool) {
	switch v := raw.(type) {
	case *Sequence:
		return v, true
	case []Cell:
		return NewSequence(v...), true
	}

	return nil, false
}

// coerceContinuous accepts float/int slices, numeric strings and
// whitespace-separated number strings.
func coerceContinuous(_ *Matrix, raw any) (*Sequence, error) {
	if s, ok := passthrough(raw); ok {
		return s, nil
	}
	s := NewSequence()
	switch v := raw.(type) {
	case []float64:
		for _, x := range v {
			s.Append(ValueCell(x))
		}
	case []int:
		for _, x := range v {
			s.Append(ValueCell(float64(x)))
		}
	case string:
		return coerceContinuous(nil, strings.Fields(v))
	case []string:
		for i, f := range v {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, coerceErr(err, "column %d: %q", i, f)
			}
			s.Append(ValueCell(x))
		}
	default:
		return nil, errors.Wrapf(ErrCoercion, "continuous data from %T", raw)
	}

	return s, nil
}

// coerceDiscrete resolves symbols through the matrix default alphabet.
// A string is split into one symbol per rune.
func coerceDiscrete(m *Matrix, raw any) (*Sequence, error) {
	if s, ok := passthrough(raw); ok {
		return s, nil
	}
	var symbols []string
	switch v := raw.(type) {
	case string:
		symbols = make([]string, 0, len(v))
		for _, r := range v {
			symbols = append(symbols, string(r))
		}
	case []string:
		symbols = v
	case []*statealphabet.State:
		s := NewSequence()
		for _, st := range v {
			s.Append(StateCell(st))
		}

		return s, nil
	default:
		return nil, errors.Wrapf(ErrCoercion, "discrete data from %T", raw)
	}
	a, err := m.DefaultAlphabet()
	if err != nil {
		return nil, coerceErr(err, "resolving symbols")
	}
	s := NewSequence()
	for i, sym := range symbols {
		st, ok := a.State(sym)
		if !ok {
			return nil, errors.Mark(
				errors.Wrapf(ErrSymbolNotFound, "column %d: symbol %q not in alphabet %q", i, sym, a.Label()),
				ErrCoercion)
		}
		s.Append(StateCell(st))
	}

	return s, nil
}
