// SPDX-License-Identifier: MIT

package statealphabet

import "strings"

// Built-in symbol sets.
const (
	GapSymbol     = "-"
	MissingSymbol = "?"

	dnaFundamentals        = "ACGT-"
	rnaFundamentals        = "ACGU-"
	nucleotideFundamentals = "ACGTU-"
	proteinFundamentals    = "ACDEFGHIKLMNPQRSTVWY*-"
	binaryFundamentals     = "01-"

	// DefaultStandardSymbols is used by NewStandard when no symbols are given.
	DefaultStandardSymbols = "0123456789"
)

// ambiguity is one ambiguous symbol and the fundamentals it resolves to.
type ambiguity struct {
	symbol  string
	members string
}

// IUPAC nucleotide ambiguity codes; "T" is rewritten to "U" for RNA.
var nucleotideAmbiguities = []ambiguity{
	{"R", "AG"}, {"Y", "CT"}, {"M", "AC"}, {"W", "AT"}, {"S", "CG"}, {"K", "GT"},
	{"V", "ACG"}, {"H", "ACT"}, {"D", "AGT"}, {"B", "CGT"},
	{"N", "ACGT"}, {"X", "ACGT"},
}

var proteinAmbiguities = []ambiguity{
	{"B", "DN"}, {"Z", "EQ"}, {"X", "ACDEFGHIKLMNPQRSTVWY*"},
}

// Constant alphabets shared by every fixed-alphabet matrix variant.
var (
	DNA              = mustBuild("DNA", dnaFundamentals, nucleotideAmbiguities, false)
	RNA              = mustBuild("RNA", rnaFundamentals, rewriteT(nucleotideAmbiguities, "U"), false)
	Nucleotide       = mustBuild("Nucleotide", nucleotideFundamentals, nucleotideAmbiguities, false)
	Protein          = mustBuild("Protein", proteinFundamentals, proteinAmbiguities, false)
	RestrictionSites = mustBuild("RestrictionSites", binaryFundamentals, nil, true)
	InfiniteSites    = mustBuild("InfiniteSites", binaryFundamentals, nil, true)
)

func rewriteT(in []ambiguity, to string) []ambiguity {
	out := make([]ambiguity, len(in))
	for i, a := range in {
		out[i] = ambiguity{symbol: a.symbol, members: strings.ReplaceAll(a.members, "T", to)}
	}

	return out
}

// build registers fundamentals (one rune each), the ambiguity codes and a
// trailing missing state covering every fundamental including the gap.
func build(label, fundamentals string, amb []ambiguity, caseSensitive bool) (*Alphabet, error) {
	a := New(label, WithCaseSensitive(caseSensitive), WithGap(GapSymbol), WithMissing(MissingSymbol))
	for _, r := range fundamentals {
		if _, err := a.AddFundamental(string(r)); err != nil {
			return nil, err
		}
	}
	for _, am := range amb {
		if _, err := a.AddAmbiguous(am.symbol, splitSymbols(am.members)...); err != nil {
			return nil, err
		}
	}
	if _, err := a.AddAmbiguous(MissingSymbol, splitSymbols(fundamentals)...); err != nil {
		return nil, err
	}

	return a, nil
}

func mustBuild(label, fundamentals string, amb []ambiguity, caseSensitive bool) *Alphabet {
	a, err := build(label, fundamentals, amb, caseSensitive)
	if err != nil {
		panic(err)
	}
	a.Freeze()

	return a
}

func splitSymbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

// NewStandard builds a mutable standard (morphological) alphabet with one
// fundamental state per rune of symbols, plus gap "-" and missing "?".
// An empty symbols string selects DefaultStandardSymbols.
func NewStandard(symbols string) (*Alphabet, error) {
	if symbols == "" {
		symbols = DefaultStandardSymbols
	}

	return build("Standard", symbols+GapSymbol, nil, true)
}
