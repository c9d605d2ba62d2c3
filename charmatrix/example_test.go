// SPDX-License-Identifier: MIT

package charmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/statealphabet"
	"github.com/katalvlaran/phylochar/taxon"
)

// ExampleConcatenate joins two loci sampled for the same taxa and shows the
// provenance subsets recorded for each source.
func ExampleConcatenate() {
	ns := taxon.NewNamespace(taxon.WithTaxa("t1", "t2"))
	a, _ := charmatrix.FromDict(charmatrix.DNA, map[string]string{"t1": "TCCAA", "t2": "TGCAA"},
		charmatrix.WithNamespace(ns))
	b, _ := charmatrix.FromDict(charmatrix.DNA, map[string]string{"t1": "GG", "t2": "GA"},
		charmatrix.WithNamespace(ns), charmatrix.WithLabel("its"))

	c, err := charmatrix.Concatenate([]*charmatrix.Matrix{a, b})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, it := range c.Items() {
		fmt.Println(it.Taxon.Label(), it.Sequence)
	}
	for _, s := range c.Subsets() {
		fmt.Println(s.Label(), s.Indices())
	}
	// Output:
	// t1 TCCAAGG
	// t2 TGCAAGA
	// locus001 [0 1 2 3 4]
	// its [5 6]
}

// ExampleMatrix_ExportIndices keeps the first and third codon positions.
func ExampleMatrix_ExportIndices() {
	m, _ := charmatrix.FromDict(charmatrix.DNA, map[string]string{"human": "ATGGCC", "mouse": "ATGGCT"})
	e, _ := m.ExportIndices([]int{0, 2, 3, 5})
	for _, it := range e.Items() {
		fmt.Println(it.Taxon.Label(), it.Sequence)
	}
	// Output:
	// human AGGC
	// mouse AGGT
}

// ExampleMatrix_Fill pads ragged sequences with gaps.
func ExampleMatrix_Fill() {
	m, _ := charmatrix.FromDict(charmatrix.DNA, map[string]string{"a": "ACGTAC", "b": "AC"})
	gap, _ := statealphabet.DNA.Gap()
	size, _ := m.Fill(charmatrix.StateCell(gap))
	fmt.Println(size)
	for _, it := range m.Items() {
		fmt.Println(it.Taxon.Label(), it.Sequence)
	}
	// Output:
	// 6
	// a ACGTAC
	// b AC----
}

// ExampleNew selects a variant by tag.
func ExampleNew() {
	m, err := charmatrix.New("rna")
	fmt.Println(m.TypeName(), err)
	_, err = charmatrix.New("dmn")
	fmt.Println(err != nil)
	// Output:
	// RnaCharacterMatrix <nil>
	// true
}
