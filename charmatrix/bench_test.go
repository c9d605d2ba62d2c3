// SPDX-License-Identifier: MIT
// Package charmatrix_test provides benchmarks for the copy, merge and export
// paths, using deterministic random DNA.

package charmatrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/taxon"
)

// benchShapes are (taxa, columns) pairs.
var benchShapes = [][2]int{{16, 1000}, {128, 1000}, {128, 10000}}

// sinks to defeat dead-code elimination
var (
	sinkM *charmatrix.Matrix
	sinkE error
)

func randomDNA(b *testing.B, ns *taxon.Namespace, taxa, cols int, seed int64) *charmatrix.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	const symbols = "ACGT"
	rows := make(map[string]string, taxa)
	buf := make([]byte, cols)
	for i := 0; i < taxa; i++ {
		for j := range buf {
			buf[j] = symbols[rng.Intn(len(symbols))]
		}
		rows[fmt.Sprintf("t%04d", i)] = string(buf)
	}
	m, err := charmatrix.FromDict(charmatrix.DNA, rows, charmatrix.WithNamespace(ns))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkDeepCopy(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("taxa=%d/cols=%d", sh[0], sh[1]), func(b *testing.B) {
			m := randomDNA(b, taxon.NewNamespace(), sh[0], sh[1], 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = m.DeepCopy()
			}
		})
	}
}

func BenchmarkConcatenate(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("taxa=%d/cols=%d", sh[0], sh[1]), func(b *testing.B) {
			ns := taxon.NewNamespace()
			parts := []*charmatrix.Matrix{
				randomDNA(b, ns, sh[0], sh[1], 1),
				randomDNA(b, ns, sh[0], sh[1], 2),
				randomDNA(b, ns, sh[0], sh[1], 3),
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, sinkE = charmatrix.Concatenate(parts)
				if sinkE != nil {
					b.Fatal(sinkE)
				}
			}
		})
	}
}

func BenchmarkExportIndices(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("taxa=%d/cols=%d", sh[0], sh[1]), func(b *testing.B) {
			m := randomDNA(b, taxon.NewNamespace(), sh[0], sh[1], 4242)
			every3rd := make([]int, 0, sh[1]/3+1)
			for c := 0; c < sh[1]; c += 3 {
				every3rd = append(every3rd, c)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, sinkE = m.ExportIndices(every3rd)
				if sinkE != nil {
					b.Fatal(sinkE)
				}
			}
		})
	}
}
