// SPDX-License-Identifier: MIT

package charmatrix

import (
	"sort"

	"github.com/katalvlaran/phylochar/annotation"
	"golang.org/x/text/cases"
)

// Subset is a named, unordered set of 0-based column indices.
// Indices are not validated against sequence length until they are used.
type Subset struct {
	label       string
	indices     map[int]struct{}
	annotations *annotation.Set
}

// NewSubset creates a subset; duplicate indices collapse.
func NewSubset(label string, indices ...int) *Subset {
	s := &Subset{label: label, indices: make(map[int]struct{}, len(indices)), annotations: annotation.NewSet()}
	for _, i := range indices {
		s.indices[i] = struct{}{}
	}

	return s
}

// Label returns the subset label.
func (s *Subset) Label() string { return s.label }

// Annotations returns the subset metadata bag.
func (s *Subset) Annotations() *annotation.Set { return s.annotations }

// Len returns the number of distinct indices.
func (s *Subset) Len() int { return len(s.indices) }

// Has reports membership of column i.
func (s *Subset) Has(i int) bool {
	_, ok := s.indices[i]

	return ok
}

// Add inserts column indices.
func (s *Subset) Add(indices ...int) {
	for _, i := range indices {
		s.indices[i] = struct{}{}
	}
}

// Indices returns the members in ascending order.
func (s *Subset) Indices() []int {
	out := make([]int, 0, len(s.indices))
	for i := range s.indices {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// Clone returns an independent copy.
func (s *Subset) Clone() *Subset { return s.clone(newCopyMemo()) }

func (s *Subset) clone(memo *copyMemo) *Subset {
	if c, ok := memo.subsets[s]; ok {
		return c
	}
	c := NewSubset(s.label)
	for i := range s.indices {
		c.indices[i] = struct{}{}
	}
	c.annotations = s.annotations.Clone()
	memo.subsets[s] = c

	return c
}

// subsetIndex is an insertion-ordered, case-insensitive label → subset map.
type subsetIndex struct {
	order  []*Subset
	byFold map[string]*Subset
}

func newSubsetIndex() *subsetIndex {
	return &subsetIndex{byFold: make(map[string]*Subset)}
}

func foldLabel(label string) string { return cases.Fold().String(label) }

func (x *subsetIndex) get(label string) (*Subset, bool) {
	s, ok := x.byFold[foldLabel(label)]

	return s, ok
}

func (x *subsetIndex) has(label string) bool {
	_, ok := x.byFold[foldLabel(label)]

	return ok
}

// put assumes the label is free.
func (x *subsetIndex) put(s *Subset) {
	x.byFold[foldLabel(s.label)] = s
	x.order = append(x.order, s)
}

func (x *subsetIndex) remove(label string) bool {
	k := foldLabel(label)
	s, ok := x.byFold[k]
	if !ok {
		return false
	}
	delete(x.byFold, k)
	for i, o := range x.order {
		if o == s {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}

	return true
}

func (x *subsetIndex) list() []*Subset {
	out := make([]*Subset, len(x.order))
	copy(out, x.order)

	return out
}

func (x *subsetIndex) len() int { return len(x.order) }
