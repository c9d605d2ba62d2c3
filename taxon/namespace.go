// SPDX-License-Identifier: MIT

package taxon

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/katalvlaran/phylochar/annotation"
	"golang.org/x/text/cases"
)

// DefaultCaseSensitive is the label matching policy of a new Namespace.
const DefaultCaseSensitive = false

// Option configures a Namespace at construction.
type Option func(*Namespace)

// WithLabel names the namespace.
func WithLabel(label string) Option {
	return func(ns *Namespace) { ns.label = label }
}

// WithCaseSensitive sets the namespace label matching policy used by GetTaxon.
func WithCaseSensitive(on bool) Option {
	return func(ns *Namespace) { ns.caseSensitive = on }
}

// WithTaxa pre-populates the namespace with one new taxon per label, in order.
func WithTaxa(labels ...string) Option {
	return func(ns *Namespace) {
		for _, l := range labels {
			ns.append(New(l))
		}
	}
}

// Namespace is an ordered set of unique taxa.
type Namespace struct {
	label         string
	oid           string
	caseSensitive bool
	annotations   *annotation.Set

	taxa  []*Taxon
	index map[*Taxon]int
}

// NewNamespace creates an empty namespace.
// Complexity: O(len(opts)).
func NewNamespace(opts ...Option) *Namespace {
	ns := &Namespace{
		oid:           uuid.NewString(),
		caseSensitive: DefaultCaseSensitive,
		annotations:   annotation.NewSet(),
		index:         make(map[*Taxon]int),
	}
	for _, opt := range opts {
		opt(ns)
	}

	return ns
}

// Label returns the namespace label.
func (ns *Namespace) Label() string { return ns.label }

// SetLabel renames the namespace.
func (ns *Namespace) SetLabel(label string) { ns.label = label }

// OID is a process-unique object id.
func (ns *Namespace) OID() string { return ns.oid }

// CaseSensitive reports the namespace label policy.
func (ns *Namespace) CaseSensitive() bool { return ns.caseSensitive }

// Annotations returns the namespace metadata bag.
func (ns *Namespace) Annotations() *annotation.Set { return ns.annotations }

// Len returns the number of taxa.
func (ns *Namespace) Len() int { return len(ns.taxa) }

// At returns the taxon at position i.
func (ns *Namespace) At(i int) (*Taxon, error) {
	if i < 0 || i >= len(ns.taxa) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "At(%d) with %d taxa", i, len(ns.taxa))
	}

	return ns.taxa[i], nil
}

// Taxa returns the taxa in namespace order. The slice is a copy.
func (ns *Namespace) Taxa() []*Taxon {
	out := make([]*Taxon, len(ns.taxa))
	copy(out, ns.taxa)

	return out
}

// Labels returns the taxon labels in namespace order.
func (ns *Namespace) Labels() []string {
	out := make([]string, len(ns.taxa))
	for i, t := range ns.taxa {
		out[i] = t.label
	}

	return out
}

// Has reports membership by identity.
// Complexity: O(1).
func (ns *Namespace) Has(t *Taxon) bool {
	_, ok := ns.index[t]

	return ok
}

// IndexOf returns the position of t, or -1.
func (ns *Namespace) IndexOf(t *Taxon) int {
	if i, ok := ns.index[t]; ok {
		return i
	}

	return -1
}

// GetTaxon finds the first taxon labeled label using the namespace case policy.
func (ns *Namespace) GetTaxon(label string) (*Taxon, bool) {
	return ns.FindTaxon(label, ns.caseSensitive)
}

// FindTaxon finds the first taxon labeled label with an explicit case policy.
// Complexity: O(n).
func (ns *Namespace) FindTaxon(label string, caseSensitive bool) (*Taxon, bool) {
	if caseSensitive {
		for _, t := range ns.taxa {
			if t.label == label {
				return t, true
			}
		}

		return nil, false
	}
	fold := cases.Fold()
	want := fold.String(label)
	for _, t := range ns.taxa {
		if fold.String(t.label) == want {
			return t, true
		}
	}

	return nil, false
}

// AddTaxon appends t if it is not already a member (idempotent).
func (ns *Namespace) AddTaxon(t *Taxon) error {
	if t == nil {
		return ErrNilTaxon
	}
	if ns.Has(t) {
		return nil
	}
	ns.append(t)

	return nil
}

// NewTaxon unconditionally creates and appends a taxon labeled label.
func (ns *Namespace) NewTaxon(label string) *Taxon {
	t := New(label)
	ns.append(t)

	return t
}

// RequireTaxon returns the first taxon matching label, creating it if absent.
func (ns *Namespace) RequireTaxon(label string, caseSensitive bool) *Taxon {
	if t, ok := ns.FindTaxon(label, caseSensitive); ok {
		return t
	}

	return ns.NewTaxon(label)
}

// RemoveTaxon removes t, preserving the order of the remaining taxa.
// Complexity: O(n).
func (ns *Namespace) RemoveTaxon(t *Taxon) error {
	i, ok := ns.index[t]
	if !ok {
		return errors.Wrapf(ErrTaxonNotFound, "RemoveTaxon(%s)", t)
	}
	ns.taxa = append(ns.taxa[:i], ns.taxa[i+1:]...)
	delete(ns.index, t)
	for j := i; j < len(ns.taxa); j++ {
		ns.index[ns.taxa[j]] = j
	}

	return nil
}

func (ns *Namespace) append(t *Taxon) {
	ns.index[t] = len(ns.taxa)
	ns.taxa = append(ns.taxa, t)
}

// Clone duplicates the namespace and all of its taxa.
// The returned Mapping maps every original taxon to its counterpart.
// Complexity: O(n).
func (ns *Namespace) Clone() (*Namespace, Mapping) {
	out := NewNamespace(WithLabel(ns.label), WithCaseSensitive(ns.caseSensitive))
	out.annotations = ns.annotations.Clone()
	mapping := make(Mapping, len(ns.taxa))
	for _, t := range ns.taxa {
		c := t.clone()
		out.append(c)
		mapping[t] = c
	}

	return out, mapping
}
