// SPDX-License-Identifier: MIT

package taxon

// Mapping maps source taxa to their counterparts in another namespace.
// It is the explicit handle-remapping table carried by copy operations.
type Mapping map[*Taxon]*Taxon

// Identity returns a mapping of every taxon in ns to itself.
func Identity(ns *Namespace) Mapping {
	m := make(Mapping, ns.Len())
	for _, t := range ns.taxa {
		m[t] = t
	}

	return m
}

// ByLabel maps every taxon of src onto target, resolving by label and
// creating counterparts in target when missing (RequireTaxon semantics).
// When src and target are the same namespace the identity mapping is returned.
func ByLabel(src, target *Namespace, caseSensitive bool) Mapping {
	if src == target {
		return Identity(src)
	}
	m := make(Mapping, src.Len())
	for _, t := range src.taxa {
		m[t] = target.RequireTaxon(t.label, caseSensitive)
	}

	return m
}

// Resolve returns the counterpart of t, or t itself when unmapped.
func (m Mapping) Resolve(t *Taxon) *Taxon {
	if c, ok := m[t]; ok {
		return c
	}

	return t
}
