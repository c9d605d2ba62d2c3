// SPDX-License-Identifier: MIT

package charmatrix

import (
	"fmt"
	"strings"
)

// Description renders a human-readable summary of m.
//
//	depth < 0   ""
//	depth 0     type name, oid and label
//	depth 1     + sequence count
//	depth >= 2  + namespace taxa and per-taxon character counts
func (m *Matrix) Description(depth int) string {
	if depth < 0 {
		return ""
	}
	var b strings.Builder
	if m.label == "" {
		fmt.Fprintf(&b, "%s (%s)", m.v.name, m.oid)
	} else {
		fmt.Fprintf(&b, "%s (%s: '%s')", m.v.name, m.oid, m.label)
	}
	if depth < 1 {
		return b.String()
	}
	fmt.Fprintf(&b, ":  %d Sequences", m.Len())
	if depth < 2 {
		return b.String()
	}
	fmt.Fprintf(&b, "\n    [Taxon Set]\n        TaxonNamespace (%s", m.ns.OID())
	if m.ns.Label() != "" {
		fmt.Fprintf(&b, ": '%s'", m.ns.Label())
	}
	fmt.Fprintf(&b, "): %d Taxa", m.ns.Len())
	b.WriteString("\n    [Characters]\n")
	for i, t := range m.ns.Taxa() {
		n := 0
		if s, ok := m.seqs[t]; ok {
			n = s.Len()
		}
		fmt.Fprintf(&b, "        [%d] %s : %d characters\n", i, t.Label(), n)
	}

	return b.String()
}

// String implements fmt.Stringer with the depth-0 description.
func (m *Matrix) String() string { return m.Description(0) }
