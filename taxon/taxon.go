// SPDX-License-Identifier: MIT

package taxon

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/phylochar/annotation"
)

// Taxon is an operational taxonomic unit identity.
type Taxon struct {
	label       string
	oid         string
	annotations *annotation.Set
}

// New creates a free-standing taxon; add it to a Namespace to use it in a matrix.
func New(label string) *Taxon {
	return &Taxon{label: label, oid: uuid.NewString(), annotations: annotation.NewSet()}
}

// Label returns the taxon label.
func (t *Taxon) Label() string { return t.label }

// SetLabel renames the taxon. Identity is unaffected.
func (t *Taxon) SetLabel(label string) { t.label = label }

// OID is a process-unique object id, stable for the life of the taxon.
func (t *Taxon) OID() string { return t.oid }

// Annotations returns the taxon's metadata bag.
func (t *Taxon) Annotations() *annotation.Set { return t.annotations }

// String implements fmt.Stringer.
func (t *Taxon) String() string {
	if t == nil {
		return "<nil>"
	}

	return "'" + t.label + "'"
}

// clone copies label and annotations under a fresh oid.
func (t *Taxon) clone() *Taxon {
	return &Taxon{label: t.label, oid: uuid.NewString(), annotations: t.annotations.Clone()}
}
