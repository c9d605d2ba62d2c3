// SPDX-License-Identifier: MIT

package charmatrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/taxon"
)

// Key addresses a taxon of a matrix. The set of implementations is closed:
// ByIndex, ByLabel and ByTaxon.
type Key interface {
	resolve(ns *taxon.Namespace) (*taxon.Taxon, error)
}

// ByIndex addresses the taxon at a position of the matrix namespace.
type ByIndex int

func (k ByIndex) resolve(ns *taxon.Namespace) (*taxon.Taxon, error) {
	t, err := ns.At(int(k))
	if err != nil {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "taxon index %d (namespace size %d)", int(k), ns.Len())
	}

	return t, nil
}

// ByLabel addresses a taxon by label, under the namespace case policy.
type ByLabel string

func (k ByLabel) resolve(ns *taxon.Namespace) (*taxon.Taxon, error) {
	t, ok := ns.GetTaxon(string(k))
	if !ok {
		return nil, errors.Wrapf(ErrTaxonNotFound, "label %q", string(k))
	}

	return t, nil
}

type taxonKey struct{ t *taxon.Taxon }

// ByTaxon addresses a taxon directly. Namespace membership is not checked
// at resolution time.
func ByTaxon(t *taxon.Taxon) Key { return taxonKey{t: t} }

func (k taxonKey) resolve(*taxon.Namespace) (*taxon.Taxon, error) {
	if k.t == nil {
		return nil, errors.Wrap(taxon.ErrNilTaxon, "ByTaxon(nil)")
	}

	return k.t, nil
}
