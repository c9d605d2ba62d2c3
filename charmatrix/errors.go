// SPDX-License-Identifier: MIT

// Package charmatrix: sentinel error set.
// Every failure returned by this package matches exactly one of these via
// errors.Is. Context is attached with errors.Wrapf at the call site; the
// sentinel itself is never formatted.

package charmatrix

import "github.com/cockroachdb/errors"

// Identity / namespace errors.
var (
	// ErrTaxonNotInNamespace is returned when a sequence is assigned to a taxon
	// that is not a member of the matrix namespace.
	ErrTaxonNotInNamespace = errors.New("charmatrix: taxon not in namespace")

	// ErrNamespaceMismatch is returned when matrices that must share one
	// namespace reference different *taxon.Namespace objects.
	ErrNamespaceMismatch = errors.New("charmatrix: different taxon namespace references")
)

// Structural / shape errors.
var (
	// ErrShape covers unequal sequence lengths or counts during concatenation
	// and shape requirements of numeric views.
	ErrShape = errors.New("charmatrix: invalid matrix shape")
)

// Duplicate errors.
var (
	// ErrDuplicateSequence is returned by NewSequence when the taxon already has one.
	ErrDuplicateSequence = errors.New("charmatrix: sequence already exists for taxon")

	// ErrDuplicateSubset is returned when a subset label is already defined.
	ErrDuplicateSubset = errors.New("charmatrix: character subset already defined")

	// ErrMultipleSequences is returned by ReconstructNamespace when two
	// sequences collapse onto one taxon.
	ErrMultipleSequences = errors.New("charmatrix: multiple sequences for taxon")
)

// Lookup errors.
var (
	// ErrTaxonNotFound is returned when a label does not resolve to a taxon, or
	// a taxon has no sequence where one is required.
	ErrTaxonNotFound = errors.New("charmatrix: taxon not found")

	// ErrSubsetNotFound is returned when a subset label is undefined.
	ErrSubsetNotFound = errors.New("charmatrix: character subset not found")

	// ErrSymbolNotFound is returned when a symbol has no state in the target alphabet.
	ErrSymbolNotFound = errors.New("charmatrix: symbol not found in alphabet")

	// ErrIndexOutOfRange is returned for taxon or column indices outside valid bounds.
	ErrIndexOutOfRange = errors.New("charmatrix: index out of range")

	// ErrUnknownDataType is returned by the factory for unrecognized data-type tags.
	ErrUnknownDataType = errors.New("charmatrix: unrecognized data type")

	// ErrUnknownSchema is returned when no reader or writer is registered for a schema.
	ErrUnknownSchema = errors.New("charmatrix: unrecognized schema")
)

// Type / alphabet errors.
var (
	// ErrDataTypeMismatch is returned when a matrix variant differs from the expected one.
	ErrDataTypeMismatch = errors.New("charmatrix: data type mismatch")

	// ErrNoDefaultAlphabet is returned when no alphabet is registered.
	ErrNoDefaultAlphabet = errors.New("charmatrix: no state alphabets defined")

	// ErrAmbiguousDefaultAlphabet is returned when several alphabets are
	// registered and none is nominated as default.
	ErrAmbiguousDefaultAlphabet = errors.New("charmatrix: multiple state alphabets and no default")

	// ErrUnsupported marks an operation the object deliberately refuses
	// (e.g. structurally copying a CharacterType).
	ErrUnsupported = errors.New("charmatrix: unsupported operation")

	// ErrForeignState is returned when a fixed-alphabet matrix is given a cell
	// whose state belongs to none of its registered alphabets.
	ErrForeignState = errors.New("charmatrix: state not in a registered alphabet")

	// ErrCoercion is returned when raw values cannot be converted into cells.
	ErrCoercion = errors.New("charmatrix: cannot coerce values")

	// ErrNotDiscrete is returned by alphabet operations on continuous matrices.
	ErrNotDiscrete = errors.New("charmatrix: matrix is not discrete")

	// ErrNotContinuous is returned by numeric views of discrete matrices.
	ErrNotContinuous = errors.New("charmatrix: matrix is not continuous")
)

// Input errors.
var (
	// ErrNilMatrix is returned when a nil *Matrix is passed as an operand.
	ErrNilMatrix = errors.New("charmatrix: nil matrix")

	// ErrNoData is returned when a reader yields no matrices or an operation
	// receives an empty matrix list.
	ErrNoData = errors.New("charmatrix: no character data")
)
