// SPDX-License-Identifier: MIT

// Package charmatrix: functional configuration.
// This file defines:
//   - Option / options (matrix construction, clone-from, parsing, dict population),
//   - FillOption (padding policy),
//   - MergeOption (bulk merge copy policy),
//   - documented defaults (single source of truth).
//
// Option constructors panic only on nonsensical values (programmer error);
// operations themselves never panic on user input.

package charmatrix

import (
	"github.com/katalvlaran/phylochar/statealphabet"
	"github.com/katalvlaran/phylochar/taxon"
	"go.uber.org/zap"
)

// ---------- Defaults ----------

const (
	// DefaultCaseSensitiveLabels is the label policy of FromDict / FromEntries.
	DefaultCaseSensitiveLabels = false

	// DefaultMatrixOffset selects the first matrix produced by a reader.
	DefaultMatrixOffset = 0

	// DefaultFillAppend pads at the end of each sequence.
	DefaultFillAppend = true

	// DefaultShareSequences makes bulk merges deep-copy source sequences.
	DefaultShareSequences = false
)

// ---------- Panic messages ----------

const (
	panicNilNamespace   = "charmatrix: WithNamespace(nil)"
	panicNilLogger      = "charmatrix: WithLogger(nil)"
	panicNilAlphabet    = "charmatrix: WithDefaultAlphabet(nil)"
	panicNegativeOffset = "charmatrix: WithMatrixOffset: offset must be >= 0"
	panicNegativeSize   = "charmatrix: FillSize: size must be >= 0"
)

// ---------- Matrix options ----------

// Option configures construction, clone-from, parsing and dict population.
type Option func(*options)

type options struct {
	label    string
	labelSet bool

	namespace *taxon.Namespace
	logger    *zap.Logger
	alphabet  *statealphabet.Alphabet

	caseSensitive bool
	matrixOffset  int
	schemaOptions map[string]any
}

func gatherOptions(opts []Option) options {
	o := options{
		caseSensitive: DefaultCaseSensitiveLabels,
		matrixOffset:  DefaultMatrixOffset,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLabel sets the matrix label (overrides the source label in NewFrom).
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
		o.labelSet = true
	}
}

// WithNamespace binds the matrix to ns instead of a fresh namespace.
// In NewFrom it selects the target namespace of the taxon remapping.
func WithNamespace(ns *taxon.Namespace) Option {
	if ns == nil {
		panic(panicNilNamespace)
	}

	return func(o *options) { o.namespace = ns }
}

// WithLogger attaches a zap logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithDefaultAlphabet registers a and nominates it as the default alphabet.
// Ignored by continuous matrices.
func WithDefaultAlphabet(a *statealphabet.Alphabet) Option {
	if a == nil {
		panic(panicNilAlphabet)
	}

	return func(o *options) { o.alphabet = a }
}

// WithCaseSensitiveLabels sets the label policy used to resolve dict keys to taxa.
func WithCaseSensitiveLabels(on bool) Option {
	return func(o *options) { o.caseSensitive = on }
}

// WithMatrixOffset selects which of the matrices produced by a reader is returned.
func WithMatrixOffset(offset int) Option {
	if offset < 0 {
		panic(panicNegativeOffset)
	}

	return func(o *options) { o.matrixOffset = offset }
}

// WithSchemaOption passes a schema-specific setting through to the reader.
func WithSchemaOption(key string, value any) Option {
	return func(o *options) {
		if o.schemaOptions == nil {
			o.schemaOptions = make(map[string]any)
		}
		o.schemaOptions[key] = value
	}
}

// ---------- Fill options ----------

// FillOption configures Fill and Pack.
type FillOption func(*fillOptions)

type fillOptions struct {
	size    int // <0 ⇒ MaxSequenceSize()
	prepend bool
}

// FillSize pads up to size instead of the longest sequence length.
func FillSize(size int) FillOption {
	if size < 0 {
		panic(panicNegativeSize)
	}

	return func(f *fillOptions) { f.size = size }
}

// FillPrepend inserts padding at the front of each sequence.
func FillPrepend() FillOption {
	return func(f *fillOptions) { f.prepend = true }
}

// ---------- Merge options ----------

// MergeOption configures the bulk merge operations.
type MergeOption func(*mergeOptions)

type mergeOptions struct {
	share bool
}

// ShareSequences makes bulk merges insert the source *Sequence itself instead
// of an independent copy. Cells edited through either matrix are then visible
// in both.
func ShareSequences() MergeOption {
	return func(m *mergeOptions) { m.share = true }
}

func gatherMergeOptions(opts []MergeOption) mergeOptions {
	m := mergeOptions{share: DefaultShareSequences}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}
