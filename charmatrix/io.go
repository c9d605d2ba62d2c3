// SPDX-License-Identifier: MIT
//
// File: io.go
// Role: the schema registry binding reader/writer collaborators to names,
// and the stream entry points ParseFromStream / Matrix.Write.
// Concurrency:
//   - The registry is safe for concurrent use; matrices are not.

package charmatrix

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/taxon"
	"go.uber.org/zap"
)

// ReadRequest is what a Reader is asked to produce.
type ReadRequest struct {
	// Namespace receives every taxon the reader encounters. Never nil.
	Namespace *taxon.Namespace
	// DataType is the variant the caller expects.
	DataType DataType
	// Options carries schema-specific settings (WithSchemaOption).
	Options map[string]any
	// Logger is never nil.
	Logger *zap.Logger
}

// Reader parses a stream into one or more matrices.
type Reader interface {
	ReadMatrices(r io.Reader, req ReadRequest) ([]*Matrix, error)
}

// Writer serializes one matrix.
type Writer interface {
	WriteMatrix(w io.Writer, m *Matrix) error
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(r io.Reader, req ReadRequest) ([]*Matrix, error)

// ReadMatrices implements Reader.
func (f ReaderFunc) ReadMatrices(r io.Reader, req ReadRequest) ([]*Matrix, error) { return f(r, req) }

// WriterFunc adapts a function to Writer.
type WriterFunc func(w io.Writer, m *Matrix) error

// WriteMatrix implements Writer.
func (f WriterFunc) WriteMatrix(w io.Writer, m *Matrix) error { return f(w, m) }

var registry = struct {
	sync.RWMutex
	readers map[string]Reader
	writers map[string]Writer
}{
	readers: make(map[string]Reader),
	writers: make(map[string]Writer),
}

func schemaKey(schema string) string { return strings.ToLower(strings.TrimSpace(schema)) }

// RegisterReader binds r to schema, replacing any previous binding.
func RegisterReader(schema string, r Reader) {
	if r == nil {
		panic("charmatrix: RegisterReader(nil)")
	}
	registry.Lock()
	defer registry.Unlock()
	registry.readers[schemaKey(schema)] = r
}

// RegisterWriter binds w to schema, replacing any previous binding.
func RegisterWriter(schema string, w Writer) {
	if w == nil {
		panic("charmatrix: RegisterWriter(nil)")
	}
	registry.Lock()
	defer registry.Unlock()
	registry.writers[schemaKey(schema)] = w
}

func lookupReader(schema string) (Reader, error) {
	registry.RLock()
	defer registry.RUnlock()
	r, ok := registry.readers[schemaKey(schema)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSchema, "reader %q (known: %s)", schema, strings.Join(sortedKeys(registry.readers), ", "))
	}

	return r, nil
}

func lookupWriter(schema string) (Writer, error) {
	registry.RLock()
	defer registry.RUnlock()
	w, ok := registry.writers[schemaKey(schema)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSchema, "writer %q (known: %s)", schema, strings.Join(sortedKeys(registry.writers), ", "))
	}

	return w, nil
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Schemas returns the registered reader and writer schema names.
func Schemas() (readers, writers []string) {
	registry.RLock()
	defer registry.RUnlock()

	return sortedKeys(registry.readers), sortedKeys(registry.writers)
}

// ParseFromStream reads r with the reader registered for schema and returns
// the matrix at WithMatrixOffset (default 0), which must be of data type dt.
//
// WithNamespace supplies the namespace the reader populates; WithLabel
// relabels the result; WithLogger is handed to the reader.
//
// Errors:
//   - ErrUnknownSchema: no reader for schema.
//   - ErrNoData: the reader produced nothing.
//   - ErrIndexOutOfRange: the offset exceeds the matrices produced.
//   - ErrDataTypeMismatch: the selected matrix is not of data type dt.
func ParseFromStream(r io.Reader, schema string, dt DataType, opts ...Option) (*Matrix, error) {
	rd, err := lookupReader(schema)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	req := ReadRequest{Namespace: o.namespace, DataType: dt, Options: o.schemaOptions, Logger: o.logger}
	if req.Namespace == nil {
		req.Namespace = taxon.NewNamespace()
	}
	if req.Logger == nil {
		req.Logger = zap.NewNop()
	}
	if req.Options == nil {
		req.Options = map[string]any{}
	}
	ms, err := rd.ReadMatrices(r, req)
	if err != nil {
		return nil, errors.Wrapf(err, "schema %q", schema)
	}
	if len(ms) == 0 {
		return nil, errors.Wrapf(ErrNoData, "schema %q", schema)
	}
	if o.matrixOffset >= len(ms) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "matrix offset %d, %d matrices read", o.matrixOffset, len(ms))
	}
	m := ms[o.matrixOffset]
	if m.DataType() != dt {
		return nil, errors.Wrapf(ErrDataTypeMismatch, "matrix %d is %s, expected %s", o.matrixOffset, m.DataType(), dt)
	}
	if o.labelSet {
		m.label = o.label
	}
	req.Logger.Debug("parsed matrix",
		zap.String(FieldSchema, schemaKey(schema)),
		zap.String(FieldMatrix, m.label),
		zap.String(FieldDataType, string(dt)),
		zap.Int(FieldSourceIndex, o.matrixOffset),
		zap.Int(FieldTaxa, m.Len()))

	return m, nil
}

// Write serializes m with the writer registered for schema.
func (m *Matrix) Write(w io.Writer, schema string) error {
	wr, err := lookupWriter(schema)
	if err != nil {
		return err
	}
	if err := wr.WriteMatrix(w, m); err != nil {
		return errors.Wrapf(err, "schema %q", schema)
	}

	return nil
}
