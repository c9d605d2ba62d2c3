// SPDX-License-Identifier: MIT
//
// File: concat.go
// Role: parallel multi-source loading and concatenation.
// Concurrency:
//   - Each source is parsed on its own goroutine into a private namespace;
//     namespaces and matrices are never shared between goroutines.
//   - Results are re-homed onto the shared namespace sequentially, in source
//     order, so taxon order in the shared namespace is deterministic.

package dataio

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/taxon"
	"golang.org/x/sync/errgroup"
)

// Source is one named input. Name labels the parsed matrix when the stream
// itself carries no label.
type Source struct {
	Name   string
	Reader io.Reader
}

// ReadSources parses one matrix from every source and returns them keyed on
// ns (a new namespace when nil), in source order. opts are passed to
// charmatrix.ParseFromStream; any WithNamespace among them is ignored.
func ReadSources(ctx context.Context, ns *taxon.Namespace, sources []Source, schema string, dt charmatrix.DataType, opts ...charmatrix.Option) ([]*charmatrix.Matrix, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	return readParallel(ctx, ns, len(sources), func(i int) (*charmatrix.Matrix, error) {
		return parseOne(sources[i].Reader, sources[i].Name, schema, dt, opts)
	})
}

// ReadPaths is ReadSources over files; each matrix defaults to the file
// base name (extension stripped) as its label.
func ReadPaths(ctx context.Context, ns *taxon.Namespace, paths []string, schema string, dt charmatrix.DataType, opts ...charmatrix.Option) ([]*charmatrix.Matrix, error) {
	if len(paths) == 0 {
		return nil, ErrNoSources
	}

	return readParallel(ctx, ns, len(paths), func(i int) (*charmatrix.Matrix, error) {
		f, err := os.Open(paths[i])
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", paths[i])
		}
		defer f.Close()
		base := filepath.Base(paths[i])

		return parseOne(f, strings.TrimSuffix(base, filepath.Ext(base)), schema, dt, opts)
	})
}

// ConcatenateSources reads every source and concatenates the matrices in
// source order; see charmatrix.Concatenate for the shape requirements.
func ConcatenateSources(ctx context.Context, ns *taxon.Namespace, sources []Source, schema string, dt charmatrix.DataType, opts ...charmatrix.Option) (*charmatrix.Matrix, error) {
	ms, err := ReadSources(ctx, ns, sources, schema, dt, opts...)
	if err != nil {
		return nil, err
	}

	return charmatrix.Concatenate(ms)
}

// ConcatenatePaths reads every file and concatenates the matrices in path
// order. Subsets of the result are named after the files.
func ConcatenatePaths(ctx context.Context, ns *taxon.Namespace, paths []string, schema string, dt charmatrix.DataType, opts ...charmatrix.Option) (*charmatrix.Matrix, error) {
	ms, err := ReadPaths(ctx, ns, paths, schema, dt, opts...)
	if err != nil {
		return nil, err
	}

	return charmatrix.Concatenate(ms)
}

func parseOne(r io.Reader, name, schema string, dt charmatrix.DataType, opts []charmatrix.Option) (*charmatrix.Matrix, error) {
	local := append(append([]charmatrix.Option(nil), opts...), charmatrix.WithNamespace(taxon.NewNamespace()))
	m, err := charmatrix.ParseFromStream(r, schema, dt, local...)
	if err != nil {
		return nil, errors.Wrapf(err, "source %q", name)
	}
	if m.Label() == "" {
		m.SetLabel(name)
	}

	return m, nil
}

// readParallel runs parse for 0..n-1 with bounded parallelism, then re-homes
// every result onto ns in index order.
func readParallel(ctx context.Context, ns *taxon.Namespace, n int, parse func(i int) (*charmatrix.Matrix, error)) ([]*charmatrix.Matrix, error) {
	parsed := make([]*charmatrix.Matrix, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := parse(i)
			if err != nil {
				return err
			}
			parsed[i] = m

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ns == nil {
		ns = taxon.NewNamespace()
	}
	out := make([]*charmatrix.Matrix, n)
	for i, m := range parsed {
		moved, err := charmatrix.NewFrom(m, charmatrix.WithNamespace(ns))
		if err != nil {
			return nil, err
		}
		out[i] = moved
	}

	return out, nil
}
