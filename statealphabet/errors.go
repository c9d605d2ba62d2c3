// SPDX-License-Identifier: MIT

package statealphabet

import "github.com/cockroachdb/errors"

var (
	// ErrSymbolNotFound is returned by Lookup when no state carries the symbol.
	ErrSymbolNotFound = errors.New("statealphabet: symbol not found")

	// ErrDuplicateSymbol is returned when a symbol is registered twice.
	ErrDuplicateSymbol = errors.New("statealphabet: duplicate symbol")

	// ErrEmptySymbol is returned when a state is registered with an empty symbol.
	ErrEmptySymbol = errors.New("statealphabet: empty symbol")

	// ErrFrozen is returned when a frozen (built-in) alphabet is mutated.
	ErrFrozen = errors.New("statealphabet: alphabet is frozen")
)
