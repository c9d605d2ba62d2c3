// SPDX-License-Identifier: MIT

package main

import "github.com/cockroachdb/errors"

var (
	// errNoSelection is returned by export when neither --columns nor --subset is given.
	errNoSelection = errors.New("phylochar: nothing to export")

	// errBothSelections is returned by export when --columns and --subset are combined.
	errBothSelections = errors.New("phylochar: --columns and --subset are exclusive")

	// errBadFill is returned by pad when --fill cannot be turned into a cell.
	errBadFill = errors.New("phylochar: invalid fill value")
)
