// SPDX-License-Identifier: MIT

package charmatrix

// Structured log field names used by matrix operations.
const (
	FieldMatrix      = "matrix"
	FieldDataType    = "data_type"
	FieldOperation   = "operation"
	FieldTaxa        = "taxa"
	FieldColumns     = "columns"
	FieldSourceIndex = "source_index"
	FieldAlphabet    = "alphabet"
	FieldSchema      = "schema"
)
