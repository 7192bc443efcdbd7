package types

import "fmt"

// Patch describes a single field mutation within a row write.
type Patch struct {
	Field string
	Value any
}

// PatchList is an ordered sequence of field mutations. One patch list drives
// a single-row insert or update against any of the standard tables.
type PatchList []Patch

// Validate checks every patch field against the declared column set of table.
// Returns ErrTableUnknown for an unrecognized table and ErrUnknownField
// (wrapped with the offending field name) for a field outside the schema.
func (p PatchList) Validate(table string) error {
	if !ValidTable(table) {
		return ErrTableUnknown
	}
	if len(p) == 0 {
		return ErrEmptyPatchList
	}
	for _, patch := range p {
		if !ValidColumn(table, patch.Field) {
			return fmt.Errorf("field %q: %w", patch.Field, ErrUnknownField)
		}
	}
	return nil
}

// Has reports whether the patch list contains the given field.
func (p PatchList) Has(field string) bool {
	for _, patch := range p {
		if patch.Field == field {
			return true
		}
	}
	return false
}
