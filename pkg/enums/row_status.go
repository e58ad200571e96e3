package enums

import "fmt"

// RowStatus is the soft-delete lifecycle flag shared by every catalog table.
// Uniqueness and existence checks only ever consider active rows, so a name
// or sequence freed by a retirement can be reused.
type RowStatus int8

const (
	RowStatusActive  RowStatus = 0
	RowStatusRetired RowStatus = 1
)

func (s RowStatus) IsValid() bool {
	return s == RowStatusActive || s == RowStatusRetired
}

func (s RowStatus) String() string {
	switch s {
	case RowStatusActive:
		return "active"
	case RowStatusRetired:
		return "retired"
	default:
		return fmt.Sprintf("unknown(%d)", int8(s))
	}
}
