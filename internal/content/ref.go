package content

import (
	"strconv"
	"strings"
)

// RefKind tags what an editable item points at.
type RefKind string

const (
	// RefRow is a whole row edited through its primary media column.
	RefRow RefKind = "row"
	// RefField is one column of a row that yields several items.
	RefField RefKind = "field"
	// RefSynthetic is derived content with no backing row.
	RefSynthetic RefKind = "synthetic"
)

// Ref identifies the source of an editable item without string parsing.
type Ref struct {
	Kind  RefKind `json:"kind"`
	Table string  `json:"table,omitempty"`
	RowID int64   `json:"rowId,omitempty"`
	Field string  `json:"field,omitempty"`
	Name  string  `json:"name,omitempty"`
}

func RowRef(table string, id int64) Ref {
	return Ref{Kind: RefRow, Table: table, RowID: id}
}

func FieldRef(table string, id int64, field string) Ref {
	return Ref{Kind: RefField, Table: table, RowID: id, Field: field}
}

func SyntheticRef(name string) Ref {
	return Ref{Kind: RefSynthetic, Name: name}
}

// String renders the ref as a list-unique id. Row and field refs are table
// qualified so rows with equal ids in different tables never collide.
func (r Ref) String() string {
	switch r.Kind {
	case RefRow:
		return r.Table + "-" + strconv.FormatInt(r.RowID, 10)
	case RefField:
		return strings.Join([]string{r.Table, strconv.FormatInt(r.RowID, 10), r.Field}, "-")
	default:
		return r.Name
	}
}
