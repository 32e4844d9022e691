// Code generated by ent, DO NOT EDIT.

package rowvalue

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the rowvalue type in the database.
	Label = "row_value"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRowID holds the string denoting the row_id field in the database.
	FieldRowID = "row_id"
	// FieldColumnID holds the string denoting the column_id field in the database.
	FieldColumnID = "column_id"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// EdgeRow holds the string denoting the row edge name in mutations.
	EdgeRow = "row"
	// EdgeColumn holds the string denoting the column edge name in mutations.
	EdgeColumn = "column"
	// Table holds the table name of the rowvalue in the database.
	Table = "row_values"
	// RowTable is the table that holds the row relation/edge.
	RowTable = "row_values"
	// RowInverseTable is the table name for the DatasetRow entity.
	// It exists in this package in order to avoid circular dependency with the "datasetrow" package.
	RowInverseTable = "dataset_rows"
	// RowColumn is the table column denoting the row relation/edge.
	RowColumn = "row_id"
	// ColumnTable is the table that holds the column relation/edge.
	ColumnTable = "row_values"
	// ColumnInverseTable is the table name for the DatasetColumn entity.
	// It exists in this package in order to avoid circular dependency with the "datasetcolumn" package.
	ColumnInverseTable = "dataset_columns"
	// ColumnColumn is the table column denoting the column relation/edge.
	ColumnColumn = "column_id"
)

// Columns holds all SQL columns for rowvalue fields.
var Columns = []string{
	FieldID,
	FieldRowID,
	FieldColumnID,
	FieldValue,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RowValue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRowID orders the results by the row_id field.
func ByRowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowID, opts...).ToFunc()
}

// ByColumnID orders the results by the column_id field.
func ByColumnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnID, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByRowField orders the results by row field.
func ByRowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRowStep(), sql.OrderByField(field, opts...))
	}
}

// ByColumnField orders the results by column field.
func ByColumnField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newColumnStep(), sql.OrderByField(field, opts...))
	}
}
func newRowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RowInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RowTable, RowColumn),
	)
}
func newColumnStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ColumnInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ColumnTable, ColumnColumn),
	)
}
