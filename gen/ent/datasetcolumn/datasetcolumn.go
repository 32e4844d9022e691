// Code generated by ent, DO NOT EDIT.

package datasetcolumn

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the datasetcolumn type in the database.
	Label = "dataset_column"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDatasetID holds the string denoting the dataset_id field in the database.
	FieldDatasetID = "dataset_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldOriginalName holds the string denoting the original_name field in the database.
	FieldOriginalName = "original_name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldInferredType holds the string denoting the inferred_type field in the database.
	FieldInferredType = "inferred_type"
	// FieldCurrentType holds the string denoting the current_type field in the database.
	FieldCurrentType = "current_type"
	// EdgeDataset holds the string denoting the dataset edge name in mutations.
	EdgeDataset = "dataset"
	// EdgeRowValues holds the string denoting the row_values edge name in mutations.
	EdgeRowValues = "row_values"
	// Table holds the table name of the datasetcolumn in the database.
	Table = "dataset_columns"
	// DatasetTable is the table that holds the dataset relation/edge.
	DatasetTable = "dataset_columns"
	// DatasetInverseTable is the table name for the Dataset entity.
	// It exists in this package in order to avoid circular dependency with the "dataset" package.
	DatasetInverseTable = "datasets"
	// DatasetColumn is the table column denoting the dataset relation/edge.
	DatasetColumn = "dataset_id"
	// RowValuesTable is the table that holds the row_values relation/edge.
	RowValuesTable = "row_values"
	// RowValuesInverseTable is the table name for the RowValue entity.
	// It exists in this package in order to avoid circular dependency with the "rowvalue" package.
	RowValuesInverseTable = "row_values"
	// RowValuesColumn is the table column denoting the row_values relation/edge.
	RowValuesColumn = "column_id"
)

// Columns holds all SQL columns for datasetcolumn fields.
var Columns = []string{
	FieldID,
	FieldDatasetID,
	FieldName,
	FieldOriginalName,
	FieldPosition,
	FieldInferredType,
	FieldCurrentType,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// OriginalNameValidator is a validator for the "original_name" field. It is called by the builders before save.
	OriginalNameValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultInferredType holds the default value on creation for the "inferred_type" field.
	DefaultInferredType string
	// InferredTypeValidator is a validator for the "inferred_type" field. It is called by the builders before save.
	InferredTypeValidator func(string) error
	// DefaultCurrentType holds the default value on creation for the "current_type" field.
	DefaultCurrentType string
	// CurrentTypeValidator is a validator for the "current_type" field. It is called by the builders before save.
	CurrentTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DatasetColumn queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDatasetID orders the results by the dataset_id field.
func ByDatasetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByOriginalName orders the results by the original_name field.
func ByOriginalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByInferredType orders the results by the inferred_type field.
func ByInferredType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInferredType, opts...).ToFunc()
}

// ByCurrentType orders the results by the current_type field.
func ByCurrentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentType, opts...).ToFunc()
}

// ByDatasetField orders the results by dataset field.
func ByDatasetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDatasetStep(), sql.OrderByField(field, opts...))
	}
}

// ByRowValuesCount orders the results by row_values count.
func ByRowValuesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRowValuesStep(), opts...)
	}
}

// ByRowValues orders the results by row_values terms.
func ByRowValues(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRowValuesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDatasetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DatasetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DatasetTable, DatasetColumn),
	)
}
func newRowValuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RowValuesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RowValuesTable, RowValuesColumn),
	)
}
