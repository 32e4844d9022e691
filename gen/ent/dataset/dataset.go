// Code generated by ent, DO NOT EDIT.

package dataset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dataset type in the database.
	Label = "dataset"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldFileType holds the string denoting the file_type field in the database.
	FieldFileType = "file_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRowsCount holds the string denoting the rows_count field in the database.
	FieldRowsCount = "rows_count"
	// FieldColumnsCount holds the string denoting the columns_count field in the database.
	FieldColumnsCount = "columns_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeColumns holds the string denoting the columns edge name in mutations.
	EdgeColumns = "columns"
	// EdgeRows holds the string denoting the rows edge name in mutations.
	EdgeRows = "rows"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the dataset in the database.
	Table = "datasets"
	// ColumnsTable is the table that holds the columns relation/edge.
	ColumnsTable = "dataset_columns"
	// ColumnsInverseTable is the table name for the DatasetColumn entity.
	// It exists in this package in order to avoid circular dependency with the "datasetcolumn" package.
	ColumnsInverseTable = "dataset_columns"
	// ColumnsColumn is the table column denoting the columns relation/edge.
	ColumnsColumn = "dataset_id"
	// RowsTable is the table that holds the rows relation/edge.
	RowsTable = "dataset_rows"
	// RowsInverseTable is the table name for the DatasetRow entity.
	// It exists in this package in order to avoid circular dependency with the "datasetrow" package.
	RowsInverseTable = "dataset_rows"
	// RowsColumn is the table column denoting the rows relation/edge.
	RowsColumn = "dataset_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "processing_jobs"
	// JobsInverseTable is the table name for the ProcessingJob entity.
	// It exists in this package in order to avoid circular dependency with the "processingjob" package.
	JobsInverseTable = "processing_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "dataset_id"
)

// Columns holds all SQL columns for dataset fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldFilePath,
	FieldFileType,
	FieldStatus,
	FieldRowsCount,
	FieldColumnsCount,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	FileTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Dataset queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByFileType orders the results by the file_type field.
func ByFileType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRowsCountField orders the results by the rows_count field.
func ByRowsCountField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsCount, opts...).ToFunc()
}

// ByColumnsCountField orders the results by the columns_count field.
func ByColumnsCountField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnsCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByColumnsCount orders the results by columns count.
func ByColumnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newColumnsStep(), opts...)
	}
}

// ByColumns orders the results by columns terms.
func ByColumns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newColumnsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRowsCount orders the results by rows count.
func ByRowsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRowsStep(), opts...)
	}
}

// ByRows orders the results by rows terms.
func ByRows(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRowsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newColumnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ColumnsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ColumnsTable, ColumnsColumn),
	)
}
func newRowsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RowsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RowsTable, RowsColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
