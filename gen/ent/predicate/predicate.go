// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Dataset is the predicate function for dataset builders.
type Dataset func(*sql.Selector)

// DatasetColumn is the predicate function for datasetcolumn builders.
type DatasetColumn func(*sql.Selector)

// DatasetRow is the predicate function for datasetrow builders.
type DatasetRow func(*sql.Selector)

// ProcessingJob is the predicate function for processingjob builders.
type ProcessingJob func(*sql.Selector)

// RowValue is the predicate function for rowvalue builders.
type RowValue func(*sql.Selector)
