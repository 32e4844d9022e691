// Code generated by ent, DO NOT EDIT.

package dataset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldName, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldFilePath, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldFileType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldStatus, v))
}

// RowsCount applies equality check predicate on the "rows_count" field. It's identical to RowsCountEQ.
func RowsCount(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldRowsCount, v))
}

// ColumnsCount applies equality check predicate on the "columns_count" field. It's identical to ColumnsCountEQ.
func ColumnsCount(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldColumnsCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldName, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldFilePath, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldFileType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldStatus, v))
}

// RowsCountEQ applies the EQ predicate on the "rows_count" field.
func RowsCountEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldRowsCount, v))
}

// RowsCountNEQ applies the NEQ predicate on the "rows_count" field.
func RowsCountNEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldRowsCount, v))
}

// RowsCountIn applies the In predicate on the "rows_count" field.
func RowsCountIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldRowsCount, vs...))
}

// RowsCountNotIn applies the NotIn predicate on the "rows_count" field.
func RowsCountNotIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldRowsCount, vs...))
}

// RowsCountGT applies the GT predicate on the "rows_count" field.
func RowsCountGT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldRowsCount, v))
}

// RowsCountGTE applies the GTE predicate on the "rows_count" field.
func RowsCountGTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldRowsCount, v))
}

// RowsCountLT applies the LT predicate on the "rows_count" field.
func RowsCountLT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldRowsCount, v))
}

// RowsCountLTE applies the LTE predicate on the "rows_count" field.
func RowsCountLTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldRowsCount, v))
}

// RowsCountIsNil applies the IsNil predicate on the "rows_count" field.
func RowsCountIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldRowsCount))
}

// RowsCountNotNil applies the NotNil predicate on the "rows_count" field.
func RowsCountNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldRowsCount))
}

// ColumnsCountEQ applies the EQ predicate on the "columns_count" field.
func ColumnsCountEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldColumnsCount, v))
}

// ColumnsCountNEQ applies the NEQ predicate on the "columns_count" field.
func ColumnsCountNEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldColumnsCount, v))
}

// ColumnsCountIn applies the In predicate on the "columns_count" field.
func ColumnsCountIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldColumnsCount, vs...))
}

// ColumnsCountNotIn applies the NotIn predicate on the "columns_count" field.
func ColumnsCountNotIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldColumnsCount, vs...))
}

// ColumnsCountGT applies the GT predicate on the "columns_count" field.
func ColumnsCountGT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldColumnsCount, v))
}

// ColumnsCountGTE applies the GTE predicate on the "columns_count" field.
func ColumnsCountGTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldColumnsCount, v))
}

// ColumnsCountLT applies the LT predicate on the "columns_count" field.
func ColumnsCountLT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldColumnsCount, v))
}

// ColumnsCountLTE applies the LTE predicate on the "columns_count" field.
func ColumnsCountLTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldColumnsCount, v))
}

// ColumnsCountIsNil applies the IsNil predicate on the "columns_count" field.
func ColumnsCountIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldColumnsCount))
}

// ColumnsCountNotNil applies the NotNil predicate on the "columns_count" field.
func ColumnsCountNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldColumnsCount))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasColumns applies the HasEdge predicate on the "columns" edge.
func HasColumns() predicate.Dataset {
	return predicate.Dataset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ColumnsTable, ColumnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasColumnsWith applies the HasEdge predicate on the "columns" edge with a given conditions (other predicates).
func HasColumnsWith(preds ...predicate.DatasetColumn) predicate.Dataset {
	return predicate.Dataset(func(s *sql.Selector) {
		step := newColumnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRows applies the HasEdge predicate on the "rows" edge.
func HasRows() predicate.Dataset {
	return predicate.Dataset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RowsTable, RowsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRowsWith applies the HasEdge predicate on the "rows" edge with a given conditions (other predicates).
func HasRowsWith(preds ...predicate.DatasetRow) predicate.Dataset {
	return predicate.Dataset(func(s *sql.Selector) {
		step := newRowsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Dataset {
	return predicate.Dataset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ProcessingJob) predicate.Dataset {
	return predicate.Dataset(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.NotPredicates(p))
}
