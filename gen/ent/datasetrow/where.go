// Code generated by ent, DO NOT EDIT.

package datasetrow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldLTE(FieldID, id))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldEQ(FieldDatasetID, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldEQ(FieldRowIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldEQ(FieldCreatedAt, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...uuid.UUID) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldNotIn(FieldDatasetID, vs...))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int64) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldLTE(FieldRowIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DatasetRow {
	return predicate.DatasetRow(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDataset applies the HasEdge predicate on the "dataset" edge.
func HasDataset() predicate.DatasetRow {
	return predicate.DatasetRow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DatasetTable, DatasetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDatasetWith applies the HasEdge predicate on the "dataset" edge with a given conditions (other predicates).
func HasDatasetWith(preds ...predicate.Dataset) predicate.DatasetRow {
	return predicate.DatasetRow(func(s *sql.Selector) {
		step := newDatasetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValues applies the HasEdge predicate on the "values" edge.
func HasValues() predicate.DatasetRow {
	return predicate.DatasetRow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValuesTable, ValuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValuesWith applies the HasEdge predicate on the "values" edge with a given conditions (other predicates).
func HasValuesWith(preds ...predicate.RowValue) predicate.DatasetRow {
	return predicate.DatasetRow(func(s *sql.Selector) {
		step := newValuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DatasetRow) predicate.DatasetRow {
	return predicate.DatasetRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DatasetRow) predicate.DatasetRow {
	return predicate.DatasetRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DatasetRow) predicate.DatasetRow {
	return predicate.DatasetRow(sql.NotPredicates(p))
}
