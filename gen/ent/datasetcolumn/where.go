// Code generated by ent, DO NOT EDIT.

package datasetcolumn

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLTE(FieldID, id))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldDatasetID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldName, v))
}

// OriginalName applies equality check predicate on the "original_name" field. It's identical to OriginalNameEQ.
func OriginalName(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldOriginalName, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldPosition, v))
}

// InferredType applies equality check predicate on the "inferred_type" field. It's identical to InferredTypeEQ.
func InferredType(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldInferredType, v))
}

// CurrentType applies equality check predicate on the "current_type" field. It's identical to CurrentTypeEQ.
func CurrentType(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldCurrentType, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...uuid.UUID) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNotIn(FieldDatasetID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldContainsFold(FieldName, v))
}

// OriginalNameEQ applies the EQ predicate on the "original_name" field.
func OriginalNameEQ(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldOriginalName, v))
}

// OriginalNameNEQ applies the NEQ predicate on the "original_name" field.
func OriginalNameNEQ(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNEQ(FieldOriginalName, v))
}

// OriginalNameIn applies the In predicate on the "original_name" field.
func OriginalNameIn(vs ...string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldIn(FieldOriginalName, vs...))
}

// OriginalNameNotIn applies the NotIn predicate on the "original_name" field.
func OriginalNameNotIn(vs ...string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNotIn(FieldOriginalName, vs...))
}

// OriginalNameGT applies the GT predicate on the "original_name" field.
func OriginalNameGT(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGT(FieldOriginalName, v))
}

// OriginalNameGTE applies the GTE predicate on the "original_name" field.
func OriginalNameGTE(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGTE(FieldOriginalName, v))
}

// OriginalNameLT applies the LT predicate on the "original_name" field.
func OriginalNameLT(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLT(FieldOriginalName, v))
}

// OriginalNameLTE applies the LTE predicate on the "original_name" field.
func OriginalNameLTE(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLTE(FieldOriginalName, v))
}

// OriginalNameContains applies the Contains predicate on the "original_name" field.
func OriginalNameContains(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldContains(FieldOriginalName, v))
}

// OriginalNameHasPrefix applies the HasPrefix predicate on the "original_name" field.
func OriginalNameHasPrefix(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldHasPrefix(FieldOriginalName, v))
}

// OriginalNameHasSuffix applies the HasSuffix predicate on the "original_name" field.
func OriginalNameHasSuffix(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldHasSuffix(FieldOriginalName, v))
}

// OriginalNameEqualFold applies the EqualFold predicate on the "original_name" field.
func OriginalNameEqualFold(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEqualFold(FieldOriginalName, v))
}

// OriginalNameContainsFold applies the ContainsFold predicate on the "original_name" field.
func OriginalNameContainsFold(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldContainsFold(FieldOriginalName, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLTE(FieldPosition, v))
}

// InferredTypeEQ applies the EQ predicate on the "inferred_type" field.
func InferredTypeEQ(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldInferredType, v))
}

// InferredTypeNEQ applies the NEQ predicate on the "inferred_type" field.
func InferredTypeNEQ(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNEQ(FieldInferredType, v))
}

// InferredTypeIn applies the In predicate on the "inferred_type" field.
func InferredTypeIn(vs ...string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldIn(FieldInferredType, vs...))
}

// InferredTypeNotIn applies the NotIn predicate on the "inferred_type" field.
func InferredTypeNotIn(vs ...string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNotIn(FieldInferredType, vs...))
}

// InferredTypeGT applies the GT predicate on the "inferred_type" field.
func InferredTypeGT(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGT(FieldInferredType, v))
}

// InferredTypeGTE applies the GTE predicate on the "inferred_type" field.
func InferredTypeGTE(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGTE(FieldInferredType, v))
}

// InferredTypeLT applies the LT predicate on the "inferred_type" field.
func InferredTypeLT(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLT(FieldInferredType, v))
}

// InferredTypeLTE applies the LTE predicate on the "inferred_type" field.
func InferredTypeLTE(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLTE(FieldInferredType, v))
}

// InferredTypeContains applies the Contains predicate on the "inferred_type" field.
func InferredTypeContains(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldContains(FieldInferredType, v))
}

// InferredTypeHasPrefix applies the HasPrefix predicate on the "inferred_type" field.
func InferredTypeHasPrefix(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldHasPrefix(FieldInferredType, v))
}

// InferredTypeHasSuffix applies the HasSuffix predicate on the "inferred_type" field.
func InferredTypeHasSuffix(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldHasSuffix(FieldInferredType, v))
}

// InferredTypeEqualFold applies the EqualFold predicate on the "inferred_type" field.
func InferredTypeEqualFold(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEqualFold(FieldInferredType, v))
}

// InferredTypeContainsFold applies the ContainsFold predicate on the "inferred_type" field.
func InferredTypeContainsFold(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldContainsFold(FieldInferredType, v))
}

// CurrentTypeEQ applies the EQ predicate on the "current_type" field.
func CurrentTypeEQ(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEQ(FieldCurrentType, v))
}

// CurrentTypeNEQ applies the NEQ predicate on the "current_type" field.
func CurrentTypeNEQ(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNEQ(FieldCurrentType, v))
}

// CurrentTypeIn applies the In predicate on the "current_type" field.
func CurrentTypeIn(vs ...string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldIn(FieldCurrentType, vs...))
}

// CurrentTypeNotIn applies the NotIn predicate on the "current_type" field.
func CurrentTypeNotIn(vs ...string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldNotIn(FieldCurrentType, vs...))
}

// CurrentTypeGT applies the GT predicate on the "current_type" field.
func CurrentTypeGT(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGT(FieldCurrentType, v))
}

// CurrentTypeGTE applies the GTE predicate on the "current_type" field.
func CurrentTypeGTE(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldGTE(FieldCurrentType, v))
}

// CurrentTypeLT applies the LT predicate on the "current_type" field.
func CurrentTypeLT(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLT(FieldCurrentType, v))
}

// CurrentTypeLTE applies the LTE predicate on the "current_type" field.
func CurrentTypeLTE(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldLTE(FieldCurrentType, v))
}

// CurrentTypeContains applies the Contains predicate on the "current_type" field.
func CurrentTypeContains(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldContains(FieldCurrentType, v))
}

// CurrentTypeHasPrefix applies the HasPrefix predicate on the "current_type" field.
func CurrentTypeHasPrefix(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldHasPrefix(FieldCurrentType, v))
}

// CurrentTypeHasSuffix applies the HasSuffix predicate on the "current_type" field.
func CurrentTypeHasSuffix(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldHasSuffix(FieldCurrentType, v))
}

// CurrentTypeEqualFold applies the EqualFold predicate on the "current_type" field.
func CurrentTypeEqualFold(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldEqualFold(FieldCurrentType, v))
}

// CurrentTypeContainsFold applies the ContainsFold predicate on the "current_type" field.
func CurrentTypeContainsFold(v string) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.FieldContainsFold(FieldCurrentType, v))
}

// HasDataset applies the HasEdge predicate on the "dataset" edge.
func HasDataset() predicate.DatasetColumn {
	return predicate.DatasetColumn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DatasetTable, DatasetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDatasetWith applies the HasEdge predicate on the "dataset" edge with a given conditions (other predicates).
func HasDatasetWith(preds ...predicate.Dataset) predicate.DatasetColumn {
	return predicate.DatasetColumn(func(s *sql.Selector) {
		step := newDatasetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRowValues applies the HasEdge predicate on the "row_values" edge.
func HasRowValues() predicate.DatasetColumn {
	return predicate.DatasetColumn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RowValuesTable, RowValuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRowValuesWith applies the HasEdge predicate on the "row_values" edge with a given conditions (other predicates).
func HasRowValuesWith(preds ...predicate.RowValue) predicate.DatasetColumn {
	return predicate.DatasetColumn(func(s *sql.Selector) {
		step := newRowValuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DatasetColumn) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DatasetColumn) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DatasetColumn) predicate.DatasetColumn {
	return predicate.DatasetColumn(sql.NotPredicates(p))
}
