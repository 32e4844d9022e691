// Code generated by ent, DO NOT EDIT.

package rowvalue

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldLTE(FieldID, id))
}

// RowID applies equality check predicate on the "row_id" field. It's identical to RowIDEQ.
func RowID(v uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldEQ(FieldRowID, v))
}

// ColumnID applies equality check predicate on the "column_id" field. It's identical to ColumnIDEQ.
func ColumnID(v uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldEQ(FieldColumnID, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldEQ(FieldValue, v))
}

// RowIDEQ applies the EQ predicate on the "row_id" field.
func RowIDEQ(v uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldEQ(FieldRowID, v))
}

// RowIDNEQ applies the NEQ predicate on the "row_id" field.
func RowIDNEQ(v uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldNEQ(FieldRowID, v))
}

// RowIDIn applies the In predicate on the "row_id" field.
func RowIDIn(vs ...uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldIn(FieldRowID, vs...))
}

// RowIDNotIn applies the NotIn predicate on the "row_id" field.
func RowIDNotIn(vs ...uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldNotIn(FieldRowID, vs...))
}

// ColumnIDEQ applies the EQ predicate on the "column_id" field.
func ColumnIDEQ(v uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldEQ(FieldColumnID, v))
}

// ColumnIDNEQ applies the NEQ predicate on the "column_id" field.
func ColumnIDNEQ(v uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldNEQ(FieldColumnID, v))
}

// ColumnIDIn applies the In predicate on the "column_id" field.
func ColumnIDIn(vs ...uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldIn(FieldColumnID, vs...))
}

// ColumnIDNotIn applies the NotIn predicate on the "column_id" field.
func ColumnIDNotIn(vs ...uuid.UUID) predicate.RowValue {
	return predicate.RowValue(sql.FieldNotIn(FieldColumnID, vs...))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.RowValue {
	return predicate.RowValue(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.RowValue {
	return predicate.RowValue(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.RowValue {
	return predicate.RowValue(sql.FieldContainsFold(FieldValue, v))
}

// HasRow applies the HasEdge predicate on the "row" edge.
func HasRow() predicate.RowValue {
	return predicate.RowValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RowTable, RowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRowWith applies the HasEdge predicate on the "row" edge with a given conditions (other predicates).
func HasRowWith(preds ...predicate.DatasetRow) predicate.RowValue {
	return predicate.RowValue(func(s *sql.Selector) {
		step := newRowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasColumn applies the HasEdge predicate on the "column" edge.
func HasColumn() predicate.RowValue {
	return predicate.RowValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ColumnTable, ColumnColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasColumnWith applies the HasEdge predicate on the "column" edge with a given conditions (other predicates).
func HasColumnWith(preds ...predicate.DatasetColumn) predicate.RowValue {
	return predicate.RowValue(func(s *sql.Selector) {
		step := newColumnStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RowValue) predicate.RowValue {
	return predicate.RowValue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RowValue) predicate.RowValue {
	return predicate.RowValue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RowValue) predicate.RowValue {
	return predicate.RowValue(sql.NotPredicates(p))
}
