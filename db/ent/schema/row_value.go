package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RowValue stores one cell as a canonical string. Storage is type-erased:
// readers reparse using the owning column's current_type. The empty string
// is the explicit null marker.
type RowValue struct{ ent.Schema }

func (RowValue) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "row_values"},
	}
}

func (RowValue) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("row_id", uuid.UUID{}),
		field.UUID("column_id", uuid.UUID{}),
		field.String("value").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (RowValue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("row", DatasetRow.Type).
			Ref("values").
			Field("row_id").
			Unique().
			Required(),
		edge.From("column", DatasetColumn.Type).
			Ref("row_values").
			Field("column_id").
			Unique().
			Required(),
	}
}

func (RowValue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("row_id", "column_id").Unique(),
		index.Fields("column_id"),
	}
}
