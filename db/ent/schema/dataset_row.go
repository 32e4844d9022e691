package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type DatasetRow struct{ ent.Schema }

func (DatasetRow) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dataset_rows"},
	}
}

func (DatasetRow) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("dataset_id", uuid.UUID{}),
		// 0-based index of the row in the original file.
		field.Int64("row_index").NonNegative().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (DatasetRow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("dataset", Dataset.Type).
			Ref("rows").
			Field("dataset_id").
			Unique().
			Required(),
		edge.To("values", RowValue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (DatasetRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id", "row_index").Unique(),
	}
}
