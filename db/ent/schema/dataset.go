package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/db/ent/schema/utils"
)

type Dataset struct{ ent.Schema }

func (Dataset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "datasets"},
	}
}

func (Dataset) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("file_path").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("file_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("status").Default(string(constants.DatasetStatusPending)).
			Validate(utils.EnumValidator(constants.DatasetStatuses...)),
		// Unknown until processing completes; written exactly once at the end.
		field.Int64("rows_count").Optional().Nillable(),
		field.Int("columns_count").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Dataset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("columns", DatasetColumn.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rows", DatasetRow.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("jobs", ProcessingJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
