package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/db/ent/schema/utils"
)

type DatasetColumn struct{ ent.Schema }

func (DatasetColumn) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dataset_columns"},
	}
}

func (DatasetColumn) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("dataset_id", uuid.UUID{}),
		// Display name; may diverge from original_name after a rename.
		field.String("name").NotEmpty(),
		field.String("original_name").NotEmpty().Immutable(),
		// 0-based header order, assigned once at column creation.
		field.Int("position").NonNegative().Immutable(),
		field.String("inferred_type").
			Default(string(constants.TypeText)).
			Validate(utils.EnumValidator(constants.DataTypes...)),
		field.String("current_type").
			Default(string(constants.TypeText)).
			Validate(utils.EnumValidator(constants.DataTypes...)),
	}
}

func (DatasetColumn) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("dataset", Dataset.Type).
			Ref("columns").
			Field("dataset_id").
			Unique().
			Required(),
		edge.To("row_values", RowValue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (DatasetColumn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id", "name").Unique(),
		index.Fields("dataset_id", "position").Unique(),
	}
}
