package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/db/ent/schema/utils"
)

type ProcessingJob struct{ ent.Schema }

func (ProcessingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_jobs"},
	}
}

func (ProcessingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("dataset_id", uuid.UUID{}),
		// Conversion jobs carry the column they rewrite.
		field.UUID("column_id", uuid.UUID{}).Optional().Nillable(),
		field.String("job_type").NotEmpty().
			Validate(utils.EnumValidator(constants.JobTypes...)),
		field.String("status").Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(
				string(constants.JobStatusQueued),
				string(constants.JobStatusRunning),
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
			)),
		field.String("target_type").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (ProcessingJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("dataset", Dataset.Type).
			Ref("jobs").
			Field("dataset_id").
			Unique().
			Required(),
	}
}

func (ProcessingJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id", "status", "created_at"),
	}
}
