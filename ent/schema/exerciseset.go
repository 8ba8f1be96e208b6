package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/tulkka/lessonflow/pkg/models"
)

// ExerciseSet holds the schema definition for the ExerciseSet entity.
// The generated bundle of four exercise arrays plus metadata for one
// TranscriptArtifact. Immutable after creation except for status.
type ExerciseSet struct {
	ent.Schema
}

// Annotations of the ExerciseSet.
func (ExerciseSet) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lesson_exercises"},
	}
}

// Fields of the ExerciseSet.
func (ExerciseSet) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("summary_id"),
		field.String("user_id").
			Comment("Denormalized from the artifact for read-path locality"),
		field.String("teacher_id"),
		field.String("class_id"),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
		field.JSON("exercises", &models.ExerciseDocument{}).
			Comment("The four typed exercise arrays plus counts and metadata"),
		field.Enum("status").
			Values("pending_approval", "approved", "rejected").
			Default("pending_approval"),
	}
}

// Edges of the ExerciseSet.
func (ExerciseSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("artifact", TranscriptArtifact.Type).
			Ref("exercise_sets").
			Field("summary_id").
			Unique().
			Required(),
	}
}

// Indexes of the ExerciseSet.
func (ExerciseSet) Indexes() []ent.Index {
	return []ent.Index{
		// Read path: GET /v1/exercises?class_id=&user_id= ordered by generated_at desc.
		index.Fields("class_id", "user_id", "generated_at"),
		index.Fields("summary_id"),
	}
}
