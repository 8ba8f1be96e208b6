package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranscriptArtifact holds the schema definition for the TranscriptArtifact entity.
// One row per lesson recording; tracks the transcript lifecycle from trigger
// through exercise generation.
type TranscriptArtifact struct {
	ent.Schema
}

// Annotations of the TranscriptArtifact.
func (TranscriptArtifact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "zoom_summaries"},
	}
}

// Fields of the TranscriptArtifact.
func (TranscriptArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("summary_id").
			Comment("Monotonically assigned summary identifier"),
		field.String("user_id").
			Comment("Student identifier from the operational store"),
		field.String("teacher_id"),
		field.String("class_id"),
		field.String("teacher_email").
			Optional(),
		field.String("meeting_date").
			Comment("Lesson date, YYYY-MM-DD"),
		field.String("start_time").
			Comment("Lesson start, HH:MM"),
		field.String("end_time").
			Optional().
			Comment("Lesson end, HH:MM"),
		field.Text("transcript").
			Optional().
			Nillable().
			Comment("Raw transcript text; nullable until the external workflow writes it"),
		field.Int("transcript_length").
			Default(0),
		field.Enum("transcript_source").
			Values("zoom_native", "external_stt", "unknown").
			Default("unknown"),
		field.Enum("status").
			Values("pending", "processing", "awaiting_exercises", "completed", "failed").
			Default("pending"),
		field.Int("processing_attempts").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("claimed_at").
			Optional().
			Nillable().
			Comment("Lease stamp; null when unclaimed"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod that holds the lease, for startup lease release"),
		field.Time("processed_at").
			Optional().
			Nillable().
			Comment("Set only when status reaches completed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TranscriptArtifact.
func (TranscriptArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("exercise_sets", ExerciseSet.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TranscriptArtifact.
func (TranscriptArtifact) Indexes() []ent.Index {
	return []ent.Index{
		// Business key: one artifact per (class, date, start).
		index.Fields("class_id", "meeting_date", "start_time").
			Unique(),
		// Claim query: status IN (...) AND (claimed_at IS NULL OR expired) ORDER BY created_at.
		index.Fields("status", "claimed_at", "created_at"),
	}
}
