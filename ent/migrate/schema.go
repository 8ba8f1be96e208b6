// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonExercisesColumns holds the columns for the "lesson_exercises" table.
	LessonExercisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "teacher_id", Type: field.TypeString},
		{Name: "class_id", Type: field.TypeString},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "exercises", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_approval", "approved", "rejected"}, Default: "pending_approval"},
		{Name: "summary_id", Type: field.TypeInt64},
	}
	// LessonExercisesTable holds the schema information for the "lesson_exercises" table.
	LessonExercisesTable = &schema.Table{
		Name:       "lesson_exercises",
		Columns:    LessonExercisesColumns,
		PrimaryKey: []*schema.Column{LessonExercisesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lesson_exercises_zoom_summaries_exercise_sets",
				Columns:    []*schema.Column{LessonExercisesColumns[7]},
				RefColumns: []*schema.Column{ZoomSummariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "exerciseset_class_id_user_id_generated_at",
				Unique:  false,
				Columns: []*schema.Column{LessonExercisesColumns[3], LessonExercisesColumns[1], LessonExercisesColumns[4]},
			},
			{
				Name:    "exerciseset_summary_id",
				Unique:  false,
				Columns: []*schema.Column{LessonExercisesColumns[7]},
			},
		},
	}
	// ZoomSummariesColumns holds the columns for the "zoom_summaries" table.
	ZoomSummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeInt64, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "teacher_id", Type: field.TypeString},
		{Name: "class_id", Type: field.TypeString},
		{Name: "teacher_email", Type: field.TypeString, Nullable: true},
		{Name: "meeting_date", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeString},
		{Name: "end_time", Type: field.TypeString, Nullable: true},
		{Name: "transcript", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "transcript_length", Type: field.TypeInt, Default: 0},
		{Name: "transcript_source", Type: field.TypeEnum, Enums: []string{"zoom_native", "external_stt", "unknown"}, Default: "unknown"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "awaiting_exercises", "completed", "failed"}, Default: "pending"},
		{Name: "processing_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ZoomSummariesTable holds the schema information for the "zoom_summaries" table.
	ZoomSummariesTable = &schema.Table{
		Name:       "zoom_summaries",
		Columns:    ZoomSummariesColumns,
		PrimaryKey: []*schema.Column{ZoomSummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptartifact_class_id_meeting_date_start_time",
				Unique:  true,
				Columns: []*schema.Column{ZoomSummariesColumns[3], ZoomSummariesColumns[5], ZoomSummariesColumns[6]},
			},
			{
				Name:    "transcriptartifact_status_claimed_at_created_at",
				Unique:  false,
				Columns: []*schema.Column{ZoomSummariesColumns[11], ZoomSummariesColumns[14], ZoomSummariesColumns[17]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonExercisesTable,
		ZoomSummariesTable,
	}
)

func init() {
	LessonExercisesTable.ForeignKeys[0].RefTable = ZoomSummariesTable
	LessonExercisesTable.Annotation = &entsql.Annotation{
		Table: "lesson_exercises",
	}
	ZoomSummariesTable.Annotation = &entsql.Annotation{
		Table: "zoom_summaries",
	}
}
