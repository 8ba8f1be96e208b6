// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/schema"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exercisesetFields := schema.ExerciseSet{}.Fields()
	_ = exercisesetFields
	// exercisesetDescGeneratedAt is the schema descriptor for generated_at field.
	exercisesetDescGeneratedAt := exercisesetFields[5].Descriptor()
	// exerciseset.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	exerciseset.DefaultGeneratedAt = exercisesetDescGeneratedAt.Default.(func() time.Time)
	transcriptartifactFields := schema.TranscriptArtifact{}.Fields()
	_ = transcriptartifactFields
	// transcriptartifactDescTranscriptLength is the schema descriptor for transcript_length field.
	transcriptartifactDescTranscriptLength := transcriptartifactFields[9].Descriptor()
	// transcriptartifact.DefaultTranscriptLength holds the default value on creation for the transcript_length field.
	transcriptartifact.DefaultTranscriptLength = transcriptartifactDescTranscriptLength.Default.(int)
	// transcriptartifactDescProcessingAttempts is the schema descriptor for processing_attempts field.
	transcriptartifactDescProcessingAttempts := transcriptartifactFields[12].Descriptor()
	// transcriptartifact.DefaultProcessingAttempts holds the default value on creation for the processing_attempts field.
	transcriptartifact.DefaultProcessingAttempts = transcriptartifactDescProcessingAttempts.Default.(int)
	// transcriptartifactDescCreatedAt is the schema descriptor for created_at field.
	transcriptartifactDescCreatedAt := transcriptartifactFields[17].Descriptor()
	// transcriptartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcriptartifact.DefaultCreatedAt = transcriptartifactDescCreatedAt.Default.(func() time.Time)
	// transcriptartifactDescUpdatedAt is the schema descriptor for updated_at field.
	transcriptartifactDescUpdatedAt := transcriptartifactFields[18].Descriptor()
	// transcriptartifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transcriptartifact.DefaultUpdatedAt = transcriptartifactDescUpdatedAt.Default.(func() time.Time)
	// transcriptartifact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transcriptartifact.UpdateDefaultUpdatedAt = transcriptartifactDescUpdatedAt.UpdateDefault.(func() time.Time)
}
