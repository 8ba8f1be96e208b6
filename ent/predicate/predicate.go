// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExerciseSet is the predicate function for exerciseset builders.
type ExerciseSet func(*sql.Selector)

// TranscriptArtifact is the predicate function for transcriptartifact builders.
type TranscriptArtifact func(*sql.Selector)
