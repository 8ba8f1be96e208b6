// Code generated by ent, DO NOT EDIT.

package transcriptartifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tulkka/lessonflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldUserID, v))
}

// TeacherID applies equality check predicate on the "teacher_id" field. It's identical to TeacherIDEQ.
func TeacherID(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTeacherID, v))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldClassID, v))
}

// TeacherEmail applies equality check predicate on the "teacher_email" field. It's identical to TeacherEmailEQ.
func TeacherEmail(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTeacherEmail, v))
}

// MeetingDate applies equality check predicate on the "meeting_date" field. It's identical to MeetingDateEQ.
func MeetingDate(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldMeetingDate, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldEndTime, v))
}

// Transcript applies equality check predicate on the "transcript" field. It's identical to TranscriptEQ.
func Transcript(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTranscript, v))
}

// TranscriptLength applies equality check predicate on the "transcript_length" field. It's identical to TranscriptLengthEQ.
func TranscriptLength(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTranscriptLength, v))
}

// ProcessingAttempts applies equality check predicate on the "processing_attempts" field. It's identical to ProcessingAttemptsEQ.
func ProcessingAttempts(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldProcessingAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldLastError, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldClaimedBy, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldProcessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldUserID, v))
}

// TeacherIDEQ applies the EQ predicate on the "teacher_id" field.
func TeacherIDEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTeacherID, v))
}

// TeacherIDNEQ applies the NEQ predicate on the "teacher_id" field.
func TeacherIDNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldTeacherID, v))
}

// TeacherIDIn applies the In predicate on the "teacher_id" field.
func TeacherIDIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldTeacherID, vs...))
}

// TeacherIDNotIn applies the NotIn predicate on the "teacher_id" field.
func TeacherIDNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldTeacherID, vs...))
}

// TeacherIDGT applies the GT predicate on the "teacher_id" field.
func TeacherIDGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldTeacherID, v))
}

// TeacherIDGTE applies the GTE predicate on the "teacher_id" field.
func TeacherIDGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldTeacherID, v))
}

// TeacherIDLT applies the LT predicate on the "teacher_id" field.
func TeacherIDLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldTeacherID, v))
}

// TeacherIDLTE applies the LTE predicate on the "teacher_id" field.
func TeacherIDLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldTeacherID, v))
}

// TeacherIDContains applies the Contains predicate on the "teacher_id" field.
func TeacherIDContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldTeacherID, v))
}

// TeacherIDHasPrefix applies the HasPrefix predicate on the "teacher_id" field.
func TeacherIDHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldTeacherID, v))
}

// TeacherIDHasSuffix applies the HasSuffix predicate on the "teacher_id" field.
func TeacherIDHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldTeacherID, v))
}

// TeacherIDEqualFold applies the EqualFold predicate on the "teacher_id" field.
func TeacherIDEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldTeacherID, v))
}

// TeacherIDContainsFold applies the ContainsFold predicate on the "teacher_id" field.
func TeacherIDContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldTeacherID, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldClassID, v))
}

// ClassIDContains applies the Contains predicate on the "class_id" field.
func ClassIDContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldClassID, v))
}

// ClassIDHasPrefix applies the HasPrefix predicate on the "class_id" field.
func ClassIDHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldClassID, v))
}

// ClassIDHasSuffix applies the HasSuffix predicate on the "class_id" field.
func ClassIDHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldClassID, v))
}

// ClassIDEqualFold applies the EqualFold predicate on the "class_id" field.
func ClassIDEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldClassID, v))
}

// ClassIDContainsFold applies the ContainsFold predicate on the "class_id" field.
func ClassIDContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldClassID, v))
}

// TeacherEmailEQ applies the EQ predicate on the "teacher_email" field.
func TeacherEmailEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTeacherEmail, v))
}

// TeacherEmailNEQ applies the NEQ predicate on the "teacher_email" field.
func TeacherEmailNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldTeacherEmail, v))
}

// TeacherEmailIn applies the In predicate on the "teacher_email" field.
func TeacherEmailIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldTeacherEmail, vs...))
}

// TeacherEmailNotIn applies the NotIn predicate on the "teacher_email" field.
func TeacherEmailNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldTeacherEmail, vs...))
}

// TeacherEmailGT applies the GT predicate on the "teacher_email" field.
func TeacherEmailGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldTeacherEmail, v))
}

// TeacherEmailGTE applies the GTE predicate on the "teacher_email" field.
func TeacherEmailGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldTeacherEmail, v))
}

// TeacherEmailLT applies the LT predicate on the "teacher_email" field.
func TeacherEmailLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldTeacherEmail, v))
}

// TeacherEmailLTE applies the LTE predicate on the "teacher_email" field.
func TeacherEmailLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldTeacherEmail, v))
}

// TeacherEmailContains applies the Contains predicate on the "teacher_email" field.
func TeacherEmailContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldTeacherEmail, v))
}

// TeacherEmailHasPrefix applies the HasPrefix predicate on the "teacher_email" field.
func TeacherEmailHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldTeacherEmail, v))
}

// TeacherEmailHasSuffix applies the HasSuffix predicate on the "teacher_email" field.
func TeacherEmailHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldTeacherEmail, v))
}

// TeacherEmailIsNil applies the IsNil predicate on the "teacher_email" field.
func TeacherEmailIsNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIsNull(FieldTeacherEmail))
}

// TeacherEmailNotNil applies the NotNil predicate on the "teacher_email" field.
func TeacherEmailNotNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotNull(FieldTeacherEmail))
}

// TeacherEmailEqualFold applies the EqualFold predicate on the "teacher_email" field.
func TeacherEmailEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldTeacherEmail, v))
}

// TeacherEmailContainsFold applies the ContainsFold predicate on the "teacher_email" field.
func TeacherEmailContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldTeacherEmail, v))
}

// MeetingDateEQ applies the EQ predicate on the "meeting_date" field.
func MeetingDateEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldMeetingDate, v))
}

// MeetingDateNEQ applies the NEQ predicate on the "meeting_date" field.
func MeetingDateNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldMeetingDate, v))
}

// MeetingDateIn applies the In predicate on the "meeting_date" field.
func MeetingDateIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldMeetingDate, vs...))
}

// MeetingDateNotIn applies the NotIn predicate on the "meeting_date" field.
func MeetingDateNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldMeetingDate, vs...))
}

// MeetingDateGT applies the GT predicate on the "meeting_date" field.
func MeetingDateGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldMeetingDate, v))
}

// MeetingDateGTE applies the GTE predicate on the "meeting_date" field.
func MeetingDateGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldMeetingDate, v))
}

// MeetingDateLT applies the LT predicate on the "meeting_date" field.
func MeetingDateLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldMeetingDate, v))
}

// MeetingDateLTE applies the LTE predicate on the "meeting_date" field.
func MeetingDateLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldMeetingDate, v))
}

// MeetingDateContains applies the Contains predicate on the "meeting_date" field.
func MeetingDateContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldMeetingDate, v))
}

// MeetingDateHasPrefix applies the HasPrefix predicate on the "meeting_date" field.
func MeetingDateHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldMeetingDate, v))
}

// MeetingDateHasSuffix applies the HasSuffix predicate on the "meeting_date" field.
func MeetingDateHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldMeetingDate, v))
}

// MeetingDateEqualFold applies the EqualFold predicate on the "meeting_date" field.
func MeetingDateEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldMeetingDate, v))
}

// MeetingDateContainsFold applies the ContainsFold predicate on the "meeting_date" field.
func MeetingDateContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldMeetingDate, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotNull(FieldEndTime))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldEndTime, v))
}

// TranscriptEQ applies the EQ predicate on the "transcript" field.
func TranscriptEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTranscript, v))
}

// TranscriptNEQ applies the NEQ predicate on the "transcript" field.
func TranscriptNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldTranscript, v))
}

// TranscriptIn applies the In predicate on the "transcript" field.
func TranscriptIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldTranscript, vs...))
}

// TranscriptNotIn applies the NotIn predicate on the "transcript" field.
func TranscriptNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldTranscript, vs...))
}

// TranscriptGT applies the GT predicate on the "transcript" field.
func TranscriptGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldTranscript, v))
}

// TranscriptGTE applies the GTE predicate on the "transcript" field.
func TranscriptGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldTranscript, v))
}

// TranscriptLT applies the LT predicate on the "transcript" field.
func TranscriptLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldTranscript, v))
}

// TranscriptLTE applies the LTE predicate on the "transcript" field.
func TranscriptLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldTranscript, v))
}

// TranscriptContains applies the Contains predicate on the "transcript" field.
func TranscriptContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldTranscript, v))
}

// TranscriptHasPrefix applies the HasPrefix predicate on the "transcript" field.
func TranscriptHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldTranscript, v))
}

// TranscriptHasSuffix applies the HasSuffix predicate on the "transcript" field.
func TranscriptHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldTranscript, v))
}

// TranscriptIsNil applies the IsNil predicate on the "transcript" field.
func TranscriptIsNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIsNull(FieldTranscript))
}

// TranscriptNotNil applies the NotNil predicate on the "transcript" field.
func TranscriptNotNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotNull(FieldTranscript))
}

// TranscriptEqualFold applies the EqualFold predicate on the "transcript" field.
func TranscriptEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldTranscript, v))
}

// TranscriptContainsFold applies the ContainsFold predicate on the "transcript" field.
func TranscriptContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldTranscript, v))
}

// TranscriptLengthEQ applies the EQ predicate on the "transcript_length" field.
func TranscriptLengthEQ(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTranscriptLength, v))
}

// TranscriptLengthNEQ applies the NEQ predicate on the "transcript_length" field.
func TranscriptLengthNEQ(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldTranscriptLength, v))
}

// TranscriptLengthIn applies the In predicate on the "transcript_length" field.
func TranscriptLengthIn(vs ...int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldTranscriptLength, vs...))
}

// TranscriptLengthNotIn applies the NotIn predicate on the "transcript_length" field.
func TranscriptLengthNotIn(vs ...int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldTranscriptLength, vs...))
}

// TranscriptLengthGT applies the GT predicate on the "transcript_length" field.
func TranscriptLengthGT(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldTranscriptLength, v))
}

// TranscriptLengthGTE applies the GTE predicate on the "transcript_length" field.
func TranscriptLengthGTE(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldTranscriptLength, v))
}

// TranscriptLengthLT applies the LT predicate on the "transcript_length" field.
func TranscriptLengthLT(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldTranscriptLength, v))
}

// TranscriptLengthLTE applies the LTE predicate on the "transcript_length" field.
func TranscriptLengthLTE(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldTranscriptLength, v))
}

// TranscriptSourceEQ applies the EQ predicate on the "transcript_source" field.
func TranscriptSourceEQ(v TranscriptSource) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldTranscriptSource, v))
}

// TranscriptSourceNEQ applies the NEQ predicate on the "transcript_source" field.
func TranscriptSourceNEQ(v TranscriptSource) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldTranscriptSource, v))
}

// TranscriptSourceIn applies the In predicate on the "transcript_source" field.
func TranscriptSourceIn(vs ...TranscriptSource) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldTranscriptSource, vs...))
}

// TranscriptSourceNotIn applies the NotIn predicate on the "transcript_source" field.
func TranscriptSourceNotIn(vs ...TranscriptSource) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldTranscriptSource, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldStatus, vs...))
}

// ProcessingAttemptsEQ applies the EQ predicate on the "processing_attempts" field.
func ProcessingAttemptsEQ(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldProcessingAttempts, v))
}

// ProcessingAttemptsNEQ applies the NEQ predicate on the "processing_attempts" field.
func ProcessingAttemptsNEQ(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldProcessingAttempts, v))
}

// ProcessingAttemptsIn applies the In predicate on the "processing_attempts" field.
func ProcessingAttemptsIn(vs ...int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldProcessingAttempts, vs...))
}

// ProcessingAttemptsNotIn applies the NotIn predicate on the "processing_attempts" field.
func ProcessingAttemptsNotIn(vs ...int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldProcessingAttempts, vs...))
}

// ProcessingAttemptsGT applies the GT predicate on the "processing_attempts" field.
func ProcessingAttemptsGT(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldProcessingAttempts, v))
}

// ProcessingAttemptsGTE applies the GTE predicate on the "processing_attempts" field.
func ProcessingAttemptsGTE(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldProcessingAttempts, v))
}

// ProcessingAttemptsLT applies the LT predicate on the "processing_attempts" field.
func ProcessingAttemptsLT(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldProcessingAttempts, v))
}

// ProcessingAttemptsLTE applies the LTE predicate on the "processing_attempts" field.
func ProcessingAttemptsLTE(v int) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldProcessingAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldLastError, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotNull(FieldClaimedAt))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldContainsFold(FieldClaimedBy, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotNull(FieldProcessedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExerciseSets applies the HasEdge predicate on the "exercise_sets" edge.
func HasExerciseSets() predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExerciseSetsTable, ExerciseSetsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExerciseSetsWith applies the HasEdge predicate on the "exercise_sets" edge with a given conditions (other predicates).
func HasExerciseSetsWith(preds ...predicate.ExerciseSet) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(func(s *sql.Selector) {
		step := newExerciseSetsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranscriptArtifact) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranscriptArtifact) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranscriptArtifact) predicate.TranscriptArtifact {
	return predicate.TranscriptArtifact(sql.NotPredicates(p))
}
