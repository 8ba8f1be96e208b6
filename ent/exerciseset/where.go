// Code generated by ent, DO NOT EDIT.

package exerciseset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tulkka/lessonflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLTE(FieldID, id))
}

// SummaryID applies equality check predicate on the "summary_id" field. It's identical to SummaryIDEQ.
func SummaryID(v int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldSummaryID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldUserID, v))
}

// TeacherID applies equality check predicate on the "teacher_id" field. It's identical to TeacherIDEQ.
func TeacherID(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldTeacherID, v))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldClassID, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldGeneratedAt, v))
}

// SummaryIDEQ applies the EQ predicate on the "summary_id" field.
func SummaryIDEQ(v int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldSummaryID, v))
}

// SummaryIDNEQ applies the NEQ predicate on the "summary_id" field.
func SummaryIDNEQ(v int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNEQ(FieldSummaryID, v))
}

// SummaryIDIn applies the In predicate on the "summary_id" field.
func SummaryIDIn(vs ...int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldIn(FieldSummaryID, vs...))
}

// SummaryIDNotIn applies the NotIn predicate on the "summary_id" field.
func SummaryIDNotIn(vs ...int64) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNotIn(FieldSummaryID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldContainsFold(FieldUserID, v))
}

// TeacherIDEQ applies the EQ predicate on the "teacher_id" field.
func TeacherIDEQ(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldTeacherID, v))
}

// TeacherIDNEQ applies the NEQ predicate on the "teacher_id" field.
func TeacherIDNEQ(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNEQ(FieldTeacherID, v))
}

// TeacherIDIn applies the In predicate on the "teacher_id" field.
func TeacherIDIn(vs ...string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldIn(FieldTeacherID, vs...))
}

// TeacherIDNotIn applies the NotIn predicate on the "teacher_id" field.
func TeacherIDNotIn(vs ...string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNotIn(FieldTeacherID, vs...))
}

// TeacherIDGT applies the GT predicate on the "teacher_id" field.
func TeacherIDGT(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGT(FieldTeacherID, v))
}

// TeacherIDGTE applies the GTE predicate on the "teacher_id" field.
func TeacherIDGTE(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGTE(FieldTeacherID, v))
}

// TeacherIDLT applies the LT predicate on the "teacher_id" field.
func TeacherIDLT(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLT(FieldTeacherID, v))
}

// TeacherIDLTE applies the LTE predicate on the "teacher_id" field.
func TeacherIDLTE(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLTE(FieldTeacherID, v))
}

// TeacherIDContains applies the Contains predicate on the "teacher_id" field.
func TeacherIDContains(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldContains(FieldTeacherID, v))
}

// TeacherIDHasPrefix applies the HasPrefix predicate on the "teacher_id" field.
func TeacherIDHasPrefix(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldHasPrefix(FieldTeacherID, v))
}

// TeacherIDHasSuffix applies the HasSuffix predicate on the "teacher_id" field.
func TeacherIDHasSuffix(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldHasSuffix(FieldTeacherID, v))
}

// TeacherIDEqualFold applies the EqualFold predicate on the "teacher_id" field.
func TeacherIDEqualFold(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEqualFold(FieldTeacherID, v))
}

// TeacherIDContainsFold applies the ContainsFold predicate on the "teacher_id" field.
func TeacherIDContainsFold(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldContainsFold(FieldTeacherID, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLTE(FieldClassID, v))
}

// ClassIDContains applies the Contains predicate on the "class_id" field.
func ClassIDContains(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldContains(FieldClassID, v))
}

// ClassIDHasPrefix applies the HasPrefix predicate on the "class_id" field.
func ClassIDHasPrefix(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldHasPrefix(FieldClassID, v))
}

// ClassIDHasSuffix applies the HasSuffix predicate on the "class_id" field.
func ClassIDHasSuffix(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldHasSuffix(FieldClassID, v))
}

// ClassIDEqualFold applies the EqualFold predicate on the "class_id" field.
func ClassIDEqualFold(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEqualFold(FieldClassID, v))
}

// ClassIDContainsFold applies the ContainsFold predicate on the "class_id" field.
func ClassIDContainsFold(v string) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldContainsFold(FieldClassID, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldLTE(FieldGeneratedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.FieldNotIn(FieldStatus, vs...))
}

// HasArtifact applies the HasEdge predicate on the "artifact" edge.
func HasArtifact() predicate.ExerciseSet {
	return predicate.ExerciseSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArtifactTable, ArtifactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactWith applies the HasEdge predicate on the "artifact" edge with a given conditions (other predicates).
func HasArtifactWith(preds ...predicate.TranscriptArtifact) predicate.ExerciseSet {
	return predicate.ExerciseSet(func(s *sql.Selector) {
		step := newArtifactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExerciseSet) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExerciseSet) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExerciseSet) predicate.ExerciseSet {
	return predicate.ExerciseSet(sql.NotPredicates(p))
}
