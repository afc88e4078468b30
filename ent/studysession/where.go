// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTopic, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDurationMinutes, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCompleted, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldNotes, v))
}

// DifficultyRating applies equality check predicate on the "difficulty_rating" field. It's identical to DifficultyRatingEQ.
func DifficultyRating(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDifficultyRating, v))
}

// FocusLevel applies equality check predicate on the "focus_level" field. It's identical to FocusLevelEQ.
func FocusLevel(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldFocusLevel, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldTopic, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDurationMinutes, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldCompleted, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDate, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldNotes, v))
}

// DifficultyRatingEQ applies the EQ predicate on the "difficulty_rating" field.
func DifficultyRatingEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDifficultyRating, v))
}

// DifficultyRatingNEQ applies the NEQ predicate on the "difficulty_rating" field.
func DifficultyRatingNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDifficultyRating, v))
}

// DifficultyRatingIn applies the In predicate on the "difficulty_rating" field.
func DifficultyRatingIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDifficultyRating, vs...))
}

// DifficultyRatingNotIn applies the NotIn predicate on the "difficulty_rating" field.
func DifficultyRatingNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDifficultyRating, vs...))
}

// DifficultyRatingGT applies the GT predicate on the "difficulty_rating" field.
func DifficultyRatingGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDifficultyRating, v))
}

// DifficultyRatingGTE applies the GTE predicate on the "difficulty_rating" field.
func DifficultyRatingGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDifficultyRating, v))
}

// DifficultyRatingLT applies the LT predicate on the "difficulty_rating" field.
func DifficultyRatingLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDifficultyRating, v))
}

// DifficultyRatingLTE applies the LTE predicate on the "difficulty_rating" field.
func DifficultyRatingLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDifficultyRating, v))
}

// DifficultyRatingIsNil applies the IsNil predicate on the "difficulty_rating" field.
func DifficultyRatingIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldDifficultyRating))
}

// DifficultyRatingNotNil applies the NotNil predicate on the "difficulty_rating" field.
func DifficultyRatingNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldDifficultyRating))
}

// FocusLevelEQ applies the EQ predicate on the "focus_level" field.
func FocusLevelEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldFocusLevel, v))
}

// FocusLevelNEQ applies the NEQ predicate on the "focus_level" field.
func FocusLevelNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldFocusLevel, v))
}

// FocusLevelIn applies the In predicate on the "focus_level" field.
func FocusLevelIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldFocusLevel, vs...))
}

// FocusLevelNotIn applies the NotIn predicate on the "focus_level" field.
func FocusLevelNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldFocusLevel, vs...))
}

// FocusLevelGT applies the GT predicate on the "focus_level" field.
func FocusLevelGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldFocusLevel, v))
}

// FocusLevelGTE applies the GTE predicate on the "focus_level" field.
func FocusLevelGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldFocusLevel, v))
}

// FocusLevelLT applies the LT predicate on the "focus_level" field.
func FocusLevelLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldFocusLevel, v))
}

// FocusLevelLTE applies the LTE predicate on the "focus_level" field.
func FocusLevelLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldFocusLevel, v))
}

// FocusLevelIsNil applies the IsNil predicate on the "focus_level" field.
func FocusLevelIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldFocusLevel))
}

// FocusLevelNotNil applies the NotNil predicate on the "focus_level" field.
func FocusLevelNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldFocusLevel))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.NotPredicates(p))
}
