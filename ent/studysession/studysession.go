// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studysession type in the database.
	Label = "study_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldDifficultyRating holds the string denoting the difficulty_rating field in the database.
	FieldDifficultyRating = "difficulty_rating"
	// FieldFocusLevel holds the string denoting the focus_level field in the database.
	FieldFocusLevel = "focus_level"
	// Table holds the table name of the studysession in the database.
	Table = "study_sessions"
)

// Columns holds all SQL columns for studysession fields.
var Columns = []string{
	FieldID,
	FieldTopic,
	FieldDurationMinutes,
	FieldCompleted,
	FieldDate,
	FieldNotes,
	FieldDifficultyRating,
	FieldFocusLevel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	DurationMinutesValidator func(float64) error
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultDate holds the default value on creation for the "date" field.
	DefaultDate func() time.Time
	// DifficultyRatingValidator is a validator for the "difficulty_rating" field. It is called by the builders before save.
	DifficultyRatingValidator func(int) error
	// FocusLevelValidator is a validator for the "focus_level" field. It is called by the builders before save.
	FocusLevelValidator func(int) error
)

// OrderOption defines the ordering options for the StudySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByDifficultyRating orders the results by the difficulty_rating field.
func ByDifficultyRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyRating, opts...).ToFunc()
}

// ByFocusLevel orders the results by the focus_level field.
func ByFocusLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusLevel, opts...).ToFunc()
}
