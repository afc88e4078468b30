package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession tracks an individual study session logged by the student.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			MaxLen(200).
			Comment("What was studied"),
		field.Float("duration_minutes").
			Positive().
			Comment("How long the session lasted"),
		field.Bool("completed").
			Default(false).
			Comment("Whether the planned session was finished"),
		field.Time("date").
			Default(time.Now).
			Comment("When the session took place"),
		field.Text("notes").
			Optional().
			Comment("Free-form notes"),
		field.Int("difficulty_rating").
			Optional().
			Range(1, 5).
			Comment("Self-reported difficulty, 1-5"),
		field.Int("focus_level").
			Optional().
			Range(1, 10).
			Comment("Self-reported focus, 1-10"),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("date"),
		index.Fields("completed"),
	}
}
