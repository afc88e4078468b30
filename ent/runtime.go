// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studiz/ent/llmrequestevent"
	"github.com/abhisek/studiz/ent/schema"
	"github.com/abhisek/studiz/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescTopic is the schema descriptor for topic field.
	studysessionDescTopic := studysessionFields[0].Descriptor()
	// studysession.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	studysession.TopicValidator = func() func(string) error {
		validators := studysessionDescTopic.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(topic string) error {
			for _, fn := range fns {
				if err := fn(topic); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studysessionDescDurationMinutes is the schema descriptor for duration_minutes field.
	studysessionDescDurationMinutes := studysessionFields[1].Descriptor()
	// studysession.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	studysession.DurationMinutesValidator = studysessionDescDurationMinutes.Validators[0].(func(float64) error)
	// studysessionDescCompleted is the schema descriptor for completed field.
	studysessionDescCompleted := studysessionFields[2].Descriptor()
	// studysession.DefaultCompleted holds the default value on creation for the completed field.
	studysession.DefaultCompleted = studysessionDescCompleted.Default.(bool)
	// studysessionDescDate is the schema descriptor for date field.
	studysessionDescDate := studysessionFields[3].Descriptor()
	// studysession.DefaultDate holds the default value on creation for the date field.
	studysession.DefaultDate = studysessionDescDate.Default.(func() time.Time)
	// studysessionDescDifficultyRating is the schema descriptor for difficulty_rating field.
	studysessionDescDifficultyRating := studysessionFields[5].Descriptor()
	// studysession.DifficultyRatingValidator is a validator for the "difficulty_rating" field. It is called by the builders before save.
	studysession.DifficultyRatingValidator = studysessionDescDifficultyRating.Validators[0].(func(int) error)
	// studysessionDescFocusLevel is the schema descriptor for focus_level field.
	studysessionDescFocusLevel := studysessionFields[6].Descriptor()
	// studysession.FocusLevelValidator is a validator for the "focus_level" field. It is called by the builders before save.
	studysession.FocusLevelValidator = studysessionDescFocusLevel.Validators[0].(func(int) error)
}
