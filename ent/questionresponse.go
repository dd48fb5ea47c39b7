// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mathmentor/mathmentor/ent/questionresponse"
)

// QuestionResponse is the model entity for the QuestionResponse schema.
type QuestionResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the owning assessment session
	SessionID string `json:"session_id,omitempty"`
	// The prompt as shown to the learner
	QuestionText string `json:"question_text,omitempty"`
	// Expected answer at the time of asking
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Raw submission, empty when skipped
	UserAnswer string `json:"user_answer,omitempty"`
	// Verdict from normalized comparison
	IsCorrect bool `json:"is_correct,omitempty"`
	// Seconds spent on this question
	TimeSpentSeconds int `json:"time_spent_seconds,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionresponse.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case questionresponse.FieldID, questionresponse.FieldTimeSpentSeconds:
			values[i] = new(sql.NullInt64)
		case questionresponse.FieldSessionID, questionresponse.FieldQuestionText, questionresponse.FieldCorrectAnswer, questionresponse.FieldUserAnswer:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionResponse fields.
func (_m *QuestionResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionresponse.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionresponse.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case questionresponse.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case questionresponse.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case questionresponse.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = value.String
			}
		case questionresponse.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case questionresponse.FieldTimeSpentSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_seconds", values[i])
			} else if value.Valid {
				_m.TimeSpentSeconds = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionResponse.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionResponse.
// Note that you need to call QuestionResponse.Unwrap() before calling this method if this QuestionResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionResponse) Update() *QuestionResponseUpdateOne {
	return NewQuestionResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionResponse) Unwrap() *QuestionResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionResponse) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(_m.UserAnswer)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("time_spent_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSeconds))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionResponses is a parsable slice of QuestionResponse.
type QuestionResponses []*QuestionResponse
