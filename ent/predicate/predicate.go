// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// AssessmentSession is the predicate function for assessmentsession builders.
type AssessmentSession func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuestionResponse is the predicate function for questionresponse builders.
type QuestionResponse func(*sql.Selector)

// TopicProgress is the predicate function for topicprogress builders.
type TopicProgress func(*sql.Selector)

// UserSetting is the predicate function for usersetting builders.
type UserSetting func(*sql.Selector)
