package datemath

import "time"

// RuleKind names the date-expression family that resolved an utterance.
type RuleKind string

const (
	RuleTomorrow RuleKind = "tomorrow"
	RuleToday    RuleKind = "today"
	RuleNextWeek RuleKind = "next_week"
	RuleInDays   RuleKind = "in_days"
	RuleWeekday  RuleKind = "weekday"
	RuleExplicit RuleKind = "explicit"
	RuleFallback RuleKind = "fallback"
)

// Default time-of-day applied when the text carries no clock expression.
const (
	DefaultHour   = 9
	DefaultMinute = 0
)

// TaskInfo is the extraction result handed to task-creation callers.
type TaskInfo struct {
	Title   string
	DueDate time.Time
}

// Resolution describes how an utterance was resolved.
type Resolution struct {
	Kind        RuleKind
	DateClause  string // text matched by the winning date rule, empty on fallback
	TimeClause  string // text matched by the clock pattern, empty when defaulted
	DefaultTime bool
	Date        time.Time // midnight of the resolved day
	DueDate     time.Time
}
