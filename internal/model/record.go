// Package model defines the core domain types for pennyflow.
package model

import "time"

// DateLayout is the ISO calendar date form all record dates are
// normalized to. Dates are compared as strings, which is safe because
// the layout sorts lexicographically.
const DateLayout = "2006-01-02"

// RecordType selects which scope of a user's history a record belongs to.
type RecordType string

// Valid record types.
const (
	RecordTypeIncome  RecordType = "income"
	RecordTypeExpense RecordType = "expense"
)

// Valid reports whether rt is one of the known record types.
func (rt RecordType) Valid() bool {
	return rt == RecordTypeIncome || rt == RecordTypeExpense
}

// Record is one income or expense entry. A record is owned by exactly one
// username and is immutable once created.
type Record struct {
	ID          int64
	Type        RecordType
	Username    string
	Amount      float64
	Date        string // ISO calendar date (DateLayout)
	Source      string // income source or expense category
	Description string
	Label       string // free-form type tag entered by the user
}

// ParseDate returns the record date as a time.Time. A failure here means
// the stored value is not a valid ISO date and should be treated as a
// data-integrity error, not skipped.
func (r *Record) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}
