package model

// SearchField names one record field a free-text term may be matched
// against. The set of valid fields is fixed; user input never introduces
// new field names.
type SearchField string

// Searchable record fields.
const (
	FieldAmount      SearchField = "amount"
	FieldDate        SearchField = "date"
	FieldSource      SearchField = "source_or_category"
	FieldDescription SearchField = "description"
	FieldLabel       SearchField = "type"
)

// SearchFields lists every searchable field, in the order they are
// presented to users.
func SearchFields() []SearchField {
	return []SearchField{FieldAmount, FieldDate, FieldSource, FieldDescription, FieldLabel}
}

// Valid reports whether f is one of the known searchable fields.
func (f SearchField) Valid() bool {
	switch f {
	case FieldAmount, FieldDate, FieldSource, FieldDescription, FieldLabel:
		return true
	}
	return false
}

// SearchCriteria is a normalized, validated filter over one user's records
// of one type. It is constructed once per request and never mutated.
//
// Empty StartDate/EndDate mean unbounded on that side. Nil MinAmount and
// MaxAmount mean no amount bound. A Term without at least one field is
// invalid and rejected by the normalizer.
type SearchCriteria struct {
	MinAmount *float64
	MaxAmount *float64
	Type      RecordType
	Username  string
	Term      string
	StartDate string // ISO calendar date, inclusive
	EndDate   string // ISO calendar date, inclusive
	Fields    []SearchField
}
