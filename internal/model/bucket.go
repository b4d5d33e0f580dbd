package model

// BucketKind selects how a report's date range is derived.
type BucketKind string

// Supported bucket kinds.
const (
	BucketDay    BucketKind = "day"
	BucketMonth  BucketKind = "month"
	BucketYear   BucketKind = "year"
	BucketCustom BucketKind = "custom"
)

// Valid reports whether k is a known bucket kind.
func (k BucketKind) Valid() bool {
	switch k {
	case BucketDay, BucketMonth, BucketYear, BucketCustom:
		return true
	}
	return false
}

// DateBucket is a date-range shortcut for reports: a named period relative
// to a caller-supplied reference time, or an explicit custom range.
// Start and End are only consulted for BucketCustom.
type DateBucket struct {
	Kind  BucketKind
	Start string
	End   string
}
