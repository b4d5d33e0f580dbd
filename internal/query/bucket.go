package query

import (
	"fmt"
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

// ResolveBucket turns a date-bucket shortcut into an inclusive
// [start, end] range of ISO dates, relative to the caller-supplied
// reference time. The engine never reads the host clock itself.
//
// Custom bounds are returned verbatim without reordering: an inverted
// range yields an empty result set downstream, not an error.
func ResolveBucket(bucket model.DateBucket, now time.Time) (string, string, error) {
	switch bucket.Kind {
	case model.BucketDay:
		day := now.Format(model.DateLayout)
		return day, day, nil

	case model.BucketMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		// Day 28 plus 4 days always lands in the next month, whatever the
		// length of this one; backing up from its first day gives the last
		// day of the current month, leap years included.
		pivot := time.Date(now.Year(), now.Month(), 28, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 4)
		end := time.Date(pivot.Year(), pivot.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
		return start.Format(model.DateLayout), end.Format(model.DateLayout), nil

	case model.BucketYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return start.Format(model.DateLayout), end.Format(model.DateLayout), nil

	case model.BucketCustom:
		if _, err := time.Parse(model.DateLayout, bucket.Start); err != nil {
			return "", "", fmt.Errorf("%w: custom start %q is not a YYYY-MM-DD date", ErrInvalidCriteria, bucket.Start)
		}
		if _, err := time.Parse(model.DateLayout, bucket.End); err != nil {
			return "", "", fmt.Errorf("%w: custom end %q is not a YYYY-MM-DD date", ErrInvalidCriteria, bucket.End)
		}
		return bucket.Start, bucket.End, nil
	}

	return "", "", fmt.Errorf("%w: unknown bucket kind %q", ErrInvalidCriteria, bucket.Kind)
}
