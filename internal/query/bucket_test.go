package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/model"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(model.DateLayout, value)
	require.NoError(t, err)
	return parsed
}

func TestResolveBucket(t *testing.T) {
	tests := []struct {
		name      string
		bucket    model.DateBucket
		now       string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "day is a single date",
			bucket:    model.DateBucket{Kind: model.BucketDay},
			now:       "2024-06-15",
			wantStart: "2024-06-15",
			wantEnd:   "2024-06-15",
		},
		{
			name:      "month in a leap february",
			bucket:    model.DateBucket{Kind: model.BucketMonth},
			now:       "2024-02-10",
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "month in a regular february",
			bucket:    model.DateBucket{Kind: model.BucketMonth},
			now:       "2023-02-10",
			wantStart: "2023-02-01",
			wantEnd:   "2023-02-28",
		},
		{
			name:      "thirty day month",
			bucket:    model.DateBucket{Kind: model.BucketMonth},
			now:       "2024-04-22",
			wantStart: "2024-04-01",
			wantEnd:   "2024-04-30",
		},
		{
			name:      "thirty one day month",
			bucket:    model.DateBucket{Kind: model.BucketMonth},
			now:       "2024-01-05",
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-31",
		},
		{
			name:      "december crosses the year boundary",
			bucket:    model.DateBucket{Kind: model.BucketMonth},
			now:       "2023-12-31",
			wantStart: "2023-12-01",
			wantEnd:   "2023-12-31",
		},
		{
			name:      "year",
			bucket:    model.DateBucket{Kind: model.BucketYear},
			now:       "2024-07-04",
			wantStart: "2024-01-01",
			wantEnd:   "2024-12-31",
		},
		{
			name:      "custom range returned verbatim",
			bucket:    model.DateBucket{Kind: model.BucketCustom, Start: "2024-03-01", End: "2024-03-15"},
			now:       "2024-06-15",
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-15",
		},
		{
			name:      "inverted custom range is not reordered",
			bucket:    model.DateBucket{Kind: model.BucketCustom, Start: "2024-03-15", End: "2024-03-01"},
			now:       "2024-06-15",
			wantStart: "2024-03-15",
			wantEnd:   "2024-03-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ResolveBucket(tt.bucket, date(t, tt.now))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolveBucketErrors(t *testing.T) {
	now := date(t, "2024-06-15")

	t.Run("custom with malformed start", func(t *testing.T) {
		_, _, err := ResolveBucket(model.DateBucket{Kind: model.BucketCustom, Start: "yesterday", End: "2024-06-15"}, now)
		assert.ErrorIs(t, err, ErrInvalidCriteria)
	})

	t.Run("custom with missing end", func(t *testing.T) {
		_, _, err := ResolveBucket(model.DateBucket{Kind: model.BucketCustom, Start: "2024-06-01"}, now)
		assert.ErrorIs(t, err, ErrInvalidCriteria)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := ResolveBucket(model.DateBucket{Kind: "fortnight"}, now)
		assert.ErrorIs(t, err, ErrInvalidCriteria)
	})
}
