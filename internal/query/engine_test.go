package query

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/service"
	"github.com/pennyflow/pennyflow/internal/storage"
)

func newTestEngine(t *testing.T) (*Engine, service.Store) {
	t.Helper()
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return NewEngine(store), store
}

func seedRecord(t *testing.T, store service.Store, recordType model.RecordType, username string, amount float64, date, description string) {
	t.Helper()
	err := store.SaveRecord(context.Background(), &model.Record{
		Type:        recordType,
		Username:    username,
		Amount:      amount,
		Date:        date,
		Source:      "seed",
		Description: description,
		Label:       "manual",
	})
	require.NoError(t, err)
}

func TestSearchEmptyFiltersReturnsFullHistory(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	seedRecord(t, store, model.RecordTypeExpense, "sara", 10, "2024-01-05", "Groceries")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 20, "2024-02-05", "Bus pass")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 30, "2024-03-05", "October rent")
	seedRecord(t, store, model.RecordTypeIncome, "sara", 999, "2024-01-05", "Salary")
	seedRecord(t, store, model.RecordTypeExpense, "reza", 500, "2024-01-05", "Rent")

	result, err := engine.Search(ctx, RawCriteria{RecordType: "expense", Username: "sara"})
	require.NoError(t, err)

	// Only sara's expenses, in storage order.
	require.Len(t, result.Records, 3)
	assert.Equal(t, "Groceries", result.Records[0].Description)
	assert.Equal(t, "Bus pass", result.Records[1].Description)
	assert.Equal(t, "October rent", result.Records[2].Description)
	assert.Equal(t, 60.0, result.TotalAmount)
}

func TestSearchDateRangeInclusive(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	seedRecord(t, store, model.RecordTypeExpense, "sara", 10, "2024-03-01", "on start")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 20, "2024-03-10", "on end")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 30, "2024-03-20", "after end")

	result, err := engine.Search(ctx, RawCriteria{
		RecordType: "expense",
		Username:   "sara",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-10",
	})
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "on start", result.Records[0].Description)
	assert.Equal(t, "on end", result.Records[1].Description)
}

func TestSearchTermMatching(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	seedRecord(t, store, model.RecordTypeExpense, "sara", 800, "2024-10-01", "October rent")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 60, "2024-10-02", "Groceries")

	t.Run("matches substring", func(t *testing.T) {
		result, err := engine.Search(ctx, RawCriteria{
			RecordType: "expense",
			Username:   "sara",
			Term:       "rent",
			Fields:     []string{"description"},
		})
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "October rent", result.Records[0].Description)
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		result, err := engine.Search(ctx, RawCriteria{
			RecordType: "expense",
			Username:   "sara",
			Term:       "RENT",
			Fields:     []string{"description"},
		})
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
	})

	t.Run("no match across unselected fields", func(t *testing.T) {
		result, err := engine.Search(ctx, RawCriteria{
			RecordType: "expense",
			Username:   "sara",
			Term:       "rent",
			Fields:     []string{"type"},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Records)
	})
}

func TestSearchHostileTermIsLiteral(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	hostile := `'; DROP TABLE records; --`
	seedRecord(t, store, model.RecordTypeExpense, "sara", 10, "2024-01-01", "plain entry")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 20, "2024-01-02", "note: "+hostile)

	// The term must be matched as literal content, never parsed as syntax.
	result, err := engine.Search(ctx, RawCriteria{
		RecordType: "expense",
		Username:   "sara",
		Term:       hostile,
		Fields:     []string{"description"},
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "note: "+hostile, result.Records[0].Description)

	// And the table is still intact afterwards.
	all, err := engine.Search(ctx, RawCriteria{RecordType: "expense", Username: "sara"})
	require.NoError(t, err)
	assert.Len(t, all.Records, 2)
}

func TestSearchAmountRangeInclusive(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	seedRecord(t, store, model.RecordTypeExpense, "sara", 0.5, "2024-01-01", "small")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 1, "2024-01-02", "exact")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 5, "2024-01-03", "large")

	t.Run("zero min keeps everything", func(t *testing.T) {
		result, err := engine.Search(ctx, RawCriteria{
			RecordType: "expense", Username: "sara", MinAmount: "0",
		})
		require.NoError(t, err)
		assert.Len(t, result.Records, 3)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		result, err := engine.Search(ctx, RawCriteria{
			RecordType: "expense", Username: "sara", MinAmount: "1", MaxAmount: "5",
		})
		require.NoError(t, err)
		require.Len(t, result.Records, 2)
		assert.Equal(t, "exact", result.Records[0].Description)
		assert.Equal(t, "large", result.Records[1].Description)
	})
}

func TestSearchInvalidCriteria(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Search(context.Background(), RawCriteria{RecordType: "savings", Username: "sara"})
	assert.ErrorIs(t, err, ErrInvalidCriteria)
}

func TestSearchStoreUnavailable(t *testing.T) {
	engine, store := newTestEngine(t)
	require.NoError(t, store.Close())

	_, err := engine.Search(context.Background(), RawCriteria{RecordType: "expense", Username: "sara"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestReportMonthBucket(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	seedRecord(t, store, model.RecordTypeExpense, "sara", 10, "2024-01-31", "january")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 20, "2024-02-01", "first of month")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 30, "2024-02-29", "leap day")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 40, "2024-03-01", "march")

	now, err := time.Parse(model.DateLayout, "2024-02-10")
	require.NoError(t, err)

	result, err := engine.Report(ctx, RawCriteria{RecordType: "expense", Username: "sara"},
		model.DateBucket{Kind: model.BucketMonth}, now)
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "first of month", result.Records[0].Description)
	assert.Equal(t, "leap day", result.Records[1].Description)
	assert.Equal(t, 50.0, result.TotalAmount)
}

func TestReportInvertedCustomBucketIsEmpty(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	seedRecord(t, store, model.RecordTypeExpense, "sara", 10, "2024-03-05", "inside")

	result, err := engine.Report(ctx, RawCriteria{RecordType: "expense", Username: "sara"},
		model.DateBucket{Kind: model.BucketCustom, Start: "2024-03-31", End: "2024-03-01"}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0.0, result.TotalAmount)
}

func TestProportionReport(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	seedRecord(t, store, model.RecordTypeExpense, "sara", 30, "2024-01-15", "january expense")
	seedRecord(t, store, model.RecordTypeExpense, "sara", 70, "2024-02-15", "february expense")
	seedRecord(t, store, model.RecordTypeIncome, "sara", 1000, "2024-01-01", "salary")

	t.Run("filtered share of overall", func(t *testing.T) {
		result, err := engine.ProportionReport(ctx, RawCriteria{
			RecordType: "expense",
			Username:   "sara",
			StartDate:  "2024-01-01",
			EndDate:    "2024-01-31",
		})
		require.NoError(t, err)
		assert.Equal(t, 30.0, result.TotalAmount)
		assert.Equal(t, 100.0, result.OverallTotal)
		assert.Equal(t, 30.0, result.Proportion)
	})

	t.Run("unfiltered equals one hundred percent", func(t *testing.T) {
		result, err := engine.ProportionReport(ctx, RawCriteria{RecordType: "expense", Username: "sara"})
		require.NoError(t, err)
		assert.Equal(t, result.OverallTotal, result.TotalAmount)
		assert.Equal(t, 100.0, result.Proportion)
	})

	t.Run("narrowing never exceeds overall", func(t *testing.T) {
		result, err := engine.ProportionReport(ctx, RawCriteria{
			RecordType: "expense",
			Username:   "sara",
			MinAmount:  "50",
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, result.TotalAmount, result.OverallTotal)
		assert.GreaterOrEqual(t, result.Proportion, 0.0)
		assert.LessOrEqual(t, result.Proportion, 100.0)
	})

	t.Run("empty history yields zero proportion", func(t *testing.T) {
		result, err := engine.ProportionReport(ctx, RawCriteria{RecordType: "expense", Username: "nobody"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.OverallTotal)
		assert.Equal(t, 0.0, result.Proportion)
	})
}

func TestRunUnknownMode(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Run(context.Background(), Request{
		Mode:     "summary",
		Criteria: RawCriteria{RecordType: "expense", Username: "sara"},
	})
	assert.ErrorIs(t, err, ErrInvalidCriteria)
}
