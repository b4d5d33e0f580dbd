// Package query implements the filtered record query and reporting engine:
// it turns user-supplied filter criteria into injection-safe conjunctive
// predicates, runs them against a Store, and derives totals and
// proportions from the results.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/service"
)

// Mode selects which aggregates a request computes. All modes return the
// matched records and their total; proportion reports additionally relate
// that total to the user's unfiltered overall total.
type Mode string

// Request modes.
const (
	ModeSearch           Mode = "search"
	ModeReport           Mode = "report"
	ModeProportionReport Mode = "proportion"
)

// Request is one query or report request. Bucket, when set, resolves
// against Now and supplies the date range; Now is always caller-provided
// so the engine never depends on the host clock.
type Request struct {
	Bucket   *model.DateBucket
	Criteria RawCriteria
	Mode     Mode
	Now      time.Time
}

// Engine runs query and report requests against an injected Store. It
// keeps no state between calls; a failed request leaves nothing behind.
type Engine struct {
	store service.Store
}

// NewEngine creates a query engine backed by the given store.
func NewEngine(store service.Store) *Engine {
	return &Engine{store: store}
}

// Search runs a filtered query and computes the matched total.
func (e *Engine) Search(ctx context.Context, raw RawCriteria) (*model.QueryResult, error) {
	return e.Run(ctx, Request{Mode: ModeSearch, Criteria: raw})
}

// Report runs a query scoped to a date bucket resolved against now.
func (e *Engine) Report(ctx context.Context, raw RawCriteria, bucket model.DateBucket, now time.Time) (*model.QueryResult, error) {
	return e.Run(ctx, Request{Mode: ModeReport, Criteria: raw, Bucket: &bucket, Now: now})
}

// ProportionReport runs a filtered query and relates its total to the
// user's overall total for the same record type.
func (e *Engine) ProportionReport(ctx context.Context, raw RawCriteria) (*model.QueryResult, error) {
	return e.Run(ctx, Request{Mode: ModeProportionReport, Criteria: raw})
}

// Run executes one request: normalize, resolve the bucket if present,
// build predicates, fetch, aggregate. Criteria problems surface as
// ErrInvalidCriteria before the store is touched; store failures surface
// as ErrStoreUnavailable without retry.
func (e *Engine) Run(ctx context.Context, req Request) (*model.QueryResult, error) {
	switch req.Mode {
	case ModeSearch, ModeReport, ModeProportionReport:
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidCriteria, req.Mode)
	}

	criteria, err := Normalize(req.Criteria)
	if err != nil {
		return nil, err
	}

	if req.Bucket != nil {
		start, end, err := ResolveBucket(*req.Bucket, req.Now)
		if err != nil {
			return nil, err
		}
		criteria.StartDate = start
		criteria.EndDate = end
	}

	predicates, params := BuildPredicates(criteria)

	records, err := e.store.FindRecords(ctx, criteria.Type, predicates, params)
	if err != nil {
		// Corrupt stored dates are a data-integrity problem, not an
		// availability one; let the caller tell them apart.
		if errors.Is(err, common.ErrCorruptDate) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	result := &model.QueryResult{
		Records:     records,
		TotalAmount: SumAmounts(records),
	}

	if req.Mode == ModeProportionReport {
		overall, err := e.store.SumAllRecords(ctx, criteria.Type, criteria.Username)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		result.OverallTotal = overall
		result.Proportion = ProportionOf(result.TotalAmount, overall)
	}

	slog.Debug("query completed",
		"mode", req.Mode,
		"type", criteria.Type,
		"matched", len(result.Records),
		"total", result.TotalAmount)
	return result, nil
}
