package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

// RawCriteria is filter input exactly as collected from the user: all
// strings, nothing validated yet.
type RawCriteria struct {
	RecordType string
	Username   string
	Term       string
	StartDate  string
	EndDate    string
	MinAmount  string
	MaxAmount  string
	Fields     []string
}

// Normalize validates and canonicalizes raw filter input into a
// SearchCriteria. It is a pure function; every failure is ErrInvalidCriteria
// and happens before any store access.
//
// Amount bounds accept zero: "amount >= 0" is a legitimate filter even
// though records themselves are created with strictly positive amounts.
func Normalize(raw RawCriteria) (model.SearchCriteria, error) {
	var criteria model.SearchCriteria

	recordType := model.RecordType(raw.RecordType)
	if !recordType.Valid() {
		return criteria, fmt.Errorf("%w: unknown record type %q", ErrInvalidCriteria, raw.RecordType)
	}
	if strings.TrimSpace(raw.Username) == "" {
		return criteria, fmt.Errorf("%w: username is required", ErrInvalidCriteria)
	}

	startDate, err := normalizeDate(raw.StartDate, "start date")
	if err != nil {
		return criteria, err
	}
	endDate, err := normalizeDate(raw.EndDate, "end date")
	if err != nil {
		return criteria, err
	}

	minAmount, err := normalizeBound(raw.MinAmount, "min amount")
	if err != nil {
		return criteria, err
	}
	maxAmount, err := normalizeBound(raw.MaxAmount, "max amount")
	if err != nil {
		return criteria, err
	}

	term := raw.Term
	var fields []model.SearchField
	if term != "" {
		if len(raw.Fields) == 0 {
			return criteria, fmt.Errorf("%w: search term given but no fields selected", ErrInvalidCriteria)
		}
		fields = make([]model.SearchField, 0, len(raw.Fields))
		for _, name := range raw.Fields {
			field := model.SearchField(name)
			if !field.Valid() {
				return criteria, fmt.Errorf("%w: unknown search field %q", ErrInvalidCriteria, name)
			}
			fields = append(fields, field)
		}
	}

	criteria = model.SearchCriteria{
		Type:      recordType,
		Username:  raw.Username,
		Term:      term,
		Fields:    fields,
		StartDate: startDate,
		EndDate:   endDate,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
	}
	return criteria, nil
}

// normalizeDate parses an optional ISO date. Empty means unbounded.
func normalizeDate(raw, what string) (string, error) {
	if raw == "" {
		return "", nil
	}
	t, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s %q is not a YYYY-MM-DD date", ErrInvalidCriteria, what, raw)
	}
	return t.Format(model.DateLayout), nil
}

// normalizeBound parses an optional amount bound. Empty means unbounded.
func normalizeBound(raw, what string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil, fmt.Errorf("%w: %s %q is not a non-negative number", ErrInvalidCriteria, what, raw)
	}
	return &f, nil
}
