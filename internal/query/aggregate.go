package query

import "github.com/pennyflow/pennyflow/internal/model"

// SumAmounts totals the amounts of a record sequence. Empty input sums to
// zero.
func SumAmounts(records []model.Record) float64 {
	var total float64
	for _, record := range records {
		total += record.Amount
	}
	return total
}

// ProportionOf returns total as a percentage of overall. A zero overall
// total is defined to yield zero, not a division error.
func ProportionOf(total, overall float64) float64 {
	if overall == 0 {
		return 0
	}
	return 100 * total / overall
}
