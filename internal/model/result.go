package model

import "github.com/shopspring/decimal"

// QueryResult bundles the records matched by a query with the aggregates
// derived from them. Records keep the order the store returned them in.
//
// OverallTotal and Proportion are only populated for proportion reports:
// OverallTotal sums every record of the same user and type ignoring
// filters, and Proportion is TotalAmount as a percentage of it. When the
// overall total is zero the proportion is defined as zero.
type QueryResult struct {
	Records      []Record
	TotalAmount  float64
	OverallTotal float64
	Proportion   float64
}

// RoundedProportion returns the proportion rounded half-up to two decimal
// places for display. The Proportion field itself keeps full precision.
func (r *QueryResult) RoundedProportion() float64 {
	rounded, _ := decimal.NewFromFloat(r.Proportion).Round(2).Float64()
	return rounded
}
