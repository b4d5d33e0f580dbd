package query

import (
	"strings"

	"github.com/pennyflow/pennyflow/internal/model"
)

// searchColumns maps the searchable fields to their storage columns.
// Column names in predicates come only from this map; user input can pick
// entries but never add to them.
var searchColumns = map[model.SearchField]string{
	model.FieldAmount:      "amount",
	model.FieldDate:        "date",
	model.FieldSource:      "source",
	model.FieldDescription: "description",
	model.FieldLabel:       "type",
}

// BuildPredicates translates normalized criteria into conjunctive SQL
// predicates plus positional parameters. The ownership predicate always
// comes first; the rest follow in a fixed order, each present only when
// its criterion is set. Every user-supplied value goes into params, never
// into the predicate text.
func BuildPredicates(criteria model.SearchCriteria) ([]string, []any) {
	predicates := []string{"username = ?"}
	params := []any{criteria.Username}

	if criteria.Term != "" && len(criteria.Fields) > 0 {
		// One disjunction over the selected fields, parenthesized so it
		// ANDs with the rest as a unit. LIKE gives the case-insensitive
		// substring match.
		parts := make([]string, 0, len(criteria.Fields))
		for _, field := range criteria.Fields {
			column, ok := searchColumns[field]
			if !ok {
				continue
			}
			parts = append(parts, column+" LIKE ?")
			params = append(params, "%"+criteria.Term+"%")
		}
		if len(parts) > 0 {
			predicates = append(predicates, "("+strings.Join(parts, " OR ")+")")
		}
	}

	if criteria.StartDate != "" {
		predicates = append(predicates, "date >= ?")
		params = append(params, criteria.StartDate)
	}
	if criteria.EndDate != "" {
		predicates = append(predicates, "date <= ?")
		params = append(params, criteria.EndDate)
	}
	if criteria.MinAmount != nil {
		predicates = append(predicates, "amount >= ?")
		params = append(params, *criteria.MinAmount)
	}
	if criteria.MaxAmount != nil {
		predicates = append(predicates, "amount <= ?")
		params = append(params, *criteria.MaxAmount)
	}

	return predicates, params
}
