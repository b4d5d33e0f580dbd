package main

import (
	"fmt"
	"strings"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/query"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var (
		username   string
		recordType string
		term       string
		fields     string
		startDate  string
		endDate    string
		minAmount  string
		maxAmount  string
	)

	fieldNames := make([]string, 0, len(model.SearchFields()))
	for _, f := range model.SearchFields() {
		fieldNames = append(fieldNames, string(f))
	}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a user's records",
		Long: `Search one user's incomes or expenses by free-text term, date range
and amount range. All given filters must match.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := query.NewEngine(store)
			result, err := engine.Search(ctx, query.RawCriteria{
				RecordType: recordType,
				Username:   username,
				Term:       term,
				Fields:     splitFields(fields),
				StartDate:  startDate,
				EndDate:    endDate,
				MinAmount:  minAmount,
				MaxAmount:  maxAmount,
			})
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			printRecords(result.Records)
			fmt.Println(cli.SummaryStyle.Render(fmt.Sprintf("Total: %.2f (%d records)", result.TotalAmount, len(result.Records))))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "owner username (required)")
	cmd.Flags().StringVar(&recordType, "type", "expense", "record type (income, expense)")
	cmd.Flags().StringVar(&term, "term", "", "free-text search term")
	cmd.Flags().StringVar(&fields, "fields", strings.Join(fieldNames, ","),
		"comma-separated fields to match the term against")
	cmd.Flags().StringVar(&startDate, "start", "", "start date, YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date, YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&minAmount, "min", "", "minimum amount (inclusive)")
	cmd.Flags().StringVar(&maxAmount, "max", "", "maximum amount (inclusive)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
