package main

import (
	"fmt"
	"time"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/query"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var (
		username   string
		recordType string
		bucket     string
		startDate  string
		endDate    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Total a user's records over a period",
		Long: `Total one user's incomes or expenses over a period: today, this month,
this year, or a custom date range.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := query.NewEngine(store)
			result, err := engine.Report(ctx, query.RawCriteria{
				RecordType: recordType,
				Username:   username,
			}, model.DateBucket{
				Kind:  model.BucketKind(bucket),
				Start: startDate,
				End:   endDate,
			}, time.Now())
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}

			printRecords(result.Records)
			fmt.Println(cli.SummaryStyle.Render(fmt.Sprintf("Total: %.2f", result.TotalAmount)))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "owner username (required)")
	cmd.Flags().StringVar(&recordType, "type", "expense", "record type (income, expense)")
	cmd.Flags().StringVar(&bucket, "bucket", "month", "period (day, month, year, custom)")
	cmd.Flags().StringVar(&startDate, "start", "", "custom period start, YYYY-MM-DD")
	cmd.Flags().StringVar(&endDate, "end", "", "custom period end, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("username")

	cmd.AddCommand(proportionReportCmd())

	return cmd
}

func proportionReportCmd() *cobra.Command {
	var (
		username   string
		recordType string
		startDate  string
		endDate    string
		minAmount  string
		maxAmount  string
	)

	cmd := &cobra.Command{
		Use:   "proportion",
		Short: "Relate a filtered total to the overall total",
		Long: `Total the records matching the given filters and show what share of
the user's all-time total for that record type they represent.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := query.NewEngine(store)
			result, err := engine.ProportionReport(ctx, query.RawCriteria{
				RecordType: recordType,
				Username:   username,
				StartDate:  startDate,
				EndDate:    endDate,
				MinAmount:  minAmount,
				MaxAmount:  maxAmount,
			})
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}

			printRecords(result.Records)
			fmt.Println(cli.SummaryStyle.Render(fmt.Sprintf(
				"Total: %.2f, Proportion: %.2f%%, Overall Total: %.2f",
				result.TotalAmount, result.RoundedProportion(), result.OverallTotal)))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "owner username (required)")
	cmd.Flags().StringVar(&recordType, "type", "expense", "record type (income, expense)")
	cmd.Flags().StringVar(&startDate, "start", "", "start date, YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date, YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&minAmount, "min", "", "minimum amount (inclusive)")
	cmd.Flags().StringVar(&maxAmount, "max", "", "maximum amount (inclusive)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
