package main

import (
	"fmt"
	"strconv"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/validate"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
	}

	cmd.AddCommand(addRecordCmd(model.RecordTypeIncome, "income", "source"))
	cmd.AddCommand(addRecordCmd(model.RecordTypeExpense, "expense", "category"))

	return cmd
}

// addRecordCmd builds the add subcommand for one record type. Incomes name
// their origin a source, expenses a category; both land in the same
// record field.
func addRecordCmd(recordType model.RecordType, use, originFlag string) *cobra.Command {
	var (
		username    string
		amount      string
		date        string
		origin      string
		description string
		label       string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Record an %s", use),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !validate.Amount(amount) {
				return fmt.Errorf("invalid amount: must be a number greater than zero")
			}
			if !validate.Date(date) {
				return fmt.Errorf("invalid date: use YYYY-MM-DD")
			}
			value, err := strconv.ParseFloat(amount, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			record := &model.Record{
				Type:        recordType,
				Username:    username,
				Amount:      value,
				Date:        date,
				Source:      origin,
				Description: description,
				Label:       label,
			}
			if err := store.SaveRecord(ctx, record); err != nil {
				return fmt.Errorf("failed to save %s: %w", use, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s of %.2f on %s.", use, value, date)))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "owner username (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&origin, originFlag, "", fmt.Sprintf("%s of the %s", originFlag, use))
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&label, "type", "", "free-text type tag")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
