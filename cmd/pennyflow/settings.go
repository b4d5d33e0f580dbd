package main

import (
	"fmt"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/validate"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Update or delete a user account",
	}

	cmd.AddCommand(updateSettingCmd())
	cmd.AddCommand(deleteUserCmd())

	return cmd
}

func updateSettingCmd() *cobra.Command {
	var (
		username string
		field    string
		value    string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update one profile field",
		Long:  `Update one of: password, email, birthdate, phone, city. The new value is validated first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			switch field {
			case "password":
				if !validate.Password(value) {
					return fmt.Errorf("invalid password format")
				}
			case "email":
				if !validate.Email(value) {
					return fmt.Errorf("invalid email format")
				}
			case "birthdate":
				if !validate.Birthdate(value) {
					return fmt.Errorf("invalid birthdate format")
				}
			case "phone":
				if !validate.Phone(value) {
					return fmt.Errorf("invalid phone format")
				}
			case "city":
				if !validate.City(value) {
					return fmt.Errorf("invalid city")
				}
			default:
				return fmt.Errorf("unknown field %q: choose password, email, birthdate, phone or city", field)
			}

			stored := value
			if field == "password" {
				hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
				if err != nil {
					return fmt.Errorf("failed to hash password: %w", err)
				}
				stored = string(hash)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateUserField(ctx, username, field, stored); err != nil {
				return fmt.Errorf("failed to update %s: %w", field, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s for %q.", field, username)))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	cmd.Flags().StringVar(&field, "field", "", "field to update (required)")
	cmd.Flags().StringVar(&value, "value", "", "new value (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func deleteUserCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteUser(ctx, username); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted user %q.", username)))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
