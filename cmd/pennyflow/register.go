package main

import (
	"fmt"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/validate"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func registerCmd() *cobra.Command {
	var (
		firstName        string
		lastName         string
		phone            string
		password         string
		confirm          string
		city             string
		email            string
		birthdate        string
		securityQuestion string
		securityAnswer   string
	)

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new user",
		Long:  `Create a new user account. Every field is validated before anything is stored.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			username := args[0]

			if !validate.Name(firstName) {
				return fmt.Errorf("invalid first name: use English letters only")
			}
			if !validate.Name(lastName) {
				return fmt.Errorf("invalid last name: use English letters only")
			}
			if !validate.Phone(phone) {
				return fmt.Errorf("invalid phone number: must start with 09 and be 11 digits long")
			}
			if !validate.Password(password) {
				return fmt.Errorf("invalid password: must be at least 6 characters with a lowercase letter, an uppercase letter, a digit and a symbol")
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}
			if !validate.City(city) {
				return fmt.Errorf("invalid city: choose one of %v", validate.Cities())
			}
			if !validate.Email(email) {
				return fmt.Errorf("invalid email")
			}
			if !validate.Birthdate(birthdate) {
				return fmt.Errorf("invalid birthdate: use YYYY-MM-DD with a year between 1920 and 2005")
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user := &model.User{
				Username:         username,
				FirstName:        firstName,
				LastName:         lastName,
				Phone:            phone,
				PasswordHash:     string(hash),
				City:             city,
				Email:            email,
				Birthdate:        birthdate,
				SecurityQuestion: securityQuestion,
				SecurityAnswer:   securityAnswer,
			}
			if err := store.CreateUser(ctx, user); err != nil {
				return fmt.Errorf("failed to register: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Registered %q. You can now log in.", username)))
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "password confirmation (required)")
	cmd.Flags().StringVar(&city, "city", "", "city (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "birthdate, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&securityQuestion, "security-question", "", "security question")
	cmd.Flags().StringVar(&securityAnswer, "security-answer", "", "security answer")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm-password")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("birthdate")

	return cmd
}
