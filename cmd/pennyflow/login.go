package main

import (
	"errors"
	"fmt"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Verify a user's credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			username := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user, err := store.GetUser(ctx, username)
			if errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("invalid username or password")
			}
			if err != nil {
				return fmt.Errorf("failed to look up user: %w", err)
			}

			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
				return fmt.Errorf("invalid username or password")
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Welcome back, %s.", user.FirstName)))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
