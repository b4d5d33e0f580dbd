package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
)

// userColumns maps updatable profile fields to their columns. Update
// targets come only from this map, never from caller input.
var userColumns = map[string]string{
	"password":  "password_hash",
	"email":     "email",
	"birthdate": "birthdate",
	"phone":     "phone",
	"city":      "city",
}

// CreateUser registers a new user. Usernames are unique.
func (s *SQLiteStorage) CreateUser(ctx context.Context, user *model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUser(user); err != nil {
		return err
	}

	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)
	`, user.Username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: username %q", common.ErrDuplicateEntry, user.Username)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (username, first_name, last_name, phone, password_hash,
			city, email, birthdate, security_question, security_answer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, user.Username, user.FirstName, user.LastName, user.Phone, user.PasswordHash,
		user.City, user.Email, user.Birthdate, user.SecurityQuestion, user.SecurityAnswer)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	slog.Info("registered user", "username", user.Username)
	return nil
}

// GetUser fetches a user by username.
func (s *SQLiteStorage) GetUser(ctx context.Context, username string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(username, "username"); err != nil {
		return nil, err
	}

	var user model.User
	var question, answer sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT username, first_name, last_name, phone, password_hash,
		       city, email, birthdate, security_question, security_answer, created_at
		FROM users
		WHERE username = ?
	`, username).Scan(
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.PasswordHash,
		&user.City,
		&user.Email,
		&user.Birthdate,
		&question,
		&answer,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if question.Valid {
		user.SecurityQuestion = question.String
	}
	if answer.Valid {
		user.SecurityAnswer = answer.String
	}

	return &user, nil
}

// UpdateUserField updates one profile field. The field name must be one of
// the updatable fields; values for the password field must already be
// hashed by the caller.
func (s *SQLiteStorage) UpdateUserField(ctx context.Context, username, field, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(username, "username"); err != nil {
		return err
	}

	column, ok := userColumns[field]
	if !ok {
		return fmt.Errorf("%w: field %q is not updatable", ErrInvalidUser, field)
	}

	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE users SET %s = ? WHERE username = ?", column),
		value, username)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	slog.Info("updated user field", "username", username, "field", field)
	return nil
}

// DeleteUser removes a user account.
func (s *SQLiteStorage) DeleteUser(ctx context.Context, username string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(username, "username"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	slog.Info("deleted user", "username", username)
	return nil
}
