package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
)

// CreateCategory adds a category name for a user.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, username, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(username, "username"); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var existingID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM categories WHERE username = ? AND name = ?
	`, username, name).Scan(&existingID)
	if err == nil {
		return nil, fmt.Errorf("%w: category %q", common.ErrDuplicateEntry, name)
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (username, name, created_at)
		VALUES (?, ?, ?)
	`, username, name, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	category := &model.Category{
		ID:        id,
		Username:  username,
		Name:      name,
		CreatedAt: now,
	}

	slog.Info("created category", "username", username, "name", name, "id", id)
	return category, nil
}

// GetCategories returns a user's categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context, username string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(username, "username"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, name, created_at
		FROM categories
		WHERE username = ?
		ORDER BY name
	`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Username, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "username", username, "count", len(categories))
	return categories, nil
}
