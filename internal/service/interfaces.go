// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/pennyflow/pennyflow/internal/model"
)

// Store defines the contract for our persistence layer.
//
// FindRecords applies the given predicates conjunctively within the scope
// of one record type; predicates are SQL fragments assembled by the query
// engine from a fixed column whitelist, with every user-supplied value in
// params. SumAllRecords ignores filters and totals every record a user
// owns of the given type.
type Store interface {
	// Record operations
	SaveRecord(ctx context.Context, record *model.Record) error
	FindRecords(ctx context.Context, recordType model.RecordType, predicates []string, params []any) ([]model.Record, error)
	SumAllRecords(ctx context.Context, recordType model.RecordType, username string) (float64, error)

	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, username string) (*model.User, error)
	UpdateUserField(ctx context.Context, username, field, value string) error
	DeleteUser(ctx context.Context, username string) error

	// Category operations
	CreateCategory(ctx context.Context, username, name string) (*model.Category, error)
	GetCategories(ctx context.Context, username string) ([]model.Category, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
