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

// SaveRecord stores one income or expense record.
func (s *SQLiteStorage) SaveRecord(ctx context.Context, record *model.Record) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecord(record); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO records (record_type, username, amount, date, source, description, type)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, string(record.Type), record.Username, record.Amount, record.Date,
		record.Source, record.Description, record.Label)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get record ID: %w", err)
	}
	record.ID = id

	slog.Debug("saved record",
		"id", id,
		"type", record.Type,
		"username", record.Username)
	return nil
}

// FindRecords returns the records of one type matching every predicate, in
// storage order. Predicates are SQL fragments over whitelisted columns;
// all user-supplied values arrive through params.
func (s *SQLiteStorage) FindRecords(ctx context.Context, recordType model.RecordType, predicates []string, params []any) ([]model.Record, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !recordType.Valid() {
		return nil, fmt.Errorf("%w: unknown record type %q", ErrInvalidRecord, recordType)
	}

	query := `
		SELECT id, record_type, username, amount, date, source, description, type
		FROM records
		WHERE record_type = ?`
	args := make([]any, 0, len(params)+1)
	args = append(args, string(recordType))

	for _, predicate := range predicates {
		query += " AND " + predicate
	}
	args = append(args, params...)

	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanRecords(rows)
}

// SumAllRecords totals every record a user owns of the given type,
// ignoring filters. An empty history sums to zero.
func (s *SQLiteStorage) SumAllRecords(ctx context.Context, recordType model.RecordType, username string) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if !recordType.Valid() {
		return 0, fmt.Errorf("%w: unknown record type %q", ErrInvalidRecord, recordType)
	}
	if err := validateString(username, "username"); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM records
		WHERE record_type = ? AND username = ?
	`, string(recordType), username).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum records: %w", err)
	}

	return total, nil
}

// scanRecords reads record rows, verifying every stored date still parses
// as an ISO calendar date.
func scanRecords(rows *sql.Rows) ([]model.Record, error) {
	var records []model.Record
	for rows.Next() {
		var record model.Record
		var recordType string
		var source, description, label sql.NullString

		err := rows.Scan(
			&record.ID,
			&recordType,
			&record.Username,
			&record.Amount,
			&record.Date,
			&source,
			&description,
			&label,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		if _, err := time.Parse(model.DateLayout, record.Date); err != nil {
			return nil, fmt.Errorf("record %d: %w", record.ID, common.ErrCorruptDate)
		}

		record.Type = model.RecordType(recordType)
		if source.Valid {
			record.Source = source.String
		}
		if description.Valid {
			record.Description = description.String
		}
		if label.Valid {
			record.Label = label.String
		}

		records = append(records, record)
	}

	return records, rows.Err()
}
