package runstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

const DefaultTable = "generation_runs"

var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// PostgresStore keeps one row per run. The full record lives in a JSONB column;
// the other columns exist for ad hoc queries.
type PostgresStore struct {
	db    *sql.DB
	table string
}

func NewPostgresStore(db *sql.DB, table string) (*PostgresStore, error) {
	if table == "" {
		table = DefaultTable
	}
	if !identPattern.MatchString(table) {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid run table name %q", table))
	}
	return &PostgresStore{db: db, table: table}, nil
}

// EnsureSchema creates the table when it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	seq BIGSERIAL PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	preset_id TEXT NOT NULL,
	success BOOLEAN NOT NULL,
	duration_ms BIGINT NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL,
	record JSONB NOT NULL
)`, s.table)
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return errors.NewStoreError("migrate", err)
	}
	return nil
}

func (s *PostgresStore) Add(ctx context.Context, run models.GenerationRun) error {
	record, err := json.Marshal(run)
	if err != nil {
		return errors.NewStoreError("encode", err)
	}
	q := fmt.Sprintf(`INSERT INTO %s (id, preset_id, success, duration_ms, completed_at, record) VALUES ($1, $2, $3, $4, $5, $6)`, s.table)
	if _, err := s.db.ExecContext(ctx, q, run.ID, run.PresetID, run.Success, run.Duration, run.EndTime, record); err != nil {
		return errors.NewStoreError("add", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.GenerationRun, error) {
	q := fmt.Sprintf(`SELECT record FROM %s ORDER BY seq`, s.table)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.NewStoreError("list", err)
	}
	defer rows.Close()

	runs := []models.GenerationRun{}
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, errors.NewStoreError("scan", err)
		}
		var run models.GenerationRun
		if err := json.Unmarshal(record, &run); err != nil {
			return nil, errors.NewStoreError("decode", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("list", err)
	}
	return runs, nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, s.table)); err != nil {
		return errors.NewStoreError("clear", err)
	}
	return nil
}
