package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres via database/sql on the pgx driver.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, status, job_description, prompt_hash, provider, model,
	result, raw_response, error_message, created_at, completed_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	resultPayload, err := marshalResult(analysis.Result)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.Status,
		analysis.JobDescription,
		analysis.PromptHash,
		analysis.Provider,
		analysis.Model,
		resultPayload,
		nullString(analysis.RawResponse),
		nullStringPtr(analysis.ErrorMessage),
		analysis.CreatedAt,
		nullTimePtr(analysis.CompletedAt),
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, status, job_description, prompt_hash, provider, model,
       result, raw_response, error_message, created_at, completed_at
FROM analyses
WHERE id = $1
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, analysisID)
	analysis, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	return analysis, err
}

// List returns analyses newest first, with limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	const query = `
SELECT id, status, job_description, prompt_hash, provider, model,
       result, raw_response, error_message, created_at, completed_at
FROM analyses
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := []Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var (
		a            Analysis
		result       sql.NullString
		rawResponse  sql.NullString
		errorMessage sql.NullString
		completedAt  sql.NullTime
	)
	err := row.Scan(
		&a.ID,
		&a.Status,
		&a.JobDescription,
		&a.PromptHash,
		&a.Provider,
		&a.Model,
		&result,
		&rawResponse,
		&errorMessage,
		&a.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return Analysis{}, err
	}

	if result.Valid && result.String != "" {
		var parsed Result
		if err := json.Unmarshal([]byte(result.String), &parsed); err != nil {
			return Analysis{}, err
		}
		a.Result = &parsed
	}
	if rawResponse.Valid {
		a.RawResponse = rawResponse.String
	}
	if errorMessage.Valid {
		msg := errorMessage.String
		a.ErrorMessage = &msg
	}
	if completedAt.Valid {
		t := completedAt.Time
		a.CompletedAt = &t
	}
	return a, nil
}

func marshalResult(result *Result) (any, error) {
	if result == nil {
		return nil, nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return string(payload), nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullStringPtr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
