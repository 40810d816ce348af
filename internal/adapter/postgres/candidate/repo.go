// Package candidate implements the candidate registry repository using
// PostgreSQL. Deactivation is logical (status flip) so historical votes
// remain attributable.
package candidate

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// Repo provides candidate registry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new candidate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const candidateColumns = `id, full_name, national_id, birth_date, program, semester, email,
	photo_url, status, registered_by, created_at`

const createSQL = `
INSERT INTO candidates (id, full_name, national_id, birth_date, program, semester, email,
	photo_url, status, registered_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + candidateColumns

const getByIDSQL = `
SELECT ` + candidateColumns + `
FROM candidates
WHERE id = $1`

const retireSQL = `
UPDATE candidates SET status = 'RETIRED' WHERE id = $1 AND status = 'ACTIVE'`

const countActiveSQL = `
SELECT count(*) FROM candidates WHERE status = 'ACTIVE'`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a candidate by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	candidate, err := scanCandidate(row)
	if err != nil {
		return nil, mapError(err, "candidate", id)
	}

	return candidate, nil
}

// List returns candidates matching the filter, ordered by full name.
func (r *Repo) List(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Candidate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("id", "full_name", "national_id", "birth_date", "program", "semester",
			"email", "photo_url", "status", "registered_by", "created_at").
		From("candidates").
		OrderBy("full_name ASC", "id ASC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Program != "" {
		builder = builder.Where(sq.Eq{"program": filter.Program})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []*domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("list candidates: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	return candidates, nil
}

// CountActive returns the number of candidates eligible to receive votes.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countActiveSQL).Scan(&total); err != nil {
		return 0, fmt.Errorf("count active candidates: %w", err)
	}

	return total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new candidate and returns the persisted domain.Candidate.
// A duplicate national_id surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := c.CreatedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		c.ID,
		c.FullName,
		c.NationalID,
		c.BirthDate,
		c.Program,
		c.Semester,
		c.Email,
		c.PhotoURL,
		string(c.Status),
		c.RegisteredBy,
		createdAt,
	)

	created, err := scanCandidate(row)
	if err != nil {
		return nil, mapError(err, "candidate", c.ID)
	}

	return created, nil
}

// Retire logically deactivates a candidate. Historical votes keep their
// ledger rows; the candidate just stops appearing in tallies and listings.
// Returns domain.ErrNotFound if the candidate does not exist or is already retired.
func (r *Repo) Retire(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, retireSQL, id)
	if err != nil {
		return mapError(err, "candidate", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var (
		c      domain.Candidate
		status string
	)

	if err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.NationalID,
		&c.BirthDate,
		&c.Program,
		&c.Semester,
		&c.Email,
		&c.PhotoURL,
		&status,
		&c.RegisteredBy,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = domain.ActivityStatus(status)

	return &c, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
