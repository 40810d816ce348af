// Package voter implements the voter registry repository using PostgreSQL.
// The per-category has_voted flags on the voter row are a cache of the vote
// ledger; MarkVoted is only ever called inside the vote commit transaction.
package voter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// Repo provides voter registry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new voter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const voterColumns = `id, username, password_hash, full_name, email, role, status,
	has_voted_queen, voted_queen_at, has_voted_photogenic, voted_photogenic_at,
	last_login_at, created_at`

const createSQL = `
INSERT INTO voters (id, username, password_hash, full_name, email, role, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + voterColumns

const getByIDSQL = `
SELECT ` + voterColumns + `
FROM voters
WHERE id = $1`

const getByUsernameSQL = `
SELECT ` + voterColumns + `
FROM voters
WHERE username = $1`

// The has_voted guard in the WHERE clause makes the flag transition
// one-way: a second MarkVoted for the same category affects zero rows.
const markVotedQueenSQL = `
UPDATE voters
SET has_voted_queen = true, voted_queen_at = $2
WHERE id = $1 AND has_voted_queen = false`

const markVotedPhotogenicSQL = `
UPDATE voters
SET has_voted_photogenic = true, voted_photogenic_at = $2
WHERE id = $1 AND has_voted_photogenic = false`

const updateLastLoginSQL = `
UPDATE voters SET last_login_at = $2 WHERE id = $1`

const retireSQL = `
UPDATE voters SET status = 'RETIRED' WHERE id = $1 AND status = 'ACTIVE'`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a voter by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	voter, err := scanVoter(row)
	if err != nil {
		return nil, mapError(err, "voter", id)
	}

	return voter, nil
}

// GetByUsername returns a voter by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Voter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByUsernameSQL, username)

	voter, err := scanVoter(row)
	if err != nil {
		return nil, mapError(err, "voter", uuid.Nil)
	}

	return voter, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new voter and returns the persisted domain.Voter.
// Duplicate username or email surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, v *domain.Voter) (*domain.Voter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := v.CreatedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		v.ID,
		v.Username,
		v.PasswordHash,
		v.FullName,
		v.Email,
		string(v.Role),
		string(v.Status),
		createdAt,
	)

	created, err := scanVoter(row)
	if err != nil {
		return nil, mapError(err, "voter", v.ID)
	}

	return created, nil
}

// MarkVoted flips the per-category has_voted flag to true and records the
// vote timestamp. The transition is one-way; if the flag was already set,
// domain.ErrAlreadyVoted is returned and no row changes.
func (r *Repo) MarkVoted(ctx context.Context, voterID uuid.UUID, category domain.Category, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := markVotedQueenSQL
	if category == domain.CategoryPhotogenic {
		sql = markVotedPhotogenicSQL
	}

	ct, err := querier.Exec(ctx, sql, voterID, at.UTC().Truncate(time.Microsecond))
	if err != nil {
		return mapError(err, "voter", voterID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("voter %s category %s: %w", voterID, category, domain.ErrAlreadyVoted)
	}

	return nil
}

// UpdateLastLogin records the time of a successful sign-in.
func (r *Repo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, updateLastLoginSQL, id, at.UTC().Truncate(time.Microsecond))
	if err != nil {
		return mapError(err, "voter", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("voter %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Retire logically deactivates a voter account. The row is never deleted.
// Returns domain.ErrNotFound if the voter does not exist or is already retired.
func (r *Repo) Retire(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, retireSQL, id)
	if err != nil {
		return mapError(err, "voter", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("voter %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanVoter(row pgx.Row) (*domain.Voter, error) {
	var (
		v        domain.Voter
		role     string
		status   string
		queenAt  *time.Time
		photoAt  *time.Time
		hasQueen bool
		hasPhoto bool
	)

	if err := row.Scan(
		&v.ID,
		&v.Username,
		&v.PasswordHash,
		&v.FullName,
		&v.Email,
		&role,
		&status,
		&hasQueen,
		&queenAt,
		&hasPhoto,
		&photoAt,
		&v.LastLoginAt,
		&v.CreatedAt,
	); err != nil {
		return nil, err
	}

	v.Role = domain.Role(role)
	v.Status = domain.ActivityStatus(status)
	v.Queen = domain.CategoryVote{HasVoted: hasQueen, VotedAt: queenAt}
	v.Photogenic = domain.CategoryVote{HasVoted: hasPhoto, VotedAt: photoAt}

	return &v, nil
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
