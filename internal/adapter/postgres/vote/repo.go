// Package vote implements the vote ledger repository using PostgreSQL.
// The ledger is append-only: rows are inserted exactly once and never
// updated or deleted. The unique index on (voter_id, category) is the
// storage-level guarantee behind exactly-once voting.
package vote

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

// Repo provides vote ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const voteColumns = `id, voter_id, candidate_id, category, cast_at, origin_ip, user_agent`

const createSQL = `
INSERT INTO votes (id, voter_id, candidate_id, category, cast_at, origin_ip, user_agent)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + voteColumns

const getByVoterAndCategorySQL = `
SELECT ` + voteColumns + `
FROM votes
WHERE voter_id = $1 AND category = $2`

const countByCategorySQL = `
SELECT count(*) FROM votes WHERE category = $1`

// Candidates are joined from the left so that active candidates with zero
// votes still appear with a count of 0. Retired candidates are excluded from
// the tally while their ledger rows remain untouched.
const countByCandidateSQL = `
SELECT c.id, c.full_name, c.program, c.photo_url, count(v.id) AS votes
FROM candidates c
LEFT JOIN votes v ON v.candidate_id = c.id AND v.category = $1
WHERE c.status = 'ACTIVE'
GROUP BY c.id, c.full_name, c.program, c.photo_url
ORDER BY votes DESC, c.full_name ASC, c.id ASC`

const countByVoterSQL = `
SELECT count(*) FROM votes WHERE voter_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends one vote to the ledger and returns the persisted row.
// A concurrent duplicate for the same (voter_id, category) hits the unique
// index and surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	castAt := v.CastAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		v.ID,
		v.VoterID,
		v.CandidateID,
		string(v.Category),
		castAt,
		v.OriginIP,
		v.UserAgent,
	)

	created, err := scanVote(row)
	if err != nil {
		return nil, mapError(err, "vote", v.ID)
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByVoterAndCategory returns the vote a voter cast in a category.
// Returns domain.ErrNotFound if no such vote exists.
func (r *Repo) GetByVoterAndCategory(ctx context.Context, voterID uuid.UUID, category domain.Category) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByVoterAndCategorySQL, voterID, string(category))

	vote, err := scanVote(row)
	if err != nil {
		return nil, mapError(err, "vote", uuid.Nil)
	}

	return vote, nil
}

// CountByCategory returns the total number of votes cast in a category.
func (r *Repo) CountByCategory(ctx context.Context, category domain.Category) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByCategorySQL, string(category)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count votes by category: %w", err)
	}

	return total, nil
}

// CountByCandidate returns per-candidate vote counts for a category over all
// active candidates, ordered by votes descending with name/id as the
// deterministic tie-break for output ordering.
func (r *Repo) CountByCandidate(ctx context.Context, category domain.Category) ([]domain.CandidateCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByCandidateSQL, string(category))
	if err != nil {
		return nil, fmt.Errorf("count votes by candidate: %w", err)
	}
	defer rows.Close()

	counts := []domain.CandidateCount{}
	for rows.Next() {
		var c domain.CandidateCount
		if err := rows.Scan(&c.CandidateID, &c.FullName, &c.Program, &c.PhotoURL, &c.Votes); err != nil {
			return nil, fmt.Errorf("count votes by candidate: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count votes by candidate: %w", err)
	}

	return counts, nil
}

// CountByVoter returns the number of ledger rows for one voter (0..2).
func (r *Repo) CountByVoter(ctx context.Context, voterID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByVoterSQL, voterID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count votes by voter: %w", err)
	}

	return total, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanVote(row pgx.Row) (*domain.Vote, error) {
	var (
		id          uuid.UUID
		voterID     uuid.UUID
		candidateID uuid.UUID
		category    string
		castAt      time.Time
		originIP    *string
		userAgent   *string
	)

	if err := row.Scan(&id, &voterID, &candidateID, &category, &castAt, &originIP, &userAgent); err != nil {
		return nil, err
	}

	return &domain.Vote{
		ID:          id,
		VoterID:     voterID,
		CandidateID: candidateID,
		Category:    domain.Category(category),
		CastAt:      castAt,
		OriginIP:    originIP,
		UserAgent:   userAgent,
	}, nil
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
