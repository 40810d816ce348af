// Package audit implements the vote audit trail repository using PostgreSQL.
// Writes are append-only; the read side exists for the compliance/reporting
// collaborator and is never consulted by the tally.
package audit

import (
	"context"
	"encoding/json"
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

// Repo provides audit trail persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const auditColumns = `id, vote_id, action, voter_id, candidate_id, category, details, origin_ip, created_at`

const createSQL = `
INSERT INTO vote_audit (id, vote_id, action, voter_id, candidate_id, category, details, origin_ip, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + auditColumns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a new audit entry and returns the persisted domain.AuditEntry.
func (r *Repo) Create(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var detailsJSON []byte
	if entry.Details != nil {
		var err error
		detailsJSON, err = json.Marshal(entry.Details)
		if err != nil {
			return domain.AuditEntry{}, fmt.Errorf("audit_entry marshal details: %w", err)
		}
	}

	createdAt := entry.CreatedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		entry.ID,
		entry.VoteID,
		string(entry.Action),
		entry.VoterID,
		entry.CandidateID,
		string(entry.Category),
		detailsJSON,
		entry.OriginIP,
		createdAt,
	)

	created, err := scanEntry(row)
	if err != nil {
		return domain.AuditEntry{}, mapError(err, "audit_entry", entry.ID)
	}

	return *created, nil
}

// Log creates an audit entry without returning it.
// Satisfies the auditLogger interface of the voting and candidate services.
func (r *Repo) Log(ctx context.Context, entry domain.AuditEntry) error {
	_, err := r.Create(ctx, entry)
	return err
}

// ---------------------------------------------------------------------------
// Read operations (reporting collaborator)
// ---------------------------------------------------------------------------

// List returns audit entries matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("id", "vote_id", "action", "voter_id", "candidate_id", "category",
			"details", "origin_ip", "created_at").
		From("vote_audit").
		OrderBy("created_at DESC")

	if filter.VoterID != uuid.Nil {
		builder = builder.Where(sq.Eq{"voter_id": filter.VoterID})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": string(filter.Category)})
	}
	if filter.Action != "" {
		builder = builder.Where(sq.Eq{"action": string(filter.Action)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list audit entries: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.AuditEntry, error) {
	var (
		entry       domain.AuditEntry
		action      string
		category    string
		detailsJSON []byte
	)

	if err := row.Scan(
		&entry.ID,
		&entry.VoteID,
		&action,
		&entry.VoterID,
		&entry.CandidateID,
		&category,
		&detailsJSON,
		&entry.OriginIP,
		&entry.CreatedAt,
	); err != nil {
		return nil, err
	}

	entry.Action = domain.AuditAction(action)
	entry.Category = domain.Category(category)

	if len(detailsJSON) > 0 {
		details := make(map[string]any)
		if err := json.Unmarshal(detailsJSON, &details); err != nil {
			return nil, fmt.Errorf("audit_entry %s unmarshal details: %w", entry.ID, err)
		}
		entry.Details = details
	}

	return &entry, nil
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
