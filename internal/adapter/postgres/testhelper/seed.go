package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// CreateVoter inserts a voter row directly, bypassing the repository layer.
func CreateVoter(t *testing.T, pool *pgxpool.Pool, role domain.Role) *domain.Voter {
	t.Helper()

	v := &domain.Voter{
		ID:        uuid.New(),
		Username:  "user-" + uuid.NewString()[:8],
		FullName:  "Test Voter",
		Role:      role,
		Status:    domain.StatusActive,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	v.Email = v.Username + "@test.edu"
	v.PasswordHash = "$2a$10$000000000000000000000000000000000000000000000000000000"

	_, err := pool.Exec(context.Background(), `
		INSERT INTO voters (id, username, password_hash, full_name, email, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		v.ID, v.Username, v.PasswordHash, v.FullName, v.Email,
		string(v.Role), string(v.Status), v.CreatedAt,
	)
	require.NoError(t, err)

	return v
}

// CreateCandidate inserts an active candidate row registered by the given admin.
func CreateCandidate(t *testing.T, pool *pgxpool.Pool, registeredBy uuid.UUID, fullName string) *domain.Candidate {
	t.Helper()

	c := &domain.Candidate{
		ID:           uuid.New(),
		FullName:     fullName,
		NationalID:   uuid.NewString()[:8] + "00",
		BirthDate:    time.Date(2005, time.January, 15, 0, 0, 0, 0, time.UTC),
		Program:      "Computer Science",
		Semester:     5,
		Email:        "candidate@test.edu",
		Status:       domain.StatusActive,
		RegisteredBy: registeredBy,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO candidates (id, full_name, national_id, birth_date, program, semester, email, status, registered_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.FullName, c.NationalID, c.BirthDate, c.Program, c.Semester,
		c.Email, string(c.Status), c.RegisteredBy, c.CreatedAt,
	)
	require.NoError(t, err)

	return c
}

// CreateVote inserts a ledger row directly and flips the voter flag,
// mimicking a committed vote for read-side tests.
func CreateVote(t *testing.T, pool *pgxpool.Pool, voterID, candidateID uuid.UUID, category domain.Category) *domain.Vote {
	t.Helper()

	v := &domain.Vote{
		ID:          uuid.New(),
		VoterID:     voterID,
		CandidateID: candidateID,
		Category:    category,
		CastAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO votes (id, voter_id, candidate_id, category, cast_at)
		VALUES ($1, $2, $3, $4, $5)`,
		v.ID, v.VoterID, v.CandidateID, string(v.Category), v.CastAt,
	)
	require.NoError(t, err)

	flagSQL := `UPDATE voters SET has_voted_queen = true, voted_queen_at = $2 WHERE id = $1`
	if category == domain.CategoryPhotogenic {
		flagSQL = `UPDATE voters SET has_voted_photogenic = true, voted_photogenic_at = $2 WHERE id = $1`
	}
	_, err = pool.Exec(context.Background(), flagSQL, voterID, v.CastAt)
	require.NoError(t, err)

	return v
}
