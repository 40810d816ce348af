package voting

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
	"github.com/heartmarshall/reinafiec-backend/pkg/ctxutil"
)

//go:generate moq -out voter_repo_mock_test.go -pkg voting . voterRepo
//go:generate moq -out candidate_repo_mock_test.go -pkg voting . candidateRepo
//go:generate moq -out vote_repo_mock_test.go -pkg voting . voteRepo
//go:generate moq -out audit_logger_mock_test.go -pkg voting . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg voting . txManager

// fixtures holds the full mock set wired into a Service.
type fixtures struct {
	voters     *voterRepoMock
	candidates *candidateRepoMock
	votes      *voteRepoMock
	audit      *auditLoggerMock
	tx         *txManagerMock
	svc        *Service
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	f := &fixtures{
		voters:     &voterRepoMock{},
		candidates: &candidateRepoMock{},
		votes:      &voteRepoMock{},
		audit:      &auditLoggerMock{},
		tx:         &txManagerMock{},
	}
	f.svc = NewService(slog.Default(), f.voters, f.candidates, f.votes, f.audit, f.tx)
	return f
}

// passthroughTx makes the tx mock run the callback on the same context.
func (f *fixtures) passthroughTx() {
	f.tx.RunInTxFunc = func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}
}

func activeVoter(id uuid.UUID) *domain.Voter {
	return &domain.Voter{
		ID:        id,
		Username:  "voter1",
		FullName:  "Ana Castillo",
		Email:     "ana@example.com",
		Role:      domain.RoleVoter,
		Status:    domain.StatusActive,
		CreatedAt: time.Now(),
	}
}

func activeCandidate(id uuid.UUID) *domain.Candidate {
	return &domain.Candidate{
		ID:         id,
		FullName:   "Maria Lopez",
		NationalID: "0912345678",
		BirthDate:  time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC),
		Program:    "Computer Science",
		Semester:   5,
		Email:      "maria@example.com",
		Status:     domain.StatusActive,
		CreatedAt:  time.Now(),
	}
}

func voterCtx(id uuid.UUID) context.Context {
	return ctxutil.WithVoterID(context.Background(), id)
}

func ptrTime(t time.Time) *time.Time { return &t }
