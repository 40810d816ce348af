package voting

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

var _ voterRepo = &voterRepoMock{}

type voterRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Voter, error)
	MarkVotedFunc func(ctx context.Context, voterID uuid.UUID, category domain.Category, at time.Time) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkVoted []struct {
			Ctx      context.Context
			VoterID  uuid.UUID
			Category domain.Category
			At       time.Time
		}
	}
	lockGetByID   sync.RWMutex
	lockMarkVoted sync.RWMutex
}

func (mock *voterRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voter, error) {
	if mock.GetByIDFunc == nil {
		panic("voterRepoMock.GetByIDFunc: method is nil but voterRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *voterRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *voterRepoMock) MarkVoted(ctx context.Context, voterID uuid.UUID, category domain.Category, at time.Time) error {
	if mock.MarkVotedFunc == nil {
		panic("voterRepoMock.MarkVotedFunc: method is nil but voterRepo.MarkVoted was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		VoterID  uuid.UUID
		Category domain.Category
		At       time.Time
	}{Ctx: ctx, VoterID: voterID, Category: category, At: at}
	mock.lockMarkVoted.Lock()
	mock.calls.MarkVoted = append(mock.calls.MarkVoted, callInfo)
	mock.lockMarkVoted.Unlock()
	return mock.MarkVotedFunc(ctx, voterID, category, at)
}

func (mock *voterRepoMock) MarkVotedCalls() []struct {
	Ctx      context.Context
	VoterID  uuid.UUID
	Category domain.Category
	At       time.Time
} {
	mock.lockMarkVoted.RLock()
	calls := mock.calls.MarkVoted
	mock.lockMarkVoted.RUnlock()
	return calls
}
