package voting

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	CreateFunc                func(ctx context.Context, v *domain.Vote) (*domain.Vote, error)
	GetByVoterAndCategoryFunc func(ctx context.Context, voterID uuid.UUID, category domain.Category) (*domain.Vote, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			V   *domain.Vote
		}
		GetByVoterAndCategory []struct {
			Ctx      context.Context
			VoterID  uuid.UUID
			Category domain.Category
		}
	}
	lockCreate                sync.RWMutex
	lockGetByVoterAndCategory sync.RWMutex
}

func (mock *voteRepoMock) Create(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
	if mock.CreateFunc == nil {
		panic("voteRepoMock.CreateFunc: method is nil but voteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Vote
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *voteRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.Vote
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *voteRepoMock) GetByVoterAndCategory(ctx context.Context, voterID uuid.UUID, category domain.Category) (*domain.Vote, error) {
	if mock.GetByVoterAndCategoryFunc == nil {
		panic("voteRepoMock.GetByVoterAndCategoryFunc: method is nil but voteRepo.GetByVoterAndCategory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		VoterID  uuid.UUID
		Category domain.Category
	}{Ctx: ctx, VoterID: voterID, Category: category}
	mock.lockGetByVoterAndCategory.Lock()
	mock.calls.GetByVoterAndCategory = append(mock.calls.GetByVoterAndCategory, callInfo)
	mock.lockGetByVoterAndCategory.Unlock()
	return mock.GetByVoterAndCategoryFunc(ctx, voterID, category)
}

func (mock *voteRepoMock) GetByVoterAndCategoryCalls() []struct {
	Ctx      context.Context
	VoterID  uuid.UUID
	Category domain.Category
} {
	mock.lockGetByVoterAndCategory.RLock()
	calls := mock.calls.GetByVoterAndCategory
	mock.lockGetByVoterAndCategory.RUnlock()
	return calls
}
