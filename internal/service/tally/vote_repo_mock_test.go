package tally

import (
	"context"
	"sync"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	CountByCandidateFunc func(ctx context.Context, category domain.Category) ([]domain.CandidateCount, error)
	CountByCategoryFunc  func(ctx context.Context, category domain.Category) (int, error)

	calls struct {
		CountByCandidate []struct {
			Ctx      context.Context
			Category domain.Category
		}
		CountByCategory []struct {
			Ctx      context.Context
			Category domain.Category
		}
	}
	lockCountByCandidate sync.RWMutex
	lockCountByCategory  sync.RWMutex
}

func (mock *voteRepoMock) CountByCandidate(ctx context.Context, category domain.Category) ([]domain.CandidateCount, error) {
	if mock.CountByCandidateFunc == nil {
		panic("voteRepoMock.CountByCandidateFunc: method is nil but voteRepo.CountByCandidate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category domain.Category
	}{Ctx: ctx, Category: category}
	mock.lockCountByCandidate.Lock()
	mock.calls.CountByCandidate = append(mock.calls.CountByCandidate, callInfo)
	mock.lockCountByCandidate.Unlock()
	return mock.CountByCandidateFunc(ctx, category)
}

func (mock *voteRepoMock) CountByCandidateCalls() []struct {
	Ctx      context.Context
	Category domain.Category
} {
	mock.lockCountByCandidate.RLock()
	calls := mock.calls.CountByCandidate
	mock.lockCountByCandidate.RUnlock()
	return calls
}

func (mock *voteRepoMock) CountByCategory(ctx context.Context, category domain.Category) (int, error) {
	if mock.CountByCategoryFunc == nil {
		panic("voteRepoMock.CountByCategoryFunc: method is nil but voteRepo.CountByCategory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category domain.Category
	}{Ctx: ctx, Category: category}
	mock.lockCountByCategory.Lock()
	mock.calls.CountByCategory = append(mock.calls.CountByCategory, callInfo)
	mock.lockCountByCategory.Unlock()
	return mock.CountByCategoryFunc(ctx, category)
}

func (mock *voteRepoMock) CountByCategoryCalls() []struct {
	Ctx      context.Context
	Category domain.Category
} {
	mock.lockCountByCategory.RLock()
	calls := mock.calls.CountByCategory
	mock.lockCountByCategory.RUnlock()
	return calls
}
