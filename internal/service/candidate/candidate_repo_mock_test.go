package candidate

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	ListFunc    func(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Candidate, error)
	CreateFunc  func(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	RetireFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.CandidateFilter
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Candidate
		}
		Retire []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockRetire  sync.RWMutex
}

func (mock *candidateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	if mock.GetByIDFunc == nil {
		panic("candidateRepoMock.GetByIDFunc: method is nil but candidateRepo.GetByID was just called")
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

func (mock *candidateRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *candidateRepoMock) List(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Candidate, error) {
	if mock.ListFunc == nil {
		panic("candidateRepoMock.ListFunc: method is nil but candidateRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CandidateFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *candidateRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.CandidateFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *candidateRepoMock) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	if mock.CreateFunc == nil {
		panic("candidateRepoMock.CreateFunc: method is nil but candidateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Candidate
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *candidateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Candidate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *candidateRepoMock) Retire(ctx context.Context, id uuid.UUID) error {
	if mock.RetireFunc == nil {
		panic("candidateRepoMock.RetireFunc: method is nil but candidateRepo.Retire was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRetire.Lock()
	mock.calls.Retire = append(mock.calls.Retire, callInfo)
	mock.lockRetire.Unlock()
	return mock.RetireFunc(ctx, id)
}

func (mock *candidateRepoMock) RetireCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRetire.RLock()
	calls := mock.calls.Retire
	mock.lockRetire.RUnlock()
	return calls
}
