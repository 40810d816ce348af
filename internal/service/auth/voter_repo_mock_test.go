package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

var _ voterRepo = &voterRepoMock{}

type voterRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Voter, error)
	GetByUsernameFunc   func(ctx context.Context, username string) (*domain.Voter, error)
	CreateFunc          func(ctx context.Context, v *domain.Voter) (*domain.Voter, error)
	UpdateLastLoginFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		Create []struct {
			Ctx context.Context
			V   *domain.Voter
		}
		UpdateLastLogin []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockGetByID         sync.RWMutex
	lockGetByUsername   sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdateLastLogin sync.RWMutex
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

func (mock *voterRepoMock) GetByUsername(ctx context.Context, username string) (*domain.Voter, error) {
	if mock.GetByUsernameFunc == nil {
		panic("voterRepoMock.GetByUsernameFunc: method is nil but voterRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *voterRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *voterRepoMock) Create(ctx context.Context, v *domain.Voter) (*domain.Voter, error) {
	if mock.CreateFunc == nil {
		panic("voterRepoMock.CreateFunc: method is nil but voterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Voter
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *voterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.Voter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *voterRepoMock) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.UpdateLastLoginFunc == nil {
		panic("voterRepoMock.UpdateLastLoginFunc: method is nil but voterRepo.UpdateLastLogin was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockUpdateLastLogin.Lock()
	mock.calls.UpdateLastLogin = append(mock.calls.UpdateLastLogin, callInfo)
	mock.lockUpdateLastLogin.Unlock()
	return mock.UpdateLastLoginFunc(ctx, id, at)
}

func (mock *voterRepoMock) UpdateLastLoginCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockUpdateLastLogin.RLock()
	calls := mock.calls.UpdateLastLogin
	mock.lockUpdateLastLogin.RUnlock()
	return calls
}
