package tally

import (
	"context"
	"sync"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	CountActiveFunc func(ctx context.Context) (int, error)

	calls struct {
		CountActive []struct {
			Ctx context.Context
		}
	}
	lockCountActive sync.RWMutex
}

func (mock *candidateRepoMock) CountActive(ctx context.Context) (int, error) {
	if mock.CountActiveFunc == nil {
		panic("candidateRepoMock.CountActiveFunc: method is nil but candidateRepo.CountActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountActive.Lock()
	mock.calls.CountActive = append(mock.calls.CountActive, callInfo)
	mock.lockCountActive.Unlock()
	return mock.CountActiveFunc(ctx)
}

func (mock *candidateRepoMock) CountActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountActive.RLock()
	calls := mock.calls.CountActive
	mock.lockCountActive.RUnlock()
	return calls
}
