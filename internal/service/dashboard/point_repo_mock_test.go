package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ pointRepo = &pointRepoMock{}

type pointRepoMock struct {
	TotalByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		TotalByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockTotalByUser sync.RWMutex
}

func (mock *pointRepoMock) TotalByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.TotalByUserFunc == nil {
		panic("pointRepoMock.TotalByUserFunc: method is nil but pointRepo.TotalByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockTotalByUser.Lock()
	mock.calls.TotalByUser = append(mock.calls.TotalByUser, callInfo)
	mock.lockTotalByUser.Unlock()
	return mock.TotalByUserFunc(ctx, userID)
}

func (mock *pointRepoMock) TotalByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockTotalByUser.RLock()
	calls := mock.calls.TotalByUser
	mock.lockTotalByUser.RUnlock()
	return calls
}
