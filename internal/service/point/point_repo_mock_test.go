package point

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

var _ pointRepo = &pointRepoMock{}

type pointRepoMock struct {
	TotalByUserFunc   func(ctx context.Context, userID uuid.UUID) (int, error)
	HistoryByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Point, error)

	calls struct {
		TotalByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		HistoryByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockTotalByUser   sync.RWMutex
	lockHistoryByUser sync.RWMutex
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

func (mock *pointRepoMock) HistoryByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Point, error) {
	if mock.HistoryByUserFunc == nil {
		panic("pointRepoMock.HistoryByUserFunc: method is nil but pointRepo.HistoryByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockHistoryByUser.Lock()
	mock.calls.HistoryByUser = append(mock.calls.HistoryByUser, callInfo)
	mock.lockHistoryByUser.Unlock()
	return mock.HistoryByUserFunc(ctx, userID, limit)
}

func (mock *pointRepoMock) HistoryByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockHistoryByUser.RLock()
	calls := mock.calls.HistoryByUser
	mock.lockHistoryByUser.RUnlock()
	return calls
}
