package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	ListRecentByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Log, error)
	ListRecentPublicFunc func(ctx context.Context, limit int) ([]domain.Log, error)

	calls struct {
		ListRecentByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		ListRecentPublic []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockListRecentByUser sync.RWMutex
	lockListRecentPublic sync.RWMutex
}

func (mock *logRepoMock) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Log, error) {
	if mock.ListRecentByUserFunc == nil {
		panic("logRepoMock.ListRecentByUserFunc: method is nil but logRepo.ListRecentByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListRecentByUser.Lock()
	mock.calls.ListRecentByUser = append(mock.calls.ListRecentByUser, callInfo)
	mock.lockListRecentByUser.Unlock()
	return mock.ListRecentByUserFunc(ctx, userID, limit)
}

func (mock *logRepoMock) ListRecentByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListRecentByUser.RLock()
	calls := mock.calls.ListRecentByUser
	mock.lockListRecentByUser.RUnlock()
	return calls
}

func (mock *logRepoMock) ListRecentPublic(ctx context.Context, limit int) ([]domain.Log, error) {
	if mock.ListRecentPublicFunc == nil {
		panic("logRepoMock.ListRecentPublicFunc: method is nil but logRepo.ListRecentPublic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecentPublic.Lock()
	mock.calls.ListRecentPublic = append(mock.calls.ListRecentPublic, callInfo)
	mock.lockListRecentPublic.Unlock()
	return mock.ListRecentPublicFunc(ctx, limit)
}

func (mock *logRepoMock) ListRecentPublicCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecentPublic.RLock()
	calls := mock.calls.ListRecentPublic
	mock.lockListRecentPublic.RUnlock()
	return calls
}
