package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

var _ goalRepo = &goalRepoMock{}

type goalRepoMock struct {
	ListActiveByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Goal, error)

	calls struct {
		ListActiveByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockListActiveByUser sync.RWMutex
}

func (mock *goalRepoMock) ListActiveByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Goal, error) {
	if mock.ListActiveByUserFunc == nil {
		panic("goalRepoMock.ListActiveByUserFunc: method is nil but goalRepo.ListActiveByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListActiveByUser.Lock()
	mock.calls.ListActiveByUser = append(mock.calls.ListActiveByUser, callInfo)
	mock.lockListActiveByUser.Unlock()
	return mock.ListActiveByUserFunc(ctx, userID, limit)
}

func (mock *goalRepoMock) ListActiveByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListActiveByUser.RLock()
	calls := mock.calls.ListActiveByUser
	mock.lockListActiveByUser.RUnlock()
	return calls
}
