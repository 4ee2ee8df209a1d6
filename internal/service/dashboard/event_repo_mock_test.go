package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/asotobase/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	ListUpcomingFunc func(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)

	calls struct {
		ListUpcoming []struct {
			Ctx   context.Context
			From  time.Time
			Limit int
		}
	}
	lockListUpcoming sync.RWMutex
}

func (mock *eventRepoMock) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	if mock.ListUpcomingFunc == nil {
		panic("eventRepoMock.ListUpcomingFunc: method is nil but eventRepo.ListUpcoming was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		From  time.Time
		Limit int
	}{Ctx: ctx, From: from, Limit: limit}
	mock.lockListUpcoming.Lock()
	mock.calls.ListUpcoming = append(mock.calls.ListUpcoming, callInfo)
	mock.lockListUpcoming.Unlock()
	return mock.ListUpcomingFunc(ctx, from, limit)
}

func (mock *eventRepoMock) ListUpcomingCalls() []struct {
	Ctx   context.Context
	From  time.Time
	Limit int
} {
	mock.lockListUpcoming.RLock()
	calls := mock.calls.ListUpcoming
	mock.lockListUpcoming.RUnlock()
	return calls
}
