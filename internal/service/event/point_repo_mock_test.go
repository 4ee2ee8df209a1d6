package event

import (
	"context"
	"sync"

	"github.com/asotobase/backend/internal/domain"
)

var _ pointRepo = &pointRepoMock{}

type pointRepoMock struct {
	CreateFunc func(ctx context.Context, point *domain.Point) (*domain.Point, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Point *domain.Point
		}
	}
	lockCreate sync.RWMutex
}

func (mock *pointRepoMock) Create(ctx context.Context, point *domain.Point) (*domain.Point, error) {
	if mock.CreateFunc == nil {
		panic("pointRepoMock.CreateFunc: method is nil but pointRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Point *domain.Point
	}{Ctx: ctx, Point: point}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, point)
}

func (mock *pointRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Point *domain.Point
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
