package log

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc  func(ctx context.Context, log *domain.Log) (*domain.Log, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Log, error)
	ListFunc    func(ctx context.Context, f domain.LogFilter) ([]domain.Log, error)
	UpdateFunc  func(ctx context.Context, log *domain.Log) (*domain.Log, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Log *domain.Log
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.LogFilter
		}
		Update []struct {
			Ctx context.Context
			Log *domain.Log
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, log *domain.Log) (*domain.Log, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log *domain.Log
	}{Ctx: ctx, Log: log}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Log *domain.Log
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Log, error) {
	if mock.GetByIDFunc == nil {
		panic("logRepoMock.GetByIDFunc: method is nil but logRepo.GetByID was just called")
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

func (mock *logRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *logRepoMock) List(ctx context.Context, f domain.LogFilter) ([]domain.Log, error) {
	if mock.ListFunc == nil {
		panic("logRepoMock.ListFunc: method is nil but logRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.LogFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *logRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.LogFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *logRepoMock) Update(ctx context.Context, log *domain.Log) (*domain.Log, error) {
	if mock.UpdateFunc == nil {
		panic("logRepoMock.UpdateFunc: method is nil but logRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log *domain.Log
	}{Ctx: ctx, Log: log}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, log)
}

func (mock *logRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Log *domain.Log
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *logRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("logRepoMock.DeleteFunc: method is nil but logRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *logRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
