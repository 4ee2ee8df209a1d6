package goal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

var _ stepRepo = &stepRepoMock{}

type stepRepoMock struct {
	CreateFunc     func(ctx context.Context, step *domain.Step) (*domain.Step, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Step, error)
	ListByGoalFunc func(ctx context.Context, goalID uuid.UUID) ([]domain.Step, error)
	UpdateFunc     func(ctx context.Context, step *domain.Step) (*domain.Step, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Step *domain.Step
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByGoal []struct {
			Ctx    context.Context
			GoalID uuid.UUID
		}
		Update []struct {
			Ctx  context.Context
			Step *domain.Step
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByGoal sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *stepRepoMock) Create(ctx context.Context, step *domain.Step) (*domain.Step, error) {
	if mock.CreateFunc == nil {
		panic("stepRepoMock.CreateFunc: method is nil but stepRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Step *domain.Step
	}{Ctx: ctx, Step: step}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, step)
}

func (mock *stepRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Step *domain.Step
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *stepRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Step, error) {
	if mock.GetByIDFunc == nil {
		panic("stepRepoMock.GetByIDFunc: method is nil but stepRepo.GetByID was just called")
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

func (mock *stepRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *stepRepoMock) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.Step, error) {
	if mock.ListByGoalFunc == nil {
		panic("stepRepoMock.ListByGoalFunc: method is nil but stepRepo.ListByGoal was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		GoalID uuid.UUID
	}{Ctx: ctx, GoalID: goalID}
	mock.lockListByGoal.Lock()
	mock.calls.ListByGoal = append(mock.calls.ListByGoal, callInfo)
	mock.lockListByGoal.Unlock()
	return mock.ListByGoalFunc(ctx, goalID)
}

func (mock *stepRepoMock) ListByGoalCalls() []struct {
	Ctx    context.Context
	GoalID uuid.UUID
} {
	mock.lockListByGoal.RLock()
	calls := mock.calls.ListByGoal
	mock.lockListByGoal.RUnlock()
	return calls
}

func (mock *stepRepoMock) Update(ctx context.Context, step *domain.Step) (*domain.Step, error) {
	if mock.UpdateFunc == nil {
		panic("stepRepoMock.UpdateFunc: method is nil but stepRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Step *domain.Step
	}{Ctx: ctx, Step: step}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, step)
}

func (mock *stepRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Step *domain.Step
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *stepRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("stepRepoMock.DeleteFunc: method is nil but stepRepo.Delete was just called")
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

func (mock *stepRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
