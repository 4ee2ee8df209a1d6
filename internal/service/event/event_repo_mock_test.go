package event

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc                 func(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListFunc                   func(ctx context.Context) ([]domain.Event, error)
	UpdateFunc                 func(ctx context.Context, event *domain.Event) (*domain.Event, error)
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
	GetParticipantFunc         func(ctx context.Context, eventID, userID uuid.UUID) (*domain.EventParticipant, error)
	CreateParticipantFunc      func(ctx context.Context, p *domain.EventParticipant) (*domain.EventParticipant, error)
	SetParticipantStatusFunc   func(ctx context.Context, id uuid.UUID, status domain.ParticipantStatus, joinedAt *time.Time) (*domain.EventParticipant, error)
	ListJoinedParticipantsFunc func(ctx context.Context, eventID uuid.UUID) ([]domain.EventParticipant, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Event *domain.Event
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Event *domain.Event
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetParticipant []struct {
			Ctx     context.Context
			EventID uuid.UUID
			UserID  uuid.UUID
		}
		CreateParticipant []struct {
			Ctx context.Context
			P   *domain.EventParticipant
		}
		SetParticipantStatus []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Status   domain.ParticipantStatus
			JoinedAt *time.Time
		}
		ListJoinedParticipants []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
	}
	lockCreate                 sync.RWMutex
	lockGetByID                sync.RWMutex
	lockList                   sync.RWMutex
	lockUpdate                 sync.RWMutex
	lockDelete                 sync.RWMutex
	lockGetParticipant         sync.RWMutex
	lockCreateParticipant      sync.RWMutex
	lockSetParticipantStatus   sync.RWMutex
	lockListJoinedParticipants sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event *domain.Event
	}{Ctx: ctx, Event: event}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, event)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Event *domain.Event
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
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

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *eventRepoMock) List(ctx context.Context) ([]domain.Event, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *eventRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *eventRepoMock) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event *domain.Event
	}{Ctx: ctx, Event: event}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, event)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	Event *domain.Event
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
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

func (mock *eventRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetParticipant(ctx context.Context, eventID, userID uuid.UUID) (*domain.EventParticipant, error) {
	if mock.GetParticipantFunc == nil {
		panic("eventRepoMock.GetParticipantFunc: method is nil but eventRepo.GetParticipant was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, EventID: eventID, UserID: userID}
	mock.lockGetParticipant.Lock()
	mock.calls.GetParticipant = append(mock.calls.GetParticipant, callInfo)
	mock.lockGetParticipant.Unlock()
	return mock.GetParticipantFunc(ctx, eventID, userID)
}

func (mock *eventRepoMock) GetParticipantCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockGetParticipant.RLock()
	calls := mock.calls.GetParticipant
	mock.lockGetParticipant.RUnlock()
	return calls
}

func (mock *eventRepoMock) CreateParticipant(ctx context.Context, p *domain.EventParticipant) (*domain.EventParticipant, error) {
	if mock.CreateParticipantFunc == nil {
		panic("eventRepoMock.CreateParticipantFunc: method is nil but eventRepo.CreateParticipant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.EventParticipant
	}{Ctx: ctx, P: p}
	mock.lockCreateParticipant.Lock()
	mock.calls.CreateParticipant = append(mock.calls.CreateParticipant, callInfo)
	mock.lockCreateParticipant.Unlock()
	return mock.CreateParticipantFunc(ctx, p)
}

func (mock *eventRepoMock) CreateParticipantCalls() []struct {
	Ctx context.Context
	P   *domain.EventParticipant
} {
	mock.lockCreateParticipant.RLock()
	calls := mock.calls.CreateParticipant
	mock.lockCreateParticipant.RUnlock()
	return calls
}

func (mock *eventRepoMock) SetParticipantStatus(ctx context.Context, id uuid.UUID, status domain.ParticipantStatus, joinedAt *time.Time) (*domain.EventParticipant, error) {
	if mock.SetParticipantStatusFunc == nil {
		panic("eventRepoMock.SetParticipantStatusFunc: method is nil but eventRepo.SetParticipantStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Status   domain.ParticipantStatus
		JoinedAt *time.Time
	}{Ctx: ctx, ID: id, Status: status, JoinedAt: joinedAt}
	mock.lockSetParticipantStatus.Lock()
	mock.calls.SetParticipantStatus = append(mock.calls.SetParticipantStatus, callInfo)
	mock.lockSetParticipantStatus.Unlock()
	return mock.SetParticipantStatusFunc(ctx, id, status, joinedAt)
}

func (mock *eventRepoMock) SetParticipantStatusCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Status   domain.ParticipantStatus
	JoinedAt *time.Time
} {
	mock.lockSetParticipantStatus.RLock()
	calls := mock.calls.SetParticipantStatus
	mock.lockSetParticipantStatus.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListJoinedParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.EventParticipant, error) {
	if mock.ListJoinedParticipantsFunc == nil {
		panic("eventRepoMock.ListJoinedParticipantsFunc: method is nil but eventRepo.ListJoinedParticipants was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockListJoinedParticipants.Lock()
	mock.calls.ListJoinedParticipants = append(mock.calls.ListJoinedParticipants, callInfo)
	mock.lockListJoinedParticipants.Unlock()
	return mock.ListJoinedParticipantsFunc(ctx, eventID)
}

func (mock *eventRepoMock) ListJoinedParticipantsCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockListJoinedParticipants.RLock()
	calls := mock.calls.ListJoinedParticipants
	mock.lockListJoinedParticipants.RUnlock()
	return calls
}
