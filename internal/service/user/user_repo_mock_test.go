package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetProfileFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	UpsertProfileFunc func(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetProfile []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpsertProfile []struct {
			Ctx     context.Context
			Profile *domain.UserProfile
		}
	}
	lockGetByID       sync.RWMutex
	lockGetProfile    sync.RWMutex
	lockUpsertProfile sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("userRepoMock.GetProfileFunc: method is nil but userRepo.GetProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, userID)
}

func (mock *userRepoMock) GetProfileCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) UpsertProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	if mock.UpsertProfileFunc == nil {
		panic("userRepoMock.UpsertProfileFunc: method is nil but userRepo.UpsertProfile was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile *domain.UserProfile
	}{Ctx: ctx, Profile: profile}
	mock.lockUpsertProfile.Lock()
	mock.calls.UpsertProfile = append(mock.calls.UpsertProfile, callInfo)
	mock.lockUpsertProfile.Unlock()
	return mock.UpsertProfileFunc(ctx, profile)
}

func (mock *userRepoMock) UpsertProfileCalls() []struct {
	Ctx     context.Context
	Profile *domain.UserProfile
} {
	mock.lockUpsertProfile.RLock()
	calls := mock.calls.UpsertProfile
	mock.lockUpsertProfile.RUnlock()
	return calls
}
