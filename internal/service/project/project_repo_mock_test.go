package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc       func(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListFunc         func(ctx context.Context) ([]domain.Project, error)
	UpdateFunc       func(ctx context.Context, project *domain.Project) (*domain.Project, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	CreateMemberFunc func(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error)
	GetMemberFunc    func(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	ListMembersFunc  func(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error)
	CreateTaskFunc   func(ctx context.Context, t *domain.ProjectTask) (*domain.ProjectTask, error)
	GetTaskFunc      func(ctx context.Context, id uuid.UUID) (*domain.ProjectTask, error)
	ListTasksFunc    func(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectTask, error)
	UpdateTaskFunc   func(ctx context.Context, t *domain.ProjectTask) (*domain.ProjectTask, error)
	DeleteTaskFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			Project *domain.Project
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx     context.Context
			Project *domain.Project
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateMember []struct {
			Ctx context.Context
			M   *domain.ProjectMember
		}
		GetMember []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			UserID    uuid.UUID
		}
		ListMembers []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		CreateTask []struct {
			Ctx context.Context
			T   *domain.ProjectTask
		}
		GetTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListTasks []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		UpdateTask []struct {
			Ctx context.Context
			T   *domain.ProjectTask
		}
		DeleteTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockCreateMember sync.RWMutex
	lockGetMember    sync.RWMutex
	lockListMembers  sync.RWMutex
	lockCreateTask   sync.RWMutex
	lockGetTask      sync.RWMutex
	lockListTasks    sync.RWMutex
	lockUpdateTask   sync.RWMutex
	lockDeleteTask   sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Project *domain.Project
	}{Ctx: ctx, Project: project}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, project)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Project *domain.Project
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
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

func (mock *projectRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *projectRepoMock) List(ctx context.Context) ([]domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *projectRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *projectRepoMock) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Project *domain.Project
	}{Ctx: ctx, Project: project}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, project)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	Project *domain.Project
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
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

func (mock *projectRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *projectRepoMock) CreateMember(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error) {
	if mock.CreateMemberFunc == nil {
		panic("projectRepoMock.CreateMemberFunc: method is nil but projectRepo.CreateMember was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.ProjectMember
	}{Ctx: ctx, M: m}
	mock.lockCreateMember.Lock()
	mock.calls.CreateMember = append(mock.calls.CreateMember, callInfo)
	mock.lockCreateMember.Unlock()
	return mock.CreateMemberFunc(ctx, m)
}

func (mock *projectRepoMock) CreateMemberCalls() []struct {
	Ctx context.Context
	M   *domain.ProjectMember
} {
	mock.lockCreateMember.RLock()
	calls := mock.calls.CreateMember
	mock.lockCreateMember.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	if mock.GetMemberFunc == nil {
		panic("projectRepoMock.GetMemberFunc: method is nil but projectRepo.GetMember was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		UserID    uuid.UUID
	}{Ctx: ctx, ProjectID: projectID, UserID: userID}
	mock.lockGetMember.Lock()
	mock.calls.GetMember = append(mock.calls.GetMember, callInfo)
	mock.lockGetMember.Unlock()
	return mock.GetMemberFunc(ctx, projectID, userID)
}

func (mock *projectRepoMock) GetMemberCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockGetMember.RLock()
	calls := mock.calls.GetMember
	mock.lockGetMember.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListMembers(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error) {
	if mock.ListMembersFunc == nil {
		panic("projectRepoMock.ListMembersFunc: method is nil but projectRepo.ListMembers was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, projectID)
}

func (mock *projectRepoMock) ListMembersCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}

func (mock *projectRepoMock) CreateTask(ctx context.Context, t *domain.ProjectTask) (*domain.ProjectTask, error) {
	if mock.CreateTaskFunc == nil {
		panic("projectRepoMock.CreateTaskFunc: method is nil but projectRepo.CreateTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.ProjectTask
	}{Ctx: ctx, T: t}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, t)
}

func (mock *projectRepoMock) CreateTaskCalls() []struct {
	Ctx context.Context
	T   *domain.ProjectTask
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetTask(ctx context.Context, id uuid.UUID) (*domain.ProjectTask, error) {
	if mock.GetTaskFunc == nil {
		panic("projectRepoMock.GetTaskFunc: method is nil but projectRepo.GetTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetTask.Lock()
	mock.calls.GetTask = append(mock.calls.GetTask, callInfo)
	mock.lockGetTask.Unlock()
	return mock.GetTaskFunc(ctx, id)
}

func (mock *projectRepoMock) GetTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetTask.RLock()
	calls := mock.calls.GetTask
	mock.lockGetTask.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectTask, error) {
	if mock.ListTasksFunc == nil {
		panic("projectRepoMock.ListTasksFunc: method is nil but projectRepo.ListTasks was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockListTasks.Lock()
	mock.calls.ListTasks = append(mock.calls.ListTasks, callInfo)
	mock.lockListTasks.Unlock()
	return mock.ListTasksFunc(ctx, projectID)
}

func (mock *projectRepoMock) ListTasksCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockListTasks.RLock()
	calls := mock.calls.ListTasks
	mock.lockListTasks.RUnlock()
	return calls
}

func (mock *projectRepoMock) UpdateTask(ctx context.Context, t *domain.ProjectTask) (*domain.ProjectTask, error) {
	if mock.UpdateTaskFunc == nil {
		panic("projectRepoMock.UpdateTaskFunc: method is nil but projectRepo.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.ProjectTask
	}{Ctx: ctx, T: t}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, t)
}

func (mock *projectRepoMock) UpdateTaskCalls() []struct {
	Ctx context.Context
	T   *domain.ProjectTask
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}

func (mock *projectRepoMock) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTaskFunc == nil {
		panic("projectRepoMock.DeleteTaskFunc: method is nil but projectRepo.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, id)
}

func (mock *projectRepoMock) DeleteTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteTask.RLock()
	calls := mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}
