package proposal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

var _ employeeRepo = &employeeRepoMock{}

type employeeRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListFunc    func(ctx context.Context, limit int, offset int) ([]domain.Employee, int, error)
	UpsertFunc  func(ctx context.Context, e domain.Employee) (*domain.Employee, bool, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Upsert []struct {
			Ctx context.Context
			E   domain.Employee
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpsert  sync.RWMutex
}

func (mock *employeeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	if mock.GetByIDFunc == nil {
		panic("employeeRepoMock.GetByIDFunc: method is nil but employeeRepo.GetByID was just called")
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

func (mock *employeeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *employeeRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.Employee, int, error) {
	if mock.ListFunc == nil {
		panic("employeeRepoMock.ListFunc: method is nil but employeeRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *employeeRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *employeeRepoMock) Upsert(ctx context.Context, e domain.Employee) (*domain.Employee, bool, error) {
	if mock.UpsertFunc == nil {
		panic("employeeRepoMock.UpsertFunc: method is nil but employeeRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Employee
	}{Ctx: ctx, E: e}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, e)
}

func (mock *employeeRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	E   domain.Employee
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
