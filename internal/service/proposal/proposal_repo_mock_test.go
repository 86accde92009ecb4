package proposal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

var _ proposalRepo = &proposalRepoMock{}

type proposalRepoMock struct {
	CreateFunc  func(ctx context.Context, p domain.Proposal) (*domain.Proposal, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListFunc    func(ctx context.Context, limit int, offset int) ([]domain.Proposal, int, error)
	UpdateFunc  func(ctx context.Context, p domain.Proposal) (*domain.Proposal, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Proposal
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Update []struct {
			Ctx context.Context
			P   domain.Proposal
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *proposalRepoMock) Create(ctx context.Context, p domain.Proposal) (*domain.Proposal, error) {
	if mock.CreateFunc == nil {
		panic("proposalRepoMock.CreateFunc: method is nil but proposalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Proposal
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *proposalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Proposal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *proposalRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	if mock.GetByIDFunc == nil {
		panic("proposalRepoMock.GetByIDFunc: method is nil but proposalRepo.GetByID was just called")
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

func (mock *proposalRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *proposalRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.Proposal, int, error) {
	if mock.ListFunc == nil {
		panic("proposalRepoMock.ListFunc: method is nil but proposalRepo.List was just called")
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

func (mock *proposalRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *proposalRepoMock) Update(ctx context.Context, p domain.Proposal) (*domain.Proposal, error) {
	if mock.UpdateFunc == nil {
		panic("proposalRepoMock.UpdateFunc: method is nil but proposalRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Proposal
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *proposalRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.Proposal
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
