package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
	"github.com/heartmarshall/proposal-backend/internal/service/proposal"
)

var _ proposalService = &proposalServiceMock{}

type proposalServiceMock struct {
	CreateProposalFunc   func(ctx context.Context, input proposal.ProposalInput) (*domain.Proposal, error)
	GetProposalFunc      func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListProposalsFunc    func(ctx context.Context, input proposal.ListInput) ([]domain.Proposal, int, error)
	ReenrichProposalFunc func(ctx context.Context, id uuid.UUID) (*proposal.ReenrichResult, error)
	UpdateProposalFunc   func(ctx context.Context, id uuid.UUID, input proposal.ProposalInput) (*domain.Proposal, error)

	calls struct {
		CreateProposal []struct {
			Ctx   context.Context
			Input proposal.ProposalInput
		}
		GetProposal []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListProposals []struct {
			Ctx   context.Context
			Input proposal.ListInput
		}
		ReenrichProposal []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateProposal []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input proposal.ProposalInput
		}
	}
	lockCreateProposal   sync.RWMutex
	lockGetProposal      sync.RWMutex
	lockListProposals    sync.RWMutex
	lockReenrichProposal sync.RWMutex
	lockUpdateProposal   sync.RWMutex
}

func (mock *proposalServiceMock) CreateProposal(ctx context.Context, input proposal.ProposalInput) (*domain.Proposal, error) {
	if mock.CreateProposalFunc == nil {
		panic("proposalServiceMock.CreateProposalFunc: method is nil but proposalService.CreateProposal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input proposal.ProposalInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateProposal.Lock()
	mock.calls.CreateProposal = append(mock.calls.CreateProposal, callInfo)
	mock.lockCreateProposal.Unlock()
	return mock.CreateProposalFunc(ctx, input)
}

func (mock *proposalServiceMock) CreateProposalCalls() []struct {
	Ctx   context.Context
	Input proposal.ProposalInput
} {
	mock.lockCreateProposal.RLock()
	calls := mock.calls.CreateProposal
	mock.lockCreateProposal.RUnlock()
	return calls
}

func (mock *proposalServiceMock) GetProposal(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	if mock.GetProposalFunc == nil {
		panic("proposalServiceMock.GetProposalFunc: method is nil but proposalService.GetProposal was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetProposal.Lock()
	mock.calls.GetProposal = append(mock.calls.GetProposal, callInfo)
	mock.lockGetProposal.Unlock()
	return mock.GetProposalFunc(ctx, id)
}

func (mock *proposalServiceMock) GetProposalCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetProposal.RLock()
	calls := mock.calls.GetProposal
	mock.lockGetProposal.RUnlock()
	return calls
}

func (mock *proposalServiceMock) ListProposals(ctx context.Context, input proposal.ListInput) ([]domain.Proposal, int, error) {
	if mock.ListProposalsFunc == nil {
		panic("proposalServiceMock.ListProposalsFunc: method is nil but proposalService.ListProposals was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input proposal.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListProposals.Lock()
	mock.calls.ListProposals = append(mock.calls.ListProposals, callInfo)
	mock.lockListProposals.Unlock()
	return mock.ListProposalsFunc(ctx, input)
}

func (mock *proposalServiceMock) ListProposalsCalls() []struct {
	Ctx   context.Context
	Input proposal.ListInput
} {
	mock.lockListProposals.RLock()
	calls := mock.calls.ListProposals
	mock.lockListProposals.RUnlock()
	return calls
}

func (mock *proposalServiceMock) ReenrichProposal(ctx context.Context, id uuid.UUID) (*proposal.ReenrichResult, error) {
	if mock.ReenrichProposalFunc == nil {
		panic("proposalServiceMock.ReenrichProposalFunc: method is nil but proposalService.ReenrichProposal was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockReenrichProposal.Lock()
	mock.calls.ReenrichProposal = append(mock.calls.ReenrichProposal, callInfo)
	mock.lockReenrichProposal.Unlock()
	return mock.ReenrichProposalFunc(ctx, id)
}

func (mock *proposalServiceMock) ReenrichProposalCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockReenrichProposal.RLock()
	calls := mock.calls.ReenrichProposal
	mock.lockReenrichProposal.RUnlock()
	return calls
}

func (mock *proposalServiceMock) UpdateProposal(ctx context.Context, id uuid.UUID, input proposal.ProposalInput) (*domain.Proposal, error) {
	if mock.UpdateProposalFunc == nil {
		panic("proposalServiceMock.UpdateProposalFunc: method is nil but proposalService.UpdateProposal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input proposal.ProposalInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateProposal.Lock()
	mock.calls.UpdateProposal = append(mock.calls.UpdateProposal, callInfo)
	mock.lockUpdateProposal.Unlock()
	return mock.UpdateProposalFunc(ctx, id, input)
}

func (mock *proposalServiceMock) UpdateProposalCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input proposal.ProposalInput
} {
	mock.lockUpdateProposal.RLock()
	calls := mock.calls.UpdateProposal
	mock.lockUpdateProposal.RUnlock()
	return calls
}
