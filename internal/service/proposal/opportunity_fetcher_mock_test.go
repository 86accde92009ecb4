package proposal

import (
	"context"
	"sync"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

var _ opportunityFetcher = &opportunityFetcherMock{}

type opportunityFetcherMock struct {
	FetchOpportunityFunc func(ctx context.Context, number string) (*domain.Opportunity, error)

	calls struct {
		FetchOpportunity []struct {
			Ctx    context.Context
			Number string
		}
	}
	lockFetchOpportunity sync.RWMutex
}

func (mock *opportunityFetcherMock) FetchOpportunity(ctx context.Context, number string) (*domain.Opportunity, error) {
	if mock.FetchOpportunityFunc == nil {
		panic("opportunityFetcherMock.FetchOpportunityFunc: method is nil but opportunityFetcher.FetchOpportunity was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number string
	}{Ctx: ctx, Number: number}
	mock.lockFetchOpportunity.Lock()
	mock.calls.FetchOpportunity = append(mock.calls.FetchOpportunity, callInfo)
	mock.lockFetchOpportunity.Unlock()
	return mock.FetchOpportunityFunc(ctx, number)
}

func (mock *opportunityFetcherMock) FetchOpportunityCalls() []struct {
	Ctx    context.Context
	Number string
} {
	mock.lockFetchOpportunity.RLock()
	calls := mock.calls.FetchOpportunity
	mock.lockFetchOpportunity.RUnlock()
	return calls
}
