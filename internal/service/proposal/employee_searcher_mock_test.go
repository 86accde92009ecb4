package proposal

import (
	"context"
	"sync"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

var _ employeeSearcher = &employeeSearcherMock{}

type employeeSearcherMock struct {
	FindEmployeeFunc func(ctx context.Context, query string) (*domain.EmployeeSearchHit, error)

	calls struct {
		FindEmployee []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockFindEmployee sync.RWMutex
}

func (mock *employeeSearcherMock) FindEmployee(ctx context.Context, query string) (*domain.EmployeeSearchHit, error) {
	if mock.FindEmployeeFunc == nil {
		panic("employeeSearcherMock.FindEmployeeFunc: method is nil but employeeSearcher.FindEmployee was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockFindEmployee.Lock()
	mock.calls.FindEmployee = append(mock.calls.FindEmployee, callInfo)
	mock.lockFindEmployee.Unlock()
	return mock.FindEmployeeFunc(ctx, query)
}

func (mock *employeeSearcherMock) FindEmployeeCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockFindEmployee.RLock()
	calls := mock.calls.FindEmployee
	mock.lockFindEmployee.RUnlock()
	return calls
}
