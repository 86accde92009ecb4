package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
	"github.com/heartmarshall/proposal-backend/internal/service/proposal"
)

var _ employeeService = &employeeServiceMock{}

type employeeServiceMock struct {
	GetEmployeeFunc   func(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListEmployeesFunc func(ctx context.Context, input proposal.ListInput) ([]domain.Employee, int, error)

	calls struct {
		GetEmployee []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListEmployees []struct {
			Ctx   context.Context
			Input proposal.ListInput
		}
	}
	lockGetEmployee   sync.RWMutex
	lockListEmployees sync.RWMutex
}

func (mock *employeeServiceMock) GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	if mock.GetEmployeeFunc == nil {
		panic("employeeServiceMock.GetEmployeeFunc: method is nil but employeeService.GetEmployee was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetEmployee.Lock()
	mock.calls.GetEmployee = append(mock.calls.GetEmployee, callInfo)
	mock.lockGetEmployee.Unlock()
	return mock.GetEmployeeFunc(ctx, id)
}

func (mock *employeeServiceMock) GetEmployeeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetEmployee.RLock()
	calls := mock.calls.GetEmployee
	mock.lockGetEmployee.RUnlock()
	return calls
}

func (mock *employeeServiceMock) ListEmployees(ctx context.Context, input proposal.ListInput) ([]domain.Employee, int, error) {
	if mock.ListEmployeesFunc == nil {
		panic("employeeServiceMock.ListEmployeesFunc: method is nil but employeeService.ListEmployees was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input proposal.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListEmployees.Lock()
	mock.calls.ListEmployees = append(mock.calls.ListEmployees, callInfo)
	mock.lockListEmployees.Unlock()
	return mock.ListEmployeesFunc(ctx, input)
}

func (mock *employeeServiceMock) ListEmployeesCalls() []struct {
	Ctx   context.Context
	Input proposal.ListInput
} {
	mock.lockListEmployees.RLock()
	calls := mock.calls.ListEmployees
	mock.lockListEmployees.RUnlock()
	return calls
}
