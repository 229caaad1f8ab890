package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock type for the OrderRepository type
type MockOrderRepository struct {
	mock.Mock
}

type MockOrderRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderRepository) EXPECT() *MockOrderRepository_Expecter {
	return &MockOrderRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, order
func (_m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	ret := _m.Called(ctx, order)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Order) error); ok {
		r0 = rf(ctx, order)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOrderRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockOrderRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - order *entity.Order
func (_e *MockOrderRepository_Expecter) Create(ctx interface{}, order interface{}) *MockOrderRepository_Create_Call {
	return &MockOrderRepository_Create_Call{Call: _e.mock.On("Create", ctx, order)}
}

func (_c *MockOrderRepository_Create_Call) Run(run func(ctx context.Context, order *entity.Order)) *MockOrderRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Order))
	})
	return _c
}

func (_c *MockOrderRepository_Create_Call) Return(_a0 error) *MockOrderRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOrderRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Order) error) *MockOrderRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// CreateItems provides a mock function with given fields: ctx, items
func (_m *MockOrderRepository) CreateItems(ctx context.Context, items []*entity.OrderItem) error {
	ret := _m.Called(ctx, items)

	if len(ret) == 0 {
		panic("no return value specified for CreateItems")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []*entity.OrderItem) error); ok {
		r0 = rf(ctx, items)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOrderRepository_CreateItems_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateItems'
type MockOrderRepository_CreateItems_Call struct {
	*mock.Call
}

// CreateItems is a helper method to define mock.On call
//   - ctx context.Context
//   - items []*entity.OrderItem
func (_e *MockOrderRepository_Expecter) CreateItems(ctx interface{}, items interface{}) *MockOrderRepository_CreateItems_Call {
	return &MockOrderRepository_CreateItems_Call{Call: _e.mock.On("CreateItems", ctx, items)}
}

func (_c *MockOrderRepository_CreateItems_Call) Run(run func(ctx context.Context, items []*entity.OrderItem)) *MockOrderRepository_CreateItems_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]*entity.OrderItem))
	})
	return _c
}

func (_c *MockOrderRepository_CreateItems_Call) Return(_a0 error) *MockOrderRepository_CreateItems_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOrderRepository_CreateItems_Call) RunAndReturn(run func(context.Context, []*entity.OrderItem) error) *MockOrderRepository_CreateItems_Call {
	_c.Call.Return(run)
	return _c
}

// CreatePayments provides a mock function with given fields: ctx, payments
func (_m *MockOrderRepository) CreatePayments(ctx context.Context, payments []*entity.Payment) error {
	ret := _m.Called(ctx, payments)

	if len(ret) == 0 {
		panic("no return value specified for CreatePayments")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []*entity.Payment) error); ok {
		r0 = rf(ctx, payments)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOrderRepository_CreatePayments_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreatePayments'
type MockOrderRepository_CreatePayments_Call struct {
	*mock.Call
}

// CreatePayments is a helper method to define mock.On call
//   - ctx context.Context
//   - payments []*entity.Payment
func (_e *MockOrderRepository_Expecter) CreatePayments(ctx interface{}, payments interface{}) *MockOrderRepository_CreatePayments_Call {
	return &MockOrderRepository_CreatePayments_Call{Call: _e.mock.On("CreatePayments", ctx, payments)}
}

func (_c *MockOrderRepository_CreatePayments_Call) Run(run func(ctx context.Context, payments []*entity.Payment)) *MockOrderRepository_CreatePayments_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]*entity.Payment))
	})
	return _c
}

func (_c *MockOrderRepository_CreatePayments_Call) Return(_a0 error) *MockOrderRepository_CreatePayments_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOrderRepository_CreatePayments_Call) RunAndReturn(run func(context.Context, []*entity.Payment) error) *MockOrderRepository_CreatePayments_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uint) (*entity.Order, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uint) *entity.Order); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Order)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockOrderRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uint
func (_e *MockOrderRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockOrderRepository_FindByID_Call {
	return &MockOrderRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockOrderRepository_FindByID_Call) Run(run func(ctx context.Context, id uint)) *MockOrderRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint))
	})
	return _c
}

func (_c *MockOrderRepository_FindByID_Call) Return(_a0 *entity.Order, _a1 error) *MockOrderRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderRepository_FindByID_Call) RunAndReturn(run func(context.Context, uint) (*entity.Order, error)) *MockOrderRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockOrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Order, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Order); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Order)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockOrderRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockOrderRepository_Expecter) FindAll(ctx interface{}) *MockOrderRepository_FindAll_Call {
	return &MockOrderRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockOrderRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockOrderRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockOrderRepository_FindAll_Call) Return(_a0 []*entity.Order, _a1 error) *MockOrderRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Order, error)) *MockOrderRepository_FindAll_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockOrderRepository creates a new instance of MockOrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	mock := &MockOrderRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
