package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPaymentTypeRepository is a mock type for the PaymentTypeRepository type
type MockPaymentTypeRepository struct {
	mock.Mock
}

type MockPaymentTypeRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentTypeRepository) EXPECT() *MockPaymentTypeRepository_Expecter {
	return &MockPaymentTypeRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, paymentType
func (_m *MockPaymentTypeRepository) Create(ctx context.Context, paymentType *entity.PaymentType) error {
	ret := _m.Called(ctx, paymentType)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.PaymentType) error); ok {
		r0 = rf(ctx, paymentType)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPaymentTypeRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockPaymentTypeRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - paymentType *entity.PaymentType
func (_e *MockPaymentTypeRepository_Expecter) Create(ctx interface{}, paymentType interface{}) *MockPaymentTypeRepository_Create_Call {
	return &MockPaymentTypeRepository_Create_Call{Call: _e.mock.On("Create", ctx, paymentType)}
}

func (_c *MockPaymentTypeRepository_Create_Call) Run(run func(ctx context.Context, paymentType *entity.PaymentType)) *MockPaymentTypeRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.PaymentType))
	})
	return _c
}

func (_c *MockPaymentTypeRepository_Create_Call) Return(_a0 error) *MockPaymentTypeRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPaymentTypeRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.PaymentType) error) *MockPaymentTypeRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockPaymentTypeRepository) FindAll(ctx context.Context) ([]*entity.PaymentType, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.PaymentType
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.PaymentType, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.PaymentType); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.PaymentType)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPaymentTypeRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockPaymentTypeRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockPaymentTypeRepository_Expecter) FindAll(ctx interface{}) *MockPaymentTypeRepository_FindAll_Call {
	return &MockPaymentTypeRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockPaymentTypeRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockPaymentTypeRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockPaymentTypeRepository_FindAll_Call) Return(_a0 []*entity.PaymentType, _a1 error) *MockPaymentTypeRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentTypeRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.PaymentType, error)) *MockPaymentTypeRepository_FindAll_Call {
	_c.Call.Return(run)
	return _c
}

// CountByIDs provides a mock function with given fields: ctx, ids
func (_m *MockPaymentTypeRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	ret := _m.Called(ctx, ids)

	if len(ret) == 0 {
		panic("no return value specified for CountByIDs")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []uint) (int64, error)); ok {
		return rf(ctx, ids)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []uint) int64); ok {
		r0 = rf(ctx, ids)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, []uint) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPaymentTypeRepository_CountByIDs_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountByIDs'
type MockPaymentTypeRepository_CountByIDs_Call struct {
	*mock.Call
}

// CountByIDs is a helper method to define mock.On call
//   - ctx context.Context
//   - ids []uint
func (_e *MockPaymentTypeRepository_Expecter) CountByIDs(ctx interface{}, ids interface{}) *MockPaymentTypeRepository_CountByIDs_Call {
	return &MockPaymentTypeRepository_CountByIDs_Call{Call: _e.mock.On("CountByIDs", ctx, ids)}
}

func (_c *MockPaymentTypeRepository_CountByIDs_Call) Run(run func(ctx context.Context, ids []uint)) *MockPaymentTypeRepository_CountByIDs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]uint))
	})
	return _c
}

func (_c *MockPaymentTypeRepository_CountByIDs_Call) Return(_a0 int64, _a1 error) *MockPaymentTypeRepository_CountByIDs_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentTypeRepository_CountByIDs_Call) RunAndReturn(run func(context.Context, []uint) (int64, error)) *MockPaymentTypeRepository_CountByIDs_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPaymentTypeRepository creates a new instance of MockPaymentTypeRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPaymentTypeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentTypeRepository {
	mock := &MockPaymentTypeRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
