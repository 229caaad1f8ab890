package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock type for the ProductRepository type
type MockProductRepository struct {
	mock.Mock
}

type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Product) error); ok {
		r0 = rf(ctx, product)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockProductRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - product *entity.Product
func (_e *MockProductRepository_Expecter) Create(ctx interface{}, product interface{}) *MockProductRepository_Create_Call {
	return &MockProductRepository_Create_Call{Call: _e.mock.On("Create", ctx, product)}
}

func (_c *MockProductRepository_Create_Call) Run(run func(ctx context.Context, product *entity.Product)) *MockProductRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Product))
	})
	return _c
}

func (_c *MockProductRepository_Create_Call) Return(_a0 error) *MockProductRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Product) error) *MockProductRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Product, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Product); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockProductRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductRepository_Expecter) FindAll(ctx interface{}) *MockProductRepository_FindAll_Call {
	return &MockProductRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockProductRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockProductRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductRepository_FindAll_Call) Return(_a0 []*entity.Product, _a1 error) *MockProductRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Product, error)) *MockProductRepository_FindAll_Call {
	_c.Call.Return(run)
	return _c
}

// CountByIDs provides a mock function with given fields: ctx, ids
func (_m *MockProductRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
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

// MockProductRepository_CountByIDs_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountByIDs'
type MockProductRepository_CountByIDs_Call struct {
	*mock.Call
}

// CountByIDs is a helper method to define mock.On call
//   - ctx context.Context
//   - ids []uint
func (_e *MockProductRepository_Expecter) CountByIDs(ctx interface{}, ids interface{}) *MockProductRepository_CountByIDs_Call {
	return &MockProductRepository_CountByIDs_Call{Call: _e.mock.On("CountByIDs", ctx, ids)}
}

func (_c *MockProductRepository_CountByIDs_Call) Run(run func(ctx context.Context, ids []uint)) *MockProductRepository_CountByIDs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]uint))
	})
	return _c
}

func (_c *MockProductRepository_CountByIDs_Call) Return(_a0 int64, _a1 error) *MockProductRepository_CountByIDs_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_CountByIDs_Call) RunAndReturn(run func(context.Context, []uint) (int64, error)) *MockProductRepository_CountByIDs_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProductRepository creates a new instance of MockProductRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	mock := &MockProductRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
