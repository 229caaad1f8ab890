package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockClientRepository is a mock type for the ClientRepository type
type MockClientRepository struct {
	mock.Mock
}

type MockClientRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClientRepository) EXPECT() *MockClientRepository_Expecter {
	return &MockClientRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, client
func (_m *MockClientRepository) Create(ctx context.Context, client *entity.Client) error {
	ret := _m.Called(ctx, client)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Client) error); ok {
		r0 = rf(ctx, client)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockClientRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockClientRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - client *entity.Client
func (_e *MockClientRepository_Expecter) Create(ctx interface{}, client interface{}) *MockClientRepository_Create_Call {
	return &MockClientRepository_Create_Call{Call: _e.mock.On("Create", ctx, client)}
}

func (_c *MockClientRepository_Create_Call) Run(run func(ctx context.Context, client *entity.Client)) *MockClientRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Client))
	})
	return _c
}

func (_c *MockClientRepository_Create_Call) Return(_a0 error) *MockClientRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockClientRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Client) error) *MockClientRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockClientRepository) FindByID(ctx context.Context, id uint) (*entity.Client, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Client
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uint) (*entity.Client, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uint) *entity.Client); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Client)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClientRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockClientRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uint
func (_e *MockClientRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockClientRepository_FindByID_Call {
	return &MockClientRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockClientRepository_FindByID_Call) Run(run func(ctx context.Context, id uint)) *MockClientRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint))
	})
	return _c
}

func (_c *MockClientRepository_FindByID_Call) Return(_a0 *entity.Client, _a1 error) *MockClientRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClientRepository_FindByID_Call) RunAndReturn(run func(context.Context, uint) (*entity.Client, error)) *MockClientRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockClientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Client
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Client, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Client); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Client)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClientRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockClientRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockClientRepository_Expecter) FindAll(ctx interface{}) *MockClientRepository_FindAll_Call {
	return &MockClientRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockClientRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockClientRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockClientRepository_FindAll_Call) Return(_a0 []*entity.Client, _a1 error) *MockClientRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClientRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Client, error)) *MockClientRepository_FindAll_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockClientRepository creates a new instance of MockClientRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClientRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClientRepository {
	mock := &MockClientRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
