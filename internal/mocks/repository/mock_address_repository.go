package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock type for the AddressRepository type
type MockAddressRepository struct {
	mock.Mock
}

type MockAddressRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAddressRepository) EXPECT() *MockAddressRepository_Expecter {
	return &MockAddressRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, address
func (_m *MockAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	ret := _m.Called(ctx, address)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Address) error); ok {
		r0 = rf(ctx, address)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockAddressRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockAddressRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - address *entity.Address
func (_e *MockAddressRepository_Expecter) Create(ctx interface{}, address interface{}) *MockAddressRepository_Create_Call {
	return &MockAddressRepository_Create_Call{Call: _e.mock.On("Create", ctx, address)}
}

func (_c *MockAddressRepository_Create_Call) Run(run func(ctx context.Context, address *entity.Address)) *MockAddressRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Address))
	})
	return _c
}

func (_c *MockAddressRepository_Create_Call) Return(_a0 error) *MockAddressRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAddressRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Address) error) *MockAddressRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByIDAndClient provides a mock function with given fields: ctx, id, clientID
func (_m *MockAddressRepository) FindByIDAndClient(ctx context.Context, id uint, clientID uint) (*entity.Address, error) {
	ret := _m.Called(ctx, id, clientID)

	if len(ret) == 0 {
		panic("no return value specified for FindByIDAndClient")
	}

	var r0 *entity.Address
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) (*entity.Address, error)); ok {
		return rf(ctx, id, clientID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) *entity.Address); ok {
		r0 = rf(ctx, id, clientID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Address)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uint, uint) error); ok {
		r1 = rf(ctx, id, clientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAddressRepository_FindByIDAndClient_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByIDAndClient'
type MockAddressRepository_FindByIDAndClient_Call struct {
	*mock.Call
}

// FindByIDAndClient is a helper method to define mock.On call
//   - ctx context.Context
//   - id uint
//   - clientID uint
func (_e *MockAddressRepository_Expecter) FindByIDAndClient(ctx interface{}, id interface{}, clientID interface{}) *MockAddressRepository_FindByIDAndClient_Call {
	return &MockAddressRepository_FindByIDAndClient_Call{Call: _e.mock.On("FindByIDAndClient", ctx, id, clientID)}
}

func (_c *MockAddressRepository_FindByIDAndClient_Call) Run(run func(ctx context.Context, id uint, clientID uint)) *MockAddressRepository_FindByIDAndClient_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint), args[2].(uint))
	})
	return _c
}

func (_c *MockAddressRepository_FindByIDAndClient_Call) Return(_a0 *entity.Address, _a1 error) *MockAddressRepository_FindByIDAndClient_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAddressRepository_FindByIDAndClient_Call) RunAndReturn(run func(context.Context, uint, uint) (*entity.Address, error)) *MockAddressRepository_FindByIDAndClient_Call {
	_c.Call.Return(run)
	return _c
}

// FindByClient provides a mock function with given fields: ctx, clientID
func (_m *MockAddressRepository) FindByClient(ctx context.Context, clientID uint) ([]*entity.Address, error) {
	ret := _m.Called(ctx, clientID)

	if len(ret) == 0 {
		panic("no return value specified for FindByClient")
	}

	var r0 []*entity.Address
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uint) ([]*entity.Address, error)); ok {
		return rf(ctx, clientID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uint) []*entity.Address); ok {
		r0 = rf(ctx, clientID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Address)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, clientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAddressRepository_FindByClient_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByClient'
type MockAddressRepository_FindByClient_Call struct {
	*mock.Call
}

// FindByClient is a helper method to define mock.On call
//   - ctx context.Context
//   - clientID uint
func (_e *MockAddressRepository_Expecter) FindByClient(ctx interface{}, clientID interface{}) *MockAddressRepository_FindByClient_Call {
	return &MockAddressRepository_FindByClient_Call{Call: _e.mock.On("FindByClient", ctx, clientID)}
}

func (_c *MockAddressRepository_FindByClient_Call) Run(run func(ctx context.Context, clientID uint)) *MockAddressRepository_FindByClient_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint))
	})
	return _c
}

func (_c *MockAddressRepository_FindByClient_Call) Return(_a0 []*entity.Address, _a1 error) *MockAddressRepository_FindByClient_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAddressRepository_FindByClient_Call) RunAndReturn(run func(context.Context, uint) ([]*entity.Address, error)) *MockAddressRepository_FindByClient_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAddressRepository creates a new instance of MockAddressRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAddressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAddressRepository {
	mock := &MockAddressRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
