package repository

import (
	"backoffice/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// ClientRepo provides a mock function with given fields: 
func (_m *MockRepositoryFactory) ClientRepo() repository.ClientRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ClientRepo")
	}

	var r0 repository.ClientRepository
	if rf, ok := ret.Get(0).(func() repository.ClientRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.ClientRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_ClientRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ClientRepo'
type MockRepositoryFactory_ClientRepo_Call struct {
	*mock.Call
}

// ClientRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) ClientRepo() *MockRepositoryFactory_ClientRepo_Call {
	return &MockRepositoryFactory_ClientRepo_Call{Call: _e.mock.On("ClientRepo")}
}

func (_c *MockRepositoryFactory_ClientRepo_Call) Run(run func()) *MockRepositoryFactory_ClientRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_ClientRepo_Call) Return(_a0 repository.ClientRepository) *MockRepositoryFactory_ClientRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_ClientRepo_Call) RunAndReturn(run func() repository.ClientRepository) *MockRepositoryFactory_ClientRepo_Call {
	_c.Call.Return(run)
	return _c
}

// AddressRepo provides a mock function with given fields: 
func (_m *MockRepositoryFactory) AddressRepo() repository.AddressRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AddressRepo")
	}

	var r0 repository.AddressRepository
	if rf, ok := ret.Get(0).(func() repository.AddressRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.AddressRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_AddressRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddressRepo'
type MockRepositoryFactory_AddressRepo_Call struct {
	*mock.Call
}

// AddressRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) AddressRepo() *MockRepositoryFactory_AddressRepo_Call {
	return &MockRepositoryFactory_AddressRepo_Call{Call: _e.mock.On("AddressRepo")}
}

func (_c *MockRepositoryFactory_AddressRepo_Call) Run(run func()) *MockRepositoryFactory_AddressRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_AddressRepo_Call) Return(_a0 repository.AddressRepository) *MockRepositoryFactory_AddressRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_AddressRepo_Call) RunAndReturn(run func() repository.AddressRepository) *MockRepositoryFactory_AddressRepo_Call {
	_c.Call.Return(run)
	return _c
}

// ProductRepo provides a mock function with given fields: 
func (_m *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ProductRepo")
	}

	var r0 repository.ProductRepository
	if rf, ok := ret.Get(0).(func() repository.ProductRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.ProductRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_ProductRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ProductRepo'
type MockRepositoryFactory_ProductRepo_Call struct {
	*mock.Call
}

// ProductRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) ProductRepo() *MockRepositoryFactory_ProductRepo_Call {
	return &MockRepositoryFactory_ProductRepo_Call{Call: _e.mock.On("ProductRepo")}
}

func (_c *MockRepositoryFactory_ProductRepo_Call) Run(run func()) *MockRepositoryFactory_ProductRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_ProductRepo_Call) Return(_a0 repository.ProductRepository) *MockRepositoryFactory_ProductRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_ProductRepo_Call) RunAndReturn(run func() repository.ProductRepository) *MockRepositoryFactory_ProductRepo_Call {
	_c.Call.Return(run)
	return _c
}

// PaymentTypeRepo provides a mock function with given fields: 
func (_m *MockRepositoryFactory) PaymentTypeRepo() repository.PaymentTypeRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for PaymentTypeRepo")
	}

	var r0 repository.PaymentTypeRepository
	if rf, ok := ret.Get(0).(func() repository.PaymentTypeRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.PaymentTypeRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_PaymentTypeRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PaymentTypeRepo'
type MockRepositoryFactory_PaymentTypeRepo_Call struct {
	*mock.Call
}

// PaymentTypeRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) PaymentTypeRepo() *MockRepositoryFactory_PaymentTypeRepo_Call {
	return &MockRepositoryFactory_PaymentTypeRepo_Call{Call: _e.mock.On("PaymentTypeRepo")}
}

func (_c *MockRepositoryFactory_PaymentTypeRepo_Call) Run(run func()) *MockRepositoryFactory_PaymentTypeRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_PaymentTypeRepo_Call) Return(_a0 repository.PaymentTypeRepository) *MockRepositoryFactory_PaymentTypeRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_PaymentTypeRepo_Call) RunAndReturn(run func() repository.PaymentTypeRepository) *MockRepositoryFactory_PaymentTypeRepo_Call {
	_c.Call.Return(run)
	return _c
}

// OrderRepo provides a mock function with given fields: 
func (_m *MockRepositoryFactory) OrderRepo() repository.OrderRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for OrderRepo")
	}

	var r0 repository.OrderRepository
	if rf, ok := ret.Get(0).(func() repository.OrderRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.OrderRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_OrderRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OrderRepo'
type MockRepositoryFactory_OrderRepo_Call struct {
	*mock.Call
}

// OrderRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) OrderRepo() *MockRepositoryFactory_OrderRepo_Call {
	return &MockRepositoryFactory_OrderRepo_Call{Call: _e.mock.On("OrderRepo")}
}

func (_c *MockRepositoryFactory_OrderRepo_Call) Run(run func()) *MockRepositoryFactory_OrderRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_OrderRepo_Call) Return(_a0 repository.OrderRepository) *MockRepositoryFactory_OrderRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_OrderRepo_Call) RunAndReturn(run func() repository.OrderRepository) *MockRepositoryFactory_OrderRepo_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
