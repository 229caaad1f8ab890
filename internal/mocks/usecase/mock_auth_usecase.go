package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock type for the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

// SignUp provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for SignUp")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.SignUpInput) (*entity.User, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.SignUpInput) *entity.User); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.SignUpInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthUsecase_SignUp_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SignUp'
type MockAuthUsecase_SignUp_Call struct {
	*mock.Call
}

// SignUp is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.SignUpInput
func (_e *MockAuthUsecase_Expecter) SignUp(ctx interface{}, input interface{}) *MockAuthUsecase_SignUp_Call {
	return &MockAuthUsecase_SignUp_Call{Call: _e.mock.On("SignUp", ctx, input)}
}

func (_c *MockAuthUsecase_SignUp_Call) Run(run func(ctx context.Context, input *usecase.SignUpInput)) *MockAuthUsecase_SignUp_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.SignUpInput))
	})
	return _c
}

func (_c *MockAuthUsecase_SignUp_Call) Return(_a0 *entity.User, _a1 error) *MockAuthUsecase_SignUp_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthUsecase_SignUp_Call) RunAndReturn(run func(context.Context, *usecase.SignUpInput) (*entity.User, error)) *MockAuthUsecase_SignUp_Call {
	_c.Call.Return(run)
	return _c
}

// SignIn provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for SignIn")
	}

	var r0 *usecase.SignInOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.SignInInput) (*usecase.SignInOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.SignInInput) *usecase.SignInOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.SignInOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.SignInInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthUsecase_SignIn_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SignIn'
type MockAuthUsecase_SignIn_Call struct {
	*mock.Call
}

// SignIn is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.SignInInput
func (_e *MockAuthUsecase_Expecter) SignIn(ctx interface{}, input interface{}) *MockAuthUsecase_SignIn_Call {
	return &MockAuthUsecase_SignIn_Call{Call: _e.mock.On("SignIn", ctx, input)}
}

func (_c *MockAuthUsecase_SignIn_Call) Run(run func(ctx context.Context, input *usecase.SignInInput)) *MockAuthUsecase_SignIn_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.SignInInput))
	})
	return _c
}

func (_c *MockAuthUsecase_SignIn_Call) Return(_a0 *usecase.SignInOutput, _a1 error) *MockAuthUsecase_SignIn_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthUsecase_SignIn_Call) RunAndReturn(run func(context.Context, *usecase.SignInInput) (*usecase.SignInOutput, error)) *MockAuthUsecase_SignIn_Call {
	_c.Call.Return(run)
	return _c
}

// Authenticate provides a mock function with given fields: ctx, token
func (_m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 *entity.Session
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Session, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Session); ok {
		r0 = rf(ctx, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Session)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthUsecase_Authenticate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Authenticate'
type MockAuthUsecase_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
func (_e *MockAuthUsecase_Expecter) Authenticate(ctx interface{}, token interface{}) *MockAuthUsecase_Authenticate_Call {
	return &MockAuthUsecase_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, token)}
}

func (_c *MockAuthUsecase_Authenticate_Call) Run(run func(ctx context.Context, token string)) *MockAuthUsecase_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockAuthUsecase_Authenticate_Call) Return(_a0 *entity.Session, _a1 error) *MockAuthUsecase_Authenticate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthUsecase_Authenticate_Call) RunAndReturn(run func(context.Context, string) (*entity.Session, error)) *MockAuthUsecase_Authenticate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	mock := &MockAuthUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
