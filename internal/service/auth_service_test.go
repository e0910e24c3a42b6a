package service_test

import (
	"context"
	"sync"
	"testing"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/memory"
	"notekeep-be/internal/pkg/token"
	"notekeep-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newAuthService(t *testing.T) (service.IAuthService, *memory.Factory, *token.Manager) {
	t.Helper()
	factory := memory.NewFactory()
	tokens := token.NewManager("test-secret", time.Hour)
	return service.NewAuthService(factory, tokens, nopLogger{}), factory, tokens
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, factory, _ := newAuthService(t)
	ctx := context.Background()

	err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	err = svc.Signup(ctx, &dto.SignupRequest{Email: "a@x.com", Password: "pw2"})
	assert.ErrorIs(t, err, apperror.ErrEmailRegistered)

	count, err := factory.NewUnitOfWork(ctx).UserRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSignupRace(t *testing.T) {
	svc, factory, _ := newAuthService(t)
	ctx := context.Background()

	const attempts = 16
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Signup(ctx, &dto.SignupRequest{Email: "race@x.com", Password: "pw"})
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, apperror.ErrEmailRegistered)
		}
	}
	assert.Equal(t, 1, succeeded)

	count, err := factory.NewUnitOfWork(ctx).UserRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	svc, _, tokens := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "a@x.com", Password: "pw1"}))

	res, err := svc.Login(ctx, &dto.LoginRequest{Username: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)

	subject, err := tokens.Verify(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "a@x.com", Password: "pw1"}))

	_, wrongPw := svc.Login(ctx, &dto.LoginRequest{Username: "a@x.com", Password: "nope"})
	_, noUser := svc.Login(ctx, &dto.LoginRequest{Username: "ghost@x.com", Password: "pw1"})

	assert.ErrorIs(t, wrongPw, apperror.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, apperror.ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
}
