package service_test

import (
	"context"
	"testing"

	"github.com/pazarlabs/pazar/config"
	"github.com/pazarlabs/pazar/internal/dto"
	"github.com/pazarlabs/pazar/internal/infrastructure/database/jsonfile"
	"github.com/pazarlabs/pazar/internal/repository"
	"github.com/pazarlabs/pazar/internal/service"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/pazarlabs/pazar/pkg/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityService(t *testing.T) (service.IdentityService, repository.UserRepository) {
	t.Helper()

	store, err := jsonfile.CreateNewStore(t.TempDir())
	require.NoError(t, err)

	repo := repository.CreateNewUserJSONFileRepository(store)
	conf := config.Config{JWTSecret: "test-secret", JWTKid: "test"}

	return service.CreateNewIdentityService(repo, conf, nil, &mailer.NoopMailer{}), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newIdentityService(t)
	ctx := context.Background()

	err := svc.Register(ctx, dto.UserRequest{Username: "arta", Email: "arta@example.com", Password: "hunter2"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.UserRequest{Email: "arta@example.com", Password: "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.UserID)
	assert.NotEmpty(t, resp.Token)

	user, err := repo.GetUserByID(ctx, resp.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", user.HashedPassword, "password must not be stored in plaintext")
	assert.NotEmpty(t, user.ExternalID)
}

func TestRegisterValidatesRequiredFields(t *testing.T) {
	svc, _ := newIdentityService(t)

	testCases := []struct {
		Name    string
		Request dto.UserRequest
	}{
		{Name: "missing username", Request: dto.UserRequest{Email: "a@example.com", Password: "x"}},
		{Name: "missing email", Request: dto.UserRequest{Username: "a", Password: "x"}},
		{Name: "missing password", Request: dto.UserRequest{Username: "a", Email: "a@example.com"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := svc.Register(context.Background(), tc.Request)
			assert.ErrorIs(t, err, errs.ErrMissingRegisterFields)
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, repo := newIdentityService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.UserRequest{Username: "arta", Email: "arta@example.com", Password: "x"}))

	testCases := []struct {
		Name    string
		Request dto.UserRequest
	}{
		{Name: "duplicate email", Request: dto.UserRequest{Username: "blerim", Email: "arta@example.com", Password: "x"}},
		{Name: "duplicate username", Request: dto.UserRequest{Username: "arta", Email: "blerim@example.com", Password: "x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := svc.Register(ctx, tc.Request)
			assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)
		})
	}

	// No record was appended by the rejected attempts.
	missing, err := repo.GetUserByEmail(ctx, "blerim@example.com")
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.UserRequest{Username: "arta", Email: "arta@example.com", Password: "hunter2"}))

	testCases := []struct {
		Name    string
		Request dto.UserRequest
	}{
		{Name: "wrong password", Request: dto.UserRequest{Email: "arta@example.com", Password: "wrong"}},
		{Name: "unknown email", Request: dto.UserRequest{Email: "none@example.com", Password: "hunter2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := svc.Login(ctx, tc.Request)
			assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		})
	}
}

func TestResolvePrincipal(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.UserRequest{Username: "arta", Email: "arta@example.com", Password: "x"}))

	principal, err := svc.ResolvePrincipal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "arta", principal.Username)

	_, err = svc.ResolvePrincipal(ctx, 99)
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}
