package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pazarlabs/pazar/internal/dto"
	"github.com/pazarlabs/pazar/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateReturnsConflict(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/users/register", dto.UserRequest{Username: "arta", Email: "arta@example.com", Password: "x"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	testCases := []struct {
		Name    string
		Request dto.UserRequest
	}{
		{Name: "same email", Request: dto.UserRequest{Username: "blerim", Email: "arta@example.com", Password: "x"}},
		{Name: "same username", Request: dto.UserRequest{Username: "arta", Email: "blerim@example.com", Password: "x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/api/v1/users/register", tc.Request, nil)

			assert.Equal(t, http.StatusConflict, rec.Code)

			var resp response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "User already exists", resp.Message)
		})
	}
}

func TestRegisterMissingFields(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/users/register", dto.UserRequest{Username: "arta"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/users/register", dto.UserRequest{Username: "arta", Email: "arta@example.com", Password: "hunter2"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/users/login", dto.UserRequest{Email: "arta@example.com", Password: "wrong"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/users/register", dto.UserRequest{Username: "arta", Email: "arta@example.com", Password: "hunter2"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/users/login", dto.UserRequest{Email: "arta@example.com", Password: "hunter2"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			found = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "login must establish the session cookie")
}

func TestLogout(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "arta", "arta@example.com")

	rec := doJSON(e, http.MethodPost, "/api/v1/users/logout", nil, withToken(token))
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			assert.LessOrEqual(t, c.MaxAge, 0, "logout must expire the session cookie")
		}
	}
}

func TestLogoutRequiresAuthentication(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/users/logout", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
