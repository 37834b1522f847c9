package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/employee-management-api/internal/auth"
	"github.com/yukikurage/employee-management-api/internal/config"
	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/testutil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewSQLiteDB(t)
	tokens := auth.NewTokenManager([]byte("test-secret"), 20*time.Minute)
	return New(&config.Config{}, db, tokens)
}

func request(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_RegisterLoginAndLookup(t *testing.T) {
	r := setupRouter(t)
	credentials := map[string]string{"userName": "a@gmail.com", "password": "p1"}

	w := request(t, r, http.MethodPost, "/v1/users/register", "", credentials)
	require.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, http.MethodPost, "/v1/users/login", "", credentials)
	require.Equal(t, http.StatusOK, w.Code)
	var token string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	require.NotEmpty(t, token)

	w = request(t, r, http.MethodGet, "/v1/employees/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, r, http.MethodPost, "/v1/employees", token, map[string]interface{}{
		"name":        "Ada Lovelace",
		"dob":         "1990-12-10",
		"email":       "ada@example.com",
		"role":        "Engineer",
		"phoneNumber": 9876543210,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, http.MethodGet, "/v1/employees/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EmployeesRequireToken(t *testing.T) {
	r := setupRouter(t)

	assert.Equal(t, http.StatusUnauthorized, request(t, r, http.MethodGet, "/v1/employees", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, request(t, r, http.MethodGet, "/v1/employees/1/tools", "forged", nil).Code)

	other := auth.NewTokenManager([]byte("another-key"), time.Minute)
	foreign, err := other.Issue("a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(t, r, http.MethodGet, "/v1/employees", foreign, nil).Code)
}

func TestRouter_TokenForDeletedUserIsRejected(t *testing.T) {
	r := setupRouter(t)
	tokens := auth.NewTokenManager([]byte("test-secret"), 20*time.Minute)

	token, err := tokens.Issue("nobody@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(t, r, http.MethodGet, "/v1/employees", token, nil).Code)
}

func TestRouter_HealthAndRequestID(t *testing.T) {
	r := setupRouter(t)

	w := request(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(constants.HeaderRequestID))
}

func TestCORSConfig(t *testing.T) {
	all := corsConfig(&config.Config{})
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)

	listed := corsConfig(&config.Config{CORSAllowedOrigins: []string{"https://hr.example.com"}})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"https://hr.example.com"}, listed.AllowOrigins)
	assert.NoError(t, listed.Validate())
}
