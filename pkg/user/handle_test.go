package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sycosoft/hireout/pkg/result"
)

type envelope struct {
	Code         result.Code     `json:"code"`
	ErrorMessage string          `json:"errorMessage"`
	Entity       json.RawMessage `json:"entity"`
}

func newTestRouter() (*chi.Mux, *UserService) {
	svc := NewUserService(NewInMemoryUserRepository(), NewInMemoryRoleRepository())
	r := chi.NewRouter()
	Routes(r, NewHandle(svc))
	return r, svc
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestCreateUserEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/users", CreateUserRequest{
		Username:  "test.user",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, result.CreationSuccess, env.Code)

	var created User
	require.NoError(t, json.Unmarshal(env.Entity, &created))
	assert.Equal(t, "test.user", created.Username)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.IsDeleted)
}

func TestCreateUserEndpointValidationFailure(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/users", CreateUserRequest{
		Username: "test.user",
		Password: "password123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, result.CreationFailure, env.Code)
	assert.Equal(t, MsgFirstNameNullOrBlank, env.ErrorMessage)
}

func TestGetUserEndpoint(t *testing.T) {
	router, svc := newTestRouter()
	saved := svc.SaveUser(context.Background(), User{
		Username: "test.user", Password: "password123", FirstName: "Test", LastName: "User",
	})
	require.Equal(t, result.CreationSuccess, saved.Code)

	rec := doJSON(t, router, http.MethodGet, "/users/"+saved.Entity.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, result.FetchSuccess, env.Code)

	rec = doJSON(t, router, http.MethodGet, "/users/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUserEndpointUsernameImmutable(t *testing.T) {
	router, svc := newTestRouter()
	saved := svc.SaveUser(context.Background(), User{
		Username: "test.user", Password: "password123", FirstName: "Test", LastName: "User",
	})
	require.Equal(t, result.CreationSuccess, saved.Code)

	rec := doJSON(t, router, http.MethodPut, "/users/"+saved.Entity.ID.String(), UpdateUserRequest{
		Username:  "changed",
		FirstName: "Jane",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, result.UpdateFailure, env.Code)
	assert.Equal(t, MsgUsernameImmutable, env.ErrorMessage)
}

func TestRoleEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/roles", CreateRoleRequest{RoleName: "ROLE_ADMIN"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/roles/batch", CreateRolesRequest{
		RoleNames: []string{"ROLE_USER", "ROLE_ADMIN"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var results []envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, result.CreationSuccess, results[0].Code)
	assert.Equal(t, result.CreationFailure, results[1].Code)
	assert.Equal(t, MsgRoleNotUnique, results[1].ErrorMessage)

	rec = doJSON(t, router, http.MethodGet, "/roles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var roles []Role
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
	assert.Len(t, roles, 2)

	rec = doJSON(t, router, http.MethodGet, "/roles/name/ROLE_ADMIN", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/roles/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddRoleToUserEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/users/username/test.user/roles/ROLE_ADMIN", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, result.UpdateFailure, env.Code)
	assert.Equal(t, MsgAddRoleNotImplemented, env.ErrorMessage)
}
