package user

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/sycosoft/hireout/pkg/result"
)

type Handle struct {
	userService *UserService
}

func NewHandle(userService *UserService) Handle {
	return Handle{
		userService: userService,
	}
}

type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UpdateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CreateRoleRequest struct {
	RoleName string `json:"role_name"`
}

type CreateRolesRequest struct {
	RoleNames []string `json:"role_names"`
}

// renderResult writes a result envelope, mapping its code to an HTTP status
func renderResult[T any](w http.ResponseWriter, r *http.Request, res result.Result[T], successStatus int) {
	status := successStatus
	if res.Failed() {
		status = http.StatusBadRequest
		if res.Code == result.FetchFailure {
			status = http.StatusNotFound
		}
	}
	render.Status(r, status)
	render.JSON(w, r, res)
}

// Get a list of users
// (GET /users)
func (h Handle) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		slog.Error("Failed getting users", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": "Failed getting users"})
		return
	}
	render.JSON(w, r, users)
}

// Create a new user
// (POST /users)
func (h Handle) CreateUser(w http.ResponseWriter, r *http.Request) {
	var request CreateUserRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "Invalid request body"})
		return
	}

	var user User
	copier.Copy(&user, &request)

	renderResult(w, r, h.userService.SaveUser(r.Context(), user), http.StatusCreated)
}

// Get user details by UUID
// (GET /users/{uuid})
func (h Handle) GetUser(w http.ResponseWriter, r *http.Request, uuidStr string) {
	userUUID, err := uuid.Parse(uuidStr)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "Invalid UUID format"})
		return
	}

	renderResult(w, r, h.userService.GetUser(r.Context(), userUUID), http.StatusOK)
}

// Get user details by username
// (GET /users/username/{username})
func (h Handle) GetUserByUsername(w http.ResponseWriter, r *http.Request, username string) {
	renderResult(w, r, h.userService.GetUserByUsername(r.Context(), username), http.StatusOK)
}

// Update user details by UUID
// (PUT /users/{uuid})
func (h Handle) UpdateUser(w http.ResponseWriter, r *http.Request, uuidStr string) {
	userUUID, err := uuid.Parse(uuidStr)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "Invalid UUID format"})
		return
	}

	var request UpdateUserRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "Invalid request body"})
		return
	}

	var user User
	copier.Copy(&user, &request)
	user.ID = userUUID

	renderResult(w, r, h.userService.UpdateUser(r.Context(), user), http.StatusOK)
}

// Delete user by UUID
// (DELETE /users/{uuid})
func (h Handle) DeleteUser(w http.ResponseWriter, r *http.Request, uuidStr string) {
	userUUID, err := uuid.Parse(uuidStr)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "Invalid UUID format"})
		return
	}

	renderResult(w, r, h.userService.DeleteUser(r.Context(), userUUID), http.StatusOK)
}

// Delete user by username
// (DELETE /users/username/{username})
func (h Handle) DeleteUserByUsername(w http.ResponseWriter, r *http.Request, username string) {
	renderResult(w, r, h.userService.DeleteUserByUsername(r.Context(), username), http.StatusOK)
}

// Get a list of roles
// (GET /roles)
func (h Handle) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.userService.GetAllUserRoles(r.Context())
	if err != nil {
		slog.Error("Failed getting roles", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": "Failed getting roles"})
		return
	}
	render.JSON(w, r, roles)
}

// Create a new role
// (POST /roles)
func (h Handle) CreateRole(w http.ResponseWriter, r *http.Request) {
	var request CreateRoleRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "Invalid request body"})
		return
	}

	renderResult(w, r, h.userService.SaveUserRoleByName(r.Context(), request.RoleName), http.StatusCreated)
}

// Create several roles in one call; each element succeeds or fails on its own
// (POST /roles/batch)
func (h Handle) CreateRoles(w http.ResponseWriter, r *http.Request) {
	var request CreateRolesRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "Invalid request body"})
		return
	}

	results := h.userService.SaveUserRolesByName(r.Context(), request.RoleNames)
	status := http.StatusCreated
	for _, res := range results {
		if res.Failed() {
			status = http.StatusBadRequest
			break
		}
	}
	render.Status(r, status)
	render.JSON(w, r, results)
}

// Get role details by ID
// (GET /roles/{id})
func (h Handle) GetRole(w http.ResponseWriter, r *http.Request, id int32) {
	renderResult(w, r, h.userService.GetUserRole(r.Context(), id), http.StatusOK)
}

// Get role details by name
// (GET /roles/name/{name})
func (h Handle) GetRoleByName(w http.ResponseWriter, r *http.Request, name string) {
	renderResult(w, r, h.userService.GetUserRoleByName(r.Context(), name), http.StatusOK)
}

// Assign a role to a user
// (POST /users/username/{username}/roles/{roleName})
func (h Handle) AddRoleToUser(w http.ResponseWriter, r *http.Request, username, roleName string) {
	renderResult(w, r, h.userService.AddRoleToUser(r.Context(), username, roleName), http.StatusOK)
}
