package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"minivutto_backend/internal/auth"
	"minivutto_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodGet, "/auth/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token required", decodeJSON(t, w)["message"])

	w = env.request(http.MethodGet, "/auth/users", "not-a-token", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeJSON(t, w)["message"])

	// Expired tokens get the same response as forged ones.
	expired := auth.NewTokenManager(testJWTSecret, -time.Minute)
	user := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)
	expiredToken, err := expired.Generate(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	w = env.request(http.MethodGet, "/auth/users", expiredToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeJSON(t, w)["message"])
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	caller := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)
	env.createUser("other@example.com", "secret123", models.UserRoleSeller, true)

	w := env.request(http.MethodGet, "/auth/users", env.tokenFor(caller), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, "Users retrieved successfully", body["message"])
	assert.EqualValues(t, 2, body["total_users"])
	assert.Len(t, body["users"], 2)
}

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	caller := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)

	w := env.request(http.MethodGet, "/auth/users/"+caller.ID, env.tokenFor(caller), nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeJSON(t, w)["user"].(map[string]any)
	assert.Equal(t, "rider@example.com", user["email"])

	w = env.request(http.MethodGet, "/auth/users/missing-id", env.tokenFor(caller), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeJSON(t, w)["message"])
}

func TestUpdateRole(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)

	w := env.request(http.MethodPatch, "/auth/users/"+user.ID+"/role", "", map[string]any{"role": "seller"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, "User role updated successfully", body["message"])
	assert.Equal(t, "seller", body["new_role"])

	var updated models.User
	require.NoError(t, env.db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, models.UserRoleSeller, updated.Role)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)

	w := env.request(http.MethodPatch, "/auth/users/"+user.ID+"/role", "", map[string]any{"role": "admin"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Invalid role. Must be either "customer" or "seller"`, decodeJSON(t, w)["message"])

	var unchanged models.User
	require.NoError(t, env.db.First(&unchanged, "id = ?", user.ID).Error)
	assert.Equal(t, models.UserRoleCustomer, unchanged.Role)
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodPatch, "/auth/users/missing-id/role", "", map[string]any{"role": "seller"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeJSON(t, w)["message"])
}

func TestUpdateVerified(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)

	w := env.request(http.MethodPatch, "/auth/users/"+user.ID+"/verify", "", map[string]any{"is_verified": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeJSON(t, w)["is_verified"])

	var updated models.User
	require.NoError(t, env.db.First(&updated, "id = ?", user.ID).Error)
	assert.False(t, updated.IsVerified)

	// The flag is required; an empty body is a validation failure, not a
	// silent false.
	w = env.request(http.MethodPatch, "/auth/users/"+user.ID+"/verify", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserPartialPatch(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)

	w := env.request(http.MethodPut, "/auth/users/"+user.ID, "", map[string]any{"first_name": "Asha"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, "User updated successfully", body["message"])
	updated := body["user"].(map[string]any)
	assert.Equal(t, "Asha", updated["first_name"])
	assert.Equal(t, "Tester", updated["last_name"])
}

func TestUpdateUserRejectsEmptyPatch(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)

	w := env.request(http.MethodPut, "/auth/users/"+user.ID, "", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "At least one of first_name or last_name is required", decodeJSON(t, w)["message"])
}

func TestUpdateUserRejectsBlankLastName(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)

	w := env.request(http.MethodPut, "/auth/users/"+user.ID, "", map[string]any{"last_name": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "last_name is required", decodeJSON(t, w)["message"])
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("rider@example.com", "secret123", models.UserRoleCustomer, true)

	w := env.request(http.MethodDelete, "/auth/users/"+user.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, "User deleted successfully", body["message"])
	assert.Equal(t, user.ID, body["deleted_user_id"])

	assert.EqualValues(t, 0, env.countRows(&models.User{}))

	w = env.request(http.MethodDelete, "/auth/users/"+user.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
