package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shiftline-backend/api/middleware"
	"shiftline-backend/shared/database"
	"shiftline-backend/shared/database/models"
)

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Existing Org")
	seedUser(t, org, "taken@example.test", models.RoleOwner)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":             "taken@example.test",
		"password":          "secret123",
		"first_name":        "New",
		"last_name":         "Owner",
		"organization_name": "Another Org",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Email already in use")
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	router := setupTest(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":             "owner@cookie.test",
		"password":          "secret123",
		"first_name":        "Cora",
		"last_name":         "Cook",
		"organization_name": "Cookie Co",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	require.NotEmpty(t, sessionCookie.Value)
	require.True(t, sessionCookie.HttpOnly)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Login Org")
	seedUser(t, org, "user@login.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "user@login.test",
		"password": "wrong-password",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginInactiveAccount(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Inactive Org")
	user := seedUser(t, org, "gone@login.test", models.RoleEmployee)
	require.NoError(t, database.DB.Model(&user).Update("is_active", false).Error)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "gone@login.test",
		"password": "password123",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Account is inactive")
}

func TestMeRequiresAuth(t *testing.T) {
	router := setupTest(t)

	w := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	router := setupTest(t)
	org := seedOrg(t, "Password Org")
	user := seedUser(t, org, "user@pw.test", models.RoleEmployee)

	w := doJSON(t, router, http.MethodPost, "/api/auth/change-password", gin.H{
		"current_password": "not-the-password",
		"new_password":     "brandnew1",
	}, &user)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Current password is incorrect")

	w = doJSON(t, router, http.MethodPost, "/api/auth/change-password", gin.H{
		"current_password": "password123",
		"new_password":     "brandnew1",
	}, &user)
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, new one does.
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "user@pw.test",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "user@pw.test",
		"password": "brandnew1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
