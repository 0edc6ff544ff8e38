package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"restaurant-platform/middlewares"
)

func authRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := NewUserController(db)
	r.POST("/auth/register", ctrl.Register)
	r.POST("/auth/login", ctrl.Login)

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	admin.GET("/profile", ctrl.GetProfile)

	adminOnly := admin.Group("/")
	adminOnly.Use(middlewares.RequireRole())
	adminOnly.GET("/secrets", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func registerPayload(role string) map[string]interface{} {
	return map[string]interface{}{
		"name":     "Pat",
		"email":    "pat@example.com",
		"password": "hunter2hunter2",
		"role":     role,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := doJSON(t, r, http.MethodPost, "/auth/register", registerPayload("staff"), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email is refused.
	w = doJSON(t, r, http.MethodPost, "/auth/register", registerPayload("staff"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "pat@example.com",
		"password": "hunter2hunter2",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "staff", data["user_role"])

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "pat@example.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := doJSON(t, r, http.MethodPost, "/auth/register", registerPayload("superuser"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := doJSON(t, r, http.MethodGet, "/admin/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/profile", nil,
		map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGate(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := doJSON(t, r, http.MethodGet, "/admin/secrets", nil, authHeader(t, 1, "staff"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/secrets", nil, authHeader(t, 1, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileReturnsUser(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := doJSON(t, r, http.MethodPost, "/auth/register", registerPayload("admin"), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/profile", nil, authHeader(t, 1, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "pat@example.com", data["email"])
	// The bcrypt hash must never leave the API.
	_, exposed := data["password_hash"]
	assert.False(t, exposed)
}
