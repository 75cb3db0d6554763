package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"police-feedback-server/config"
	"police-feedback-server/database"
	"police-feedback-server/models"
)

// setupRouter builds an in-memory sqlite store and a router wired like main,
// minus the rate limiting and websocket feed.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "test-password")
	config.Load()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pool of one keeps every connection on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Officer{}, &models.Feedback{}))
	database.DB = db

	router := gin.New()
	api := router.Group("/api")
	RegisterOfficerRoutes(api)
	RegisterFeedbackRoutes(api)

	adminAuth := api.Group("/admin/auth")
	RegisterAdminAuthRoutes(adminAuth)

	adminRoutes := api.Group("/admin")
	adminRoutes.Use(AdminAuthMiddleware())
	RegisterAdminRoutes(adminRoutes)

	return router
}

func createOfficer(t *testing.T, firstName, lastName, jobTitle string) models.Officer {
	t.Helper()

	officer := models.Officer{FirstName: firstName, LastName: lastName, JobTitle: jobTitle}
	require.NoError(t, database.DB.Create(&officer).Error)
	return officer
}

func performRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// adminToken logs in through the real endpoint and returns the issued JWT
func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := performRequest(router, http.MethodPost, "/api/admin/auth/login", gin.H{
		"username": "admin",
		"password": "test-password",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
