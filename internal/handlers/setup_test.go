package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/middleware"
	"github.com/thereayou/projectconnect/internal/models"
	"github.com/thereayou/projectconnect/pkg/auth"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	db     *database.Database
	jwtMgr *auth.JWTManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gormDB))

	db := database.NewDatabase(gormDB)
	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)

	projectH := NewProjectHandler(db)
	requestH := NewRequestHandler(db)
	messageH := NewMessageHandler(db, 2*time.Minute)

	authRequired := middleware.AuthMiddleware(jwtMgr, nil, db)

	router := gin.New()
	api := router.Group("/api")

	projects := api.Group("/projects", authRequired)
	projects.POST("", projectH.CreateProject)
	projects.GET("/:id", projectH.GetProject)
	projects.POST("/:id/join", projectH.JoinProject)
	projects.GET("/:id/members", projectH.GetProjectMembers)

	requests := api.Group("/project-requests", authRequired)
	requests.POST("", requestH.CreateRequest)
	requests.GET("/incoming", requestH.IncomingRequests)
	requests.PUT("/:id/status", requestH.UpdateRequestStatus)

	messages := api.Group("/messages", authRequired)
	messages.POST("", messageH.SendMessage)
	messages.GET("/conversations", messageH.GetConversations)
	messages.GET("/conversation/:userId", messageH.GetConversation)
	messages.GET("/unread-count", messageH.UnreadCount)
	messages.PUT("/mark-read/:senderId", messageH.MarkRead)

	return &testEnv{router: router, db: db, jwtMgr: jwtMgr}
}

func (e *testEnv) createUser(t *testing.T, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:       name,
		Email:      fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		LastActive: time.Now(),
	}
	require.NoError(t, e.db.SaveUser(user))
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := e.jwtMgr.Generate(user.ID.String())
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type apiResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
