package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/models"
	"github.com/thereayou/projectconnect/pkg/auth"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *auth.JWTManager, *models.User) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	db := database.NewDatabase(gormDB)

	user := &models.User{Name: "Test", Email: "test@example.com"}
	if err := db.SaveUser(user); err != nil {
		t.Fatalf("save user: %v", err)
	}

	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)

	router := gin.New()
	router.Use(AuthMiddleware(jwtMgr, nil, db))
	router.GET("/protected", func(c *gin.Context) {
		userID := c.MustGet(UserIDKey).(uuid.UUID)
		c.JSON(200, gin.H{"user_id": userID})
	})

	return router, jwtMgr, user
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	testCases := []string{
		"InvalidToken",
		"Basic dXNlcjpwYXNz",
		"Bearer",
	}

	for _, header := range testCases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", header, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	router, _, user := newAuthTestRouter(t)

	otherMgr := auth.NewJWTManager("other-secret", time.Hour)
	token, _ := otherMgr.Generate(user.ID.String())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, jwtMgr, user := newAuthTestRouter(t)

	token, err := jwtMgr.Generate(user.ID.String())
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
