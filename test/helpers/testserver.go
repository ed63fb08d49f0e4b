package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"promoadmin/internal/app"
	"promoadmin/internal/auth"
	"promoadmin/internal/config"
	"promoadmin/internal/logger"
	"promoadmin/internal/models"
	"promoadmin/internal/repositories"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer runs the full router against a real database. Tests are
// skipped unless DATABASE_URL points at a disposable test database.
type TestServer struct {
	DB     *gorm.DB
	Router http.Handler
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	config.LoadConfig()
	cfg := config.GetConfig()
	cfg.Storage.BasePath = t.TempDir()
	cfg.JWT.Secret = "integration-test-secret"
	logger.Init("test")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Banner{},
		&models.Event{},
		&models.EventParticipant{},
		&models.EventCertificate{},
		&models.PartnerCategory{},
		&models.Partner{},
		&models.SupportSection{},
		&models.SupportPlan{},
		&models.SupportFeature{},
		&models.SupportOption{},
	))

	router, err := app.SetupRouter(cfg, db)
	require.NoError(t, err)

	ts := &TestServer{DB: db, Router: router}
	t.Cleanup(func() { ts.truncateAll(t) })
	return ts
}

func (ts *TestServer) truncateAll(t *testing.T) {
	tables := []string{
		"support_features", "support_options", "support_plans", "support_sections",
		"event_participants", "event_certificates", "events",
		"partners", "partner_categories", "banners", "users",
	}
	for _, table := range tables {
		require.NoError(t, ts.DB.Exec("DELETE FROM "+table).Error)
	}
}

// CreateAdmin inserts an admin account and returns a bearer token for it.
func (ts *TestServer) CreateAdmin(t *testing.T, email, password string) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, repositories.NewUserRepository(ts.DB).Create(context.Background(), user))

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)
	return token
}

// DoJSON performs a JSON request against the router.
func (ts *TestServer) DoJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}
