package server

import (
	"testing"

	"simplesocial/internal/config"
	"simplesocial/internal/mediahost"
	"simplesocial/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:            "0",
		JWTSecret:       "test-secret-used-only-in-tests",
		Env:             "test",
		MediaUploadURL:  "http://mediahost.invalid/upload",
		StagingDir:      t.TempDir(),
		MaxUploadSizeMB: 10,
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// setupTestServer builds a Server over in-memory SQLite and the given
// uploader, with the production fiber config and route stack mounted.
func setupTestServer(t *testing.T, uploader mediahost.Uploader) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	cfg := testConfig(t)
	db := setupTestDB(t)
	srv, err := NewServerWithDeps(cfg, db, nil, uploader)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	app := NewFiberApp(cfg)
	srv.SetupRoutes(app)
	return app, srv, db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{Email: email, Password: string(hash)}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func bearerToken(t *testing.T, srv *Server, userID uint) string {
	t.Helper()
	token, err := srv.generateToken(userID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}
