package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"crm/config"
	apperrors "crm/errors"
	"crm/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a migrated in-memory store. A single connection keeps
// every query on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), config.GormConfig(gormlogger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role, status string) models.User {
	t.Helper()

	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := models.User{Name: email, Email: email, Password: hashed, Role: role, Status: status}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func assertCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	if !apperrors.HasCode(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func resumeHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["resume"][0]
}

// fixedClock returns a clock that can be moved by tests.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type memoryRevoker struct {
	revoked map[string]time.Duration
}

func (m *memoryRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if m.revoked == nil {
		m.revoked = make(map[string]time.Duration)
	}
	m.revoked[jti] = ttl
	return nil
}

func (m *memoryRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := m.revoked[jti]
	return ok, nil
}
