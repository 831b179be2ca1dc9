package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wekeepgrowing/memberchat/internal/adapter/repository"
	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	domainrepo "github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db"
)

// newTestDB opens a file-backed sqlite database with the full schema
// migrated. A file (rather than :memory:) keeps concurrent access tests
// honest, and the pragmas enforce the same constraints postgres does.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "memberchat_test.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)"

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return database
}

// newTestRepositories wires every repository over a fresh test database.
func newTestRepositories(t *testing.T) *domainrepo.Repositories {
	t.Helper()
	return repository.InitRepositories(newTestDB(t))
}

// createTestMember stores a member with placeholder credentials.
func createTestMember(t *testing.T, repos *domainrepo.Repositories, username string) *entity.Member {
	t.Helper()

	member, err := entity.NewMember(username, "hashed-password", "salt")
	if err != nil {
		t.Fatalf("new member: %v", err)
	}
	if err := repos.Member.Create(context.Background(), member); err != nil {
		t.Fatalf("create member %q: %v", username, err)
	}
	return member
}
