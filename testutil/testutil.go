package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/oliverisaac/pinboard/db"
	"github.com/oliverisaac/pinboard/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var dbCounter atomic.Int64

// OpenInMemoryDB opens a migrated, shared-cache in-memory SQLite database
// unique to the calling test. It is closed on test cleanup.
func OpenInMemoryDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbCounter.Add(1))
	d, err := db.OpenSQLite(dsn)
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := d.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return d
}

// SeedUser inserts a user with the given username and password.
func SeedUser(tb testing.TB, d *gorm.DB, username string, password string) types.User {
	tb.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}
	u := types.User{Username: username, Password: string(hash)}
	if err := d.Create(&u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}
