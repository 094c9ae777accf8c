package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "campushub_backend/internals/features/users/auth/model"
	userModel "campushub_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeUser(t *testing.T, db *gorm.DB, email, studentID string) *userModel.UserModel {
	t.Helper()
	user := &userModel.UserModel{
		UserName: "Test User",
		Email:    email,
		Password: "hashed-password",
		IsActive: true,
	}
	if studentID != "" {
		user.StudentID = &studentID
	}
	if err := CreateUser(db, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestFindUserByIdentifier(t *testing.T) {
	db := newTestDB(t)
	user := makeUser(t, db, "alice@campus.edu", "S12345")

	byEmail, err := FindUserByIdentifier(db, "alice@campus.edu")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Error("email lookup returned wrong user")
	}

	byStudentID, err := FindUserByIdentifier(db, "S12345")
	if err != nil {
		t.Fatalf("by student id: %v", err)
	}
	if byStudentID.ID != user.ID {
		t.Error("student id lookup returned wrong user")
	}

	if _, err := FindUserByIdentifier(db, "nobody@campus.edu"); err != gorm.ErrRecordNotFound {
		t.Fatalf("missing identifier: err = %v, want ErrRecordNotFound", err)
	}
}

func TestEmailAndStudentIDTaken(t *testing.T) {
	db := newTestDB(t)
	makeUser(t, db, "bob@campus.edu", "S99999")

	if taken, err := IsEmailTaken(db, "bob@campus.edu"); err != nil || !taken {
		t.Errorf("IsEmailTaken = %v, %v; want true, nil", taken, err)
	}
	if taken, err := IsEmailTaken(db, "free@campus.edu"); err != nil || taken {
		t.Errorf("IsEmailTaken(free) = %v, %v; want false, nil", taken, err)
	}
	if taken, err := IsStudentIDTaken(db, "S99999"); err != nil || !taken {
		t.Errorf("IsStudentIDTaken = %v, %v; want true, nil", taken, err)
	}
}

func TestBlacklistAndCleanup(t *testing.T) {
	db := newTestDB(t)

	if err := BlacklistToken(db, "expired-token", -time.Minute); err != nil {
		t.Fatalf("blacklist expired: %v", err)
	}
	if err := BlacklistToken(db, "live-token", time.Hour); err != nil {
		t.Fatalf("blacklist live: %v", err)
	}

	removed, err := CleanupExpiredBlacklist(db)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	var remaining int64
	if err := db.Model(&authModel.TokenBlacklist{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 1 {
		t.Errorf("remaining = %d, want 1", remaining)
	}
}

func TestRefreshTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := makeUser(t, db, "carol@campus.edu", "")
	hash := []byte("fake-hmac-digest")

	rt := &authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	if err := CreateRefreshToken(db, rt); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := FindRefreshTokenByHashActive(db, hash)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if found.UserID != user.ID {
		t.Error("active lookup returned wrong token")
	}

	if err := RevokeRefreshTokenByID(db, rt.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := FindRefreshTokenByHashActive(db, hash); err != gorm.ErrRecordNotFound {
		t.Fatalf("revoked token still active: err = %v", err)
	}

	// revoking twice reports not found
	if err := RevokeRefreshTokenByID(db, rt.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("second revoke: err = %v, want ErrRecordNotFound", err)
	}
}

func TestExpiredRefreshTokenIsNotActive(t *testing.T) {
	db := newTestDB(t)
	user := makeUser(t, db, "dave@campus.edu", "")
	hash := []byte("stale-digest")

	if err := CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := FindRefreshTokenByHashActive(db, hash); err != gorm.ErrRecordNotFound {
		t.Fatalf("expired token still active: err = %v", err)
	}
}

func TestRevokeAllRefreshTokensForUser(t *testing.T) {
	db := newTestDB(t)
	user := makeUser(t, db, "erin@campus.edu", "")

	for _, h := range []string{"h1", "h2"} {
		if err := CreateRefreshToken(db, &authModel.RefreshToken{
			UserID:    user.ID,
			TokenHash: []byte(h),
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}); err != nil {
			t.Fatalf("create %s: %v", h, err)
		}
	}

	if err := RevokeAllRefreshTokensForUser(db, user.ID); err != nil {
		t.Fatalf("revoke all: %v", err)
	}

	var live int64
	if err := db.Model(&authModel.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", user.ID).
		Count(&live).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if live != 0 {
		t.Errorf("live tokens = %d, want 0", live)
	}
}
