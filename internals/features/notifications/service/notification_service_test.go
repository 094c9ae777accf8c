package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campushub_backend/internals/features/notifications/model"
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

	if err := db.AutoMigrate(&model.NotificationModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestNotifyPersistsNotification(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	Notify(db, NotifyInput{
		UserID:  userID,
		Type:    model.NotificationTypeEvent,
		Title:   "Event approved",
		Message: "Your event Tech Fest was approved.",
		Tags:    []string{"event", "approval"},
		Data:    map[string]any{"event_id": uuid.New().String()},
	})

	var got model.NotificationModel
	if err := db.Where("notification_user_id = ?", userID).First(&got).Error; err != nil {
		t.Fatalf("load notification: %v", err)
	}
	if got.NotificationType != model.NotificationTypeEvent {
		t.Errorf("type = %q, want event", got.NotificationType)
	}
	if got.NotificationRead {
		t.Error("new notification should start unread")
	}
	if len(got.NotificationTags) != 2 {
		t.Errorf("tags = %v, want 2 entries", got.NotificationTags)
	}
	if len(got.NotificationData) == 0 {
		t.Error("data payload not stored")
	}
}

func TestNotifyFailureDoesNotPanic(t *testing.T) {
	db := newTestDB(t)

	// drop the table so the insert fails; Notify must swallow the error
	if err := db.Migrator().DropTable(&model.NotificationModel{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	Notify(db, NotifyInput{
		UserID: uuid.New(),
		Type:   model.NotificationTypeReminder,
		Title:  "Ping",
	})
}
