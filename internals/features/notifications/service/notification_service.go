package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/notifications/model"
)

// NotifyInput describes one notification to deliver to one recipient.
type NotifyInput struct {
	UserID  uuid.UUID
	Type    string
	Title   string
	Message string
	Tags    []string
	Data    map[string]any
}

// Notify persists a notification for a recipient. Callers treat delivery as
// best-effort: failures are logged, not propagated into the triggering
// operation.
func Notify(db *gorm.DB, in NotifyInput) {
	n := model.NotificationModel{
		NotificationUserID:  in.UserID,
		NotificationType:    in.Type,
		NotificationTitle:   in.Title,
		NotificationMessage: in.Message,
		NotificationTags:    in.Tags,
	}
	if in.Data != nil {
		if b, err := json.Marshal(in.Data); err == nil {
			n.NotificationData = b
		}
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[ERROR] notification delivery failed (type=%s user=%s): %v", in.Type, in.UserID, err)
	}
}
