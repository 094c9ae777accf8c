package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification kinds shown in the dashboard notification center
const (
	NotificationTypeEvent        = "event"
	NotificationTypeCertificate  = "certificate"
	NotificationTypeRegistration = "registration"
	NotificationTypeAnnouncement = "announcement"
	NotificationTypeReminder     = "reminder"
)

type NotificationModel struct {
	NotificationID      uuid.UUID      `gorm:"column:notification_id;type:uuid;primaryKey" json:"notification_id"`
	NotificationUserID  uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index:idx_notifications_user_id" json:"notification_user_id"`
	NotificationType    string         `gorm:"column:notification_type;type:varchar(20);not null" json:"notification_type"`
	NotificationTitle   string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage string         `gorm:"column:notification_message;type:text" json:"notification_message"`
	NotificationTags    pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationData    datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data,omitempty"`
	NotificationRead    bool           `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationCreatedAt time.Time    `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
