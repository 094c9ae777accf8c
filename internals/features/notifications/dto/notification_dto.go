package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/notifications/model"
)

// ================== REQUEST ==================

// AnnouncementRequest is the admin-facing broadcast payload.
type AnnouncementRequest struct {
	Title   string   `json:"title" validate:"required,min=3,max=255"`
	Message string   `json:"message" validate:"required"`
	Tags    []string `json:"tags"`
}

// ================== RESPONSE ==================

type NotificationResponse struct {
	NotificationID      uuid.UUID      `json:"notification_id"`
	NotificationType    string         `json:"notification_type"`
	NotificationTitle   string         `json:"notification_title"`
	NotificationMessage string         `json:"notification_message"`
	NotificationTags    []string       `json:"notification_tags"`
	NotificationData    datatypes.JSON `json:"notification_data,omitempty"`
	NotificationRead    bool           `json:"notification_read"`
	NotificationCreatedAt string       `json:"notification_created_at"`
}

// ================ CONVERSION =================

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationType:      m.NotificationType,
		NotificationTitle:     m.NotificationTitle,
		NotificationMessage:   m.NotificationMessage,
		NotificationTags:      m.NotificationTags,
		NotificationData:      m.NotificationData,
		NotificationRead:      m.NotificationRead,
		NotificationCreatedAt: m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotificationResponse(&models[i]))
	}
	return result
}
