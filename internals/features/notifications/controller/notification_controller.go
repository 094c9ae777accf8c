package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/notifications/dto"
	"campushub_backend/internals/features/notifications/model"
	notifService "campushub_backend/internals/features/notifications/service"
	helper "campushub_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/u/notifications
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] count notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var unread int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count unread notifications")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] fetch notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "ok",
		"data":         dto.ToNotificationResponseList(notifs),
		"unread_count": unread,
		"pagination":   helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Update("notification_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Notification marked as read", nil)
}

// PATCH /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = ?", userID, false).
		Update("notification_read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.JsonUpdated(c, "All notifications marked as read", nil)
}

// DELETE /api/u/notifications/:id
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}
	if err := ctrl.DB.
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	return helper.JsonDeleted(c, "Notification deleted", nil)
}

// DELETE /api/u/notifications
func (ctrl *NotificationController) ClearAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clear notifications")
	}
	return helper.JsonDeleted(c, "Notifications cleared", nil)
}

// POST /api/a/announcements — broadcast to every active user
func (ctrl *NotificationController) CreateAnnouncement(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var userIDs []uuid.UUID
	if err := ctrl.DB.Table("users").
		Where("is_active = ?", true).
		Pluck("id", &userIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve recipients")
	}

	for _, uid := range userIDs {
		notifService.Notify(ctrl.DB, notifService.NotifyInput{
			UserID:  uid,
			Type:    model.NotificationTypeAnnouncement,
			Title:   req.Title,
			Message: req.Message,
			Tags:    req.Tags,
		})
	}

	return helper.JsonCreated(c, "Announcement sent", fiber.Map{"recipients": len(userIDs)})
}
