package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "campushub_backend/internals/features/users/auth/service"
	"campushub_backend/internals/features/users/user/dto"
	"campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ==========================
// SELF
// ==========================

func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = strings.TrimSpace(*req.UserName)
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserResponse(&user))
}

// ==========================
// ADMIN
// ==========================

// GetUsers lists accounts with optional role and search filters.
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonList(c, "OK", dto.ToUserResponseList(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *UserController) ActivateUser(c *fiber.Ctx) error {
	return ctrl.setActive(c, true, "User activated")
}

// DeactivateUser disables the account and revokes its live sessions.
func (ctrl *UserController) DeactivateUser(c *fiber.Ctx) error {
	return ctrl.setActive(c, false, "User deactivated")
}

func (ctrl *UserController) setActive(c *fiber.Ctx, active bool, message string) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("is_active", active)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if !active {
		if err := authService.RevokeAllSessions(ctrl.DB, userID); err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke sessions")
		}
	}

	return helper.JsonUpdated(c, message, fiber.Map{"id": userID, "is_active": active})
}
