package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/lostfound/dto"
	"campushub_backend/internals/features/lostfound/service"
	helper "campushub_backend/internals/helpers"
)

type LostItemController struct {
	DB      *gorm.DB
	Service *service.LostItemService
}

func NewLostItemController(db *gorm.DB) *LostItemController {
	return &LostItemController{DB: db, Service: service.NewLostItemService(db)}
}

// ==========================
// READ
// ==========================

func (ctrl *LostItemController) GetItems(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	items, total, err := ctrl.Service.List(service.LostItemFilter{
		Status:   strings.TrimSpace(c.Query("status")),
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	}, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonList(c, "OK", dto.ToLostItemResponseList(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *LostItemController) GetItemByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}
	item, err := ctrl.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, "OK", dto.ToLostItemResponse(item))
}

// ==========================
// WRITE
// ==========================

func (ctrl *LostItemController) CreateItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.LostItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	item := req.ToModel(userID, helper.GetUserNameFromLocals(c))

	// thumbnail is best effort, the original image still ships on failure
	if req.LostItemImage != nil && *req.LostItemImage != "" {
		if thumb, err := helper.PosterThumbDataURL(*req.LostItemImage); err != nil {
			log.Printf("[WARN] lost item thumbnail generation failed: %v", err)
		} else {
			item.LostItemThumbURL = &thumb
		}
	}

	if err := ctrl.Service.Create(item); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create item")
	}
	return helper.JsonCreated(c, "Item reported", dto.ToLostItemResponse(item))
}

// MarkClaimed is allowed for the poster or an admin.
func (ctrl *LostItemController) MarkClaimed(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}
	if err := ctrl.requirePosterOrAdmin(c, id); err != nil {
		return err
	}

	affected, err := ctrl.Service.MarkClaimed(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update item")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
	}
	return helper.JsonUpdated(c, "Item marked as claimed", fiber.Map{"lost_item_id": id})
}

func (ctrl *LostItemController) DeleteItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}
	if err := ctrl.requirePosterOrAdmin(c, id); err != nil {
		return err
	}

	if err := ctrl.Service.Remove(id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete item")
	}
	return helper.JsonDeleted(c, "Item deleted", fiber.Map{"lost_item_id": id})
}

func (ctrl *LostItemController) requirePosterOrAdmin(c *fiber.Ctx, itemID uuid.UUID) error {
	if helper.GetRoleFromLocals(c) == constants.RoleAdmin {
		return nil
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	item, err := ctrl.Service.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	if item.LostItemPosterID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the poster can manage this item")
	}
	return nil
}
