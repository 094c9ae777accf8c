package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/clubs/dto"
	"campushub_backend/internals/features/clubs/service"
	notifModel "campushub_backend/internals/features/notifications/model"
	notifService "campushub_backend/internals/features/notifications/service"
	helper "campushub_backend/internals/helpers"
)

type ClubController struct {
	DB      *gorm.DB
	Service *service.ClubService
}

func NewClubController(db *gorm.DB) *ClubController {
	return &ClubController{DB: db, Service: service.NewClubService(db)}
}

// ==========================
// READ
// ==========================

// GetClubs lists all clubs alphabetically with member counts. When the
// caller is authenticated the response also flags their memberships.
func (ctrl *ClubController) GetClubs(c *fiber.Ctx) error {
	clubs, err := ctrl.Service.GetAll()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	counts, err := ctrl.Service.MemberCounts()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	memberships := map[uuid.UUID]struct{}{}
	if userID, err := helper.GetUserIDFromLocals(c); err == nil {
		if ms, err := ctrl.Service.MembershipSet(userID); err == nil {
			memberships = ms
		}
	}

	out := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		_, isMember := memberships[clubs[i].ClubID]
		out = append(out, dto.ToClubResponse(&clubs[i], counts[clubs[i].ClubID], isMember))
	}
	return helper.JsonOK(c, "OK", out)
}

func (ctrl *ClubController) GetClubByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	club, err := ctrl.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	count, err := ctrl.Service.MemberCount(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	isMember := false
	if userID, err := helper.GetUserIDFromLocals(c); err == nil {
		isMember, _ = ctrl.Service.IsMember(id, userID)
	}

	return helper.JsonOK(c, "OK", dto.ToClubResponse(club, count, isMember))
}

func (ctrl *ClubController) GetMyClubs(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	clubs, err := ctrl.Service.MyClubs(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	counts, err := ctrl.Service.MemberCounts()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	out := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		out = append(out, dto.ToClubResponse(&clubs[i], counts[clubs[i].ClubID], true))
	}
	return helper.JsonOK(c, "OK", out)
}

// ==========================
// MEMBERSHIP
// ==========================

func (ctrl *ClubController) JoinClub(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	member, err := ctrl.Service.Join(clubID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to join club")
	}

	if club, err := ctrl.Service.GetByID(clubID); err == nil {
		notifService.Notify(ctrl.DB, notifService.NotifyInput{
			UserID:  userID,
			Type:    notifModel.NotificationTypeRegistration,
			Title:   "Welcome to " + club.ClubName,
			Message: "You are now a member of " + club.ClubName + ".",
			Tags:    []string{"club"},
			Data:    map[string]any{"club_id": clubID.String()},
		})
	}

	return helper.JsonOK(c, "Joined club", member)
}

func (ctrl *ClubController) LeaveClub(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	if err := ctrl.Service.Leave(clubID, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to leave club")
	}
	return helper.JsonOK(c, "Left club", nil)
}

// ==========================
// ADMIN
// ==========================

func (ctrl *ClubController) CreateClub(c *fiber.Ctx) error {
	var req dto.ClubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	club := req.ToModel()
	if err := ctrl.Service.Create(club); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Club name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create club")
	}
	return helper.JsonCreated(c, "Club created", dto.ToClubResponse(club, 0, false))
}

func (ctrl *ClubController) UpdateClub(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	var req dto.ClubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	club, err := ctrl.Service.Update(id, map[string]interface{}{
		"club_name":           req.ClubName,
		"club_description":    req.ClubDescription,
		"club_category":       req.ClubCategory,
		"club_president_name": req.ClubPresidentName,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update club")
	}

	count, _ := ctrl.Service.MemberCount(id)
	return helper.JsonUpdated(c, "Club updated", dto.ToClubResponse(club, count, false))
}

func (ctrl *ClubController) DeleteClub(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}
	if err := ctrl.Service.Remove(id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete club")
	}
	return helper.JsonDeleted(c, "Club deleted", fiber.Map{"club_id": id})
}

// GetClubMembers returns a club's roster, oldest membership first.
func (ctrl *ClubController) GetClubMembers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	members, err := ctrl.Service.Members(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}
	return helper.JsonOK(c, "Members fetched", members)
}
