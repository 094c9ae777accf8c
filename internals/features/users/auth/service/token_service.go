package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "campushub_backend/internals/features/users/auth/repository"
	helper "campushub_backend/internals/helpers"
)

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token — rotates the refresh token on every use.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// The hash must still be live in the store; a replayed rotated token fails here.
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	stored, err := authRepo.FindRefreshTokenByHashActive(db, hash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}
	if stored.UserID != userID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	if err := authRepo.RevokeRefreshTokenByID(db, stored.ID); err != nil {
		log.Printf("[WARN] failed to revoke rotated refresh token: %v", err)
	}

	return issueTokens(c, db, user)
}

// RevokeAllSessions invalidates every live refresh token for a user.
// Used when an admin deactivates an account.
func RevokeAllSessions(db *gorm.DB, userID uuid.UUID) error {
	return authRepo.RevokeAllRefreshTokensForUser(db, userID)
}
