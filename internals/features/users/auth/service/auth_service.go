package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	authModel "campushub_backend/internals/features/users/auth/model"
	authRepo "campushub_backend/internals/features/users/auth/repository"
	userDTO "campushub_backend/internals/features/users/user/dto"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
)

// ==========================
// UTIL
// ==========================

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET is not configured")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET is not configured")
	}
	return configs.JWTRefreshSecret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// computeRefreshHash keys the digest with the refresh secret so a leaked
// table alone cannot be replayed.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func generateDummyPassword() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "google-" + strconv.FormatInt(nowUTC().UnixNano(), 16)
	}
	return hex.EncodeToString(buf)
}

// ==========================
// CLAIMS
// ==========================

func buildAccessClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if user.Department != nil {
		claims["department"] = *user.Department
	}
	return claims
}

func buildRefreshClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// ==========================
// ISSUE TOKENS
// ==========================

func issueTokens(c *fiber.Ctx, db *gorm.DB, user *userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to persist refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":         userDTO.ToUserResponse(user),
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

// ==========================
// REGISTER
// ==========================

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if taken, err := authRepo.IsEmailTaken(db, email); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	} else if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}
	if input.StudentID != nil {
		if taken, err := authRepo.IsStudentIDTaken(db, *input.StudentID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
		} else if taken {
			return helper.JsonError(c, fiber.StatusConflict, "Student ID already registered")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	role := input.Role
	if role == "" {
		role = constants.RoleStudent
	}
	user := userModel.UserModel{
		UserName:   strings.TrimSpace(input.UserName),
		Email:      email,
		Password:   string(hashed),
		StudentID:  input.StudentID,
		Department: input.Department,
		Role:       role,
		IsActive:   true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email or student ID already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Account registered", userDTO.ToUserResponse(&user))
}

// ==========================
// LOGIN
// ==========================

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input userDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	identifier := strings.TrimSpace(input.Identifier)
	user, err := authRepo.FindUserByIdentifier(db, identifier)
	if err != nil {
		// identical message for unknown identifier and bad password
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return issueTokens(c, db, user)
}

// ==========================
// LOGIN GOOGLE
// ==========================

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input userDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
		}
		googleID := claimSet.Sub
		newUser := userModel.UserModel{
			UserName: claimSet.Name,
			Email:    strings.ToLower(claimSet.Email),
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = &newUser
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return issueTokens(c, db, user)
}

// ==========================
// LOGOUT
// ==========================

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := rawAccessToken(c)

	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] logout without access token; clearing cookies only")
	}

	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(rt, secret))
		}
	}

	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helper.JsonOK(c, "Logout successful", nil)
}

func rawAccessToken(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// Blacklist entries only need to outlive the token itself.
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	secret, err := getJWTSecret()
	if err != nil || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
					return until + time.Minute
				}
				return time.Minute
			}
		}
	}
	return ttl
}
