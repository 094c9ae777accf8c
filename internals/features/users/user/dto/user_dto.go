package dto

import (
	"time"

	"campushub_backend/internals/features/users/user/model"
)

// ==========================
// REQUESTS
// ==========================

type RegisterRequest struct {
	UserName   string  `json:"user_name" validate:"required,min=3,max=50"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	StudentID  *string `json:"student_id" validate:"omitempty,min=3,max=30"`
	Department *string `json:"department" validate:"omitempty,max=120"`
	Role       string  `json:"role" validate:"omitempty,oneof=student faculty"`
}

// Identifier accepts an email address or a student ID.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	UserName   *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Department *string `json:"department" validate:"omitempty,max=120"`
}

// ==========================
// RESPONSES
// ==========================

type UserResponse struct {
	ID         string    `json:"id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	StudentID  *string   `json:"student_id,omitempty"`
	Department *string   `json:"department,omitempty"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		UserName:   u.UserName,
		Email:      u.Email,
		StudentID:  u.StudentID,
		Department: u.Department,
		Role:       u.Role,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

func ToUserResponseList(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}
