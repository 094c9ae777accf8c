package model

import (
	"time"

	"campushub_backend/internals/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel maps the users table. Password is a bcrypt hash and never
// leaves the API; StudentID is set for students only, faculty and admin
// accounts leave it nil.
type UserModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserName   string    `gorm:"column:user_name;size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email      string    `gorm:"column:email;size:255;unique;not null" json:"email" validate:"required,email"`
	Password   string    `gorm:"column:password;not null" json:"-" validate:"required,min=8"`
	GoogleID   *string   `gorm:"column:google_id;size:255;unique" json:"google_id,omitempty"`
	StudentID  *string   `gorm:"column:student_id;size:30;unique" json:"student_id,omitempty"`
	Department *string   `gorm:"column:department;size:120" json:"department,omitempty"`
	Role       string    `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role" validate:"omitempty,oneof=student faculty admin"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	return nil
}
