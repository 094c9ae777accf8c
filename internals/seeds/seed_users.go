package seeds

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	userModel "campushub_backend/internals/features/users/user/model"
)

const defaultAdminEmail = "admin@campus.edu"

// SeedAdminUser ensures a bootstrap admin account exists and returns it.
func SeedAdminUser(db *gorm.DB) (*userModel.UserModel, error) {
	var existing userModel.UserModel
	err := db.Where("email = ?", defaultAdminEmail).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		log.Println("[WARN] SEED_ADMIN_PASSWORD not set, using the default seed password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	dept := "Student Affairs"
	admin := userModel.UserModel{
		UserName:   "Campus Admin",
		Email:      defaultAdminEmail,
		Password:   string(hashed),
		Department: &dept,
		Role:       constants.RoleAdmin,
		IsActive:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, err
	}
	log.Printf("[INFO] seeded admin user %s", admin.Email)
	return &admin, nil
}
