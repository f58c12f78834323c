package config

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
)

// SeedAdmin creates the initial back-office account from ADMIN_EMAIL /
// ADMIN_PASSWORD when no user with that email exists yet. Safe to run on
// every boot.
func SeedAdmin(db *gorm.DB) error {
	email := GetEnv("ADMIN_EMAIL", "")
	password := GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     GetEnv("ADMIN_NAME", "Admin"),
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seeded admin account %s", email)
	return nil
}
