package models

import "gorm.io/gorm"

// User is an admin staff account for the back office.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:'admin'"` // only "admin" today
}
