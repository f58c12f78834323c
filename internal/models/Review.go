// internal/models/review.go
package models

import (
	"gorm.io/gorm"
)

// Review is a customer testimonial. Public submissions always land
// unapproved; only approved reviews are served to the public pages.
type Review struct {
	gorm.Model
	Name       string `json:"name" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text" binding:"required"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	IsApproved bool   `json:"is_approved"`
}
