package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
)

// ReviewController handles testimonials: public submission and listing of
// approved ones, admin moderation.
type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type reviewInput struct {
	Name       string `json:"name" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text" binding:"required"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
}

// Submit accepts a public testimonial. It always lands unapproved and only
// shows on the site once staff approve it.
func (rc *ReviewController) Submit(c *gin.Context) {
	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review input: " + err.Error()})
		return
	}

	review := models.Review{
		Name:       input.Name,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		City:       input.City,
		Phone:      input.Phone,
		IsApproved: false,
	}

	if err := rc.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// ListPublic returns approved reviews only.
func (rc *ReviewController) ListPublic(c *gin.Context) {
	var reviews []models.Review
	err := rc.db.Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing reviews: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reviews})
}

// List returns everything, pending included, for the moderation table.
func (rc *ReviewController) List(c *gin.Context) {
	var reviews []models.Review
	if err := rc.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing reviews: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reviews})
}

type approveInput struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

func (rc *ReviewController) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input approveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var review models.Review
	if err := rc.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	if err := rc.db.Model(&review).Update("is_approved", *input.IsApproved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (rc *ReviewController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var review models.Review
	if err := rc.db.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if err := rc.db.Unscoped().Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
