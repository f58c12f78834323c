package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
)

// MediaController maintains the media library rows. Uploading the actual
// files is handled by the CDN widget on the admin frontend; this side only
// registers and removes URLs.
type MediaController struct {
	db *gorm.DB
}

func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{db: db}
}

func (mc *MediaController) List(c *gin.Context) {
	q := mc.db.Order("created_at DESC")
	if folder := c.Query("folder"); folder != "" && folder != "all" {
		q = q.Where("folder = ?", folder)
	}

	var media []models.Media
	if err := q.Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing media: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": media})
}

func (mc *MediaController) Create(c *gin.Context) {
	var media models.Media
	if err := c.ShouldBindJSON(&media); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media input: " + err.Error()})
		return
	}
	media.ID = 0

	if err := mc.db.Create(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register media: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"media": media})
}

func (mc *MediaController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var media models.Media
	if err := mc.db.First(&media, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	if err := mc.db.Unscoped().Delete(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted"})
}
