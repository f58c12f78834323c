package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
)

// DiaryController mirrors BlogController for travel diaries.
type DiaryController struct {
	db *gorm.DB
}

func NewDiaryController(db *gorm.DB) *DiaryController {
	return &DiaryController{db: db}
}

func (dc *DiaryController) ListPublic(c *gin.Context) {
	q := dc.db.Where("is_published = ?", true)
	if destination := c.Query("destination"); destination != "" {
		q = q.Where("destination = ?", destination)
	}

	var diaries []models.Diary
	if err := q.Order("published_at DESC").Find(&diaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing diaries: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": diaries})
}

func (dc *DiaryController) GetBySlug(c *gin.Context) {
	var diary models.Diary
	err := dc.db.Where("slug = ? AND is_published = ?", c.Param("slug"), true).First(&diary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diary not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"diary": diary})
}

func (dc *DiaryController) List(c *gin.Context) {
	var diaries []models.Diary
	if err := dc.db.Order("created_at DESC").Find(&diaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing diaries: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": diaries})
}

func (dc *DiaryController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var diary models.Diary
	if err := dc.db.First(&diary, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diary not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"diary": diary})
}

func (dc *DiaryController) Create(c *gin.Context) {
	var diary models.Diary
	if err := c.ShouldBindJSON(&diary); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid diary input: " + err.Error()})
		return
	}
	diary.ID = 0

	if err := dc.db.Create(&diary).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create diary: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"diary": diary})
}

func (dc *DiaryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var diary models.Diary
	if err := dc.db.First(&diary, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Diary not found"})
		return
	}

	if err := c.ShouldBindJSON(&diary); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}
	// Payload may carry an ID field; the path parameter decides the row.
	diary.ID = id

	if err := dc.db.Save(&diary).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update diary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"diary": diary})
}

func (dc *DiaryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var diary models.Diary
	if err := dc.db.First(&diary, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Diary not found"})
		return
	}

	if err := dc.db.Unscoped().Delete(&diary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete diary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diary deleted"})
}

// Publish stamps PublishedAt on the first publish only, same as blogs.
func (dc *DiaryController) Publish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input publishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var diary models.Diary
	if err := dc.db.First(&diary, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Diary not found"})
		return
	}

	diary.SetPublished(*input.IsPublished, time.Now())

	err := dc.db.Model(&diary).Select("is_published", "published_at").
		Updates(map[string]interface{}{
			"is_published": diary.IsPublished,
			"published_at": diary.PublishedAt,
		}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update diary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"diary": diary})
}
