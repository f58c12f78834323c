package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
)

// BlogController serves blog articles: public read of published posts and
// the admin CRUD with the publish toggle.
type BlogController struct {
	db *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{db: db}
}

// ListPublic returns published posts, newest publish date first.
func (bc *BlogController) ListPublic(c *gin.Context) {
	var blogs []models.Blog
	err := bc.db.Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&blogs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing blogs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": blogs})
}

func (bc *BlogController) GetBySlug(c *gin.Context) {
	var blog models.Blog
	err := bc.db.Where("slug = ? AND is_published = ?", c.Param("slug"), true).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

func (bc *BlogController) List(c *gin.Context) {
	var blogs []models.Blog
	if err := bc.db.Order("created_at DESC").Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing blogs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": blogs})
}

func (bc *BlogController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var blog models.Blog
	if err := bc.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

func (bc *BlogController) Create(c *gin.Context) {
	var blog models.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog input: " + err.Error()})
		return
	}
	blog.ID = 0

	if err := bc.db.Create(&blog).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"blog": blog})
}

func (bc *BlogController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var blog models.Blog
	if err := bc.db.First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}
	// Payload may carry an ID field; the path parameter decides the row.
	blog.ID = id

	if err := bc.db.Save(&blog).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

func (bc *BlogController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var blog models.Blog
	if err := bc.db.First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	if err := bc.db.Unscoped().Delete(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}

type publishInput struct {
	IsPublished *bool `json:"isPublished" binding:"required"`
}

// Publish toggles visibility. PublishedAt is stamped on the first publish
// and kept through later unpublish/republish cycles.
func (bc *BlogController) Publish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input publishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var blog models.Blog
	if err := bc.db.First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	blog.SetPublished(*input.IsPublished, time.Now())

	err := bc.db.Model(&blog).Select("is_published", "published_at").
		Updates(map[string]interface{}{
			"is_published": blog.IsPublished,
			"published_at": blog.PublishedAt,
		}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}
