package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
)

// PackageController serves tour packages: public read-only listing of
// active packages and the full admin CRUD.
type PackageController struct {
	db *gorm.DB
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{db: db}
}

// ListPublic returns active packages, optionally narrowed by category or
// featured flag.
func (pc *PackageController) ListPublic(c *gin.Context) {
	q := pc.db.Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		q = q.Where("is_featured = ?", true)
	}

	var packages []models.Package
	if err := q.Order("created_at DESC").Find(&packages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing packages: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": packages})
}

// GetBySlug serves the public package detail page. Inactive packages are
// indistinguishable from missing ones.
func (pc *PackageController) GetBySlug(c *gin.Context) {
	var pkg models.Package
	err := pc.db.Where("slug = ? AND is_active = ?", c.Param("slug"), true).First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

// List returns every package, drafts included, for the admin table.
func (pc *PackageController) List(c *gin.Context) {
	var packages []models.Package
	if err := pc.db.Order("created_at DESC").Find(&packages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing packages: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": packages})
}

func (pc *PackageController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var pkg models.Package
	if err := pc.db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

func (pc *PackageController) Create(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package input: " + err.Error()})
		return
	}
	pkg.ID = 0

	if err := pc.db.Create(&pkg).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"package": pkg})
}

func (pc *PackageController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var pkg models.Package
	if err := pc.db.First(&pkg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}
	// Payload may carry an ID field; the path parameter decides the row.
	pkg.ID = id

	if err := pc.db.Save(&pkg).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

func (pc *PackageController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var pkg models.Package
	if err := pc.db.First(&pkg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	if err := pc.db.Unscoped().Delete(&pkg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}

type flagInput struct {
	Value *bool `json:"value" binding:"required"`
}

// ToggleActive flips public visibility without touching any other field.
func (pc *PackageController) ToggleActive(c *gin.Context) {
	pc.setFlag(c, "is_active")
}

// ToggleFeatured flips the home-page pin without touching any other field.
func (pc *PackageController) ToggleFeatured(c *gin.Context) {
	pc.setFlag(c, "is_featured")
}

func (pc *PackageController) setFlag(c *gin.Context, column string) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input flagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var pkg models.Package
	if err := pc.db.First(&pkg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	if err := pc.db.Model(&pkg).Update(column, *input.Value).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"package": pkg})
}
