package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
)

// TaxiController manages the taxi page inventory: vehicles and fixed
// routes, both edited from the same admin section.
type TaxiController struct {
	db *gorm.DB
}

func NewTaxiController(db *gorm.DB) *TaxiController {
	return &TaxiController{db: db}
}

// ListVehiclesPublic returns available vehicles for the taxi page.
func (tc *TaxiController) ListVehiclesPublic(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := tc.db.Where("is_available = ?", true).Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func (tc *TaxiController) ListVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := tc.db.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func (tc *TaxiController) CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}
	vehicle.ID = 0
	vehicle.IsAvailable = true

	if err := tc.db.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

func (tc *TaxiController) UpdateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := tc.db.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}
	// Payload may carry an ID field; the path parameter decides the row.
	vehicle.ID = id

	if err := tc.db.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func (tc *TaxiController) DeleteVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := tc.db.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if err := tc.db.Unscoped().Delete(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}

func (tc *TaxiController) ToggleVehicleAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input flagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var vehicle models.Vehicle
	if err := tc.db.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if err := tc.db.Model(&vehicle).Update("is_available", *input.Value).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// ListRoutesPublic returns active fixed-fare routes for the taxi page.
func (tc *TaxiController) ListRoutesPublic(c *gin.Context) {
	var routes []models.TaxiRoute
	if err := tc.db.Where("is_active = ?", true).Find(&routes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing routes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": routes})
}

func (tc *TaxiController) ListRoutes(c *gin.Context) {
	var routes []models.TaxiRoute
	if err := tc.db.Find(&routes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing routes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": routes})
}

func (tc *TaxiController) CreateRoute(c *gin.Context) {
	var route models.TaxiRoute
	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route input: " + err.Error()})
		return
	}
	route.ID = 0
	route.IsActive = true

	if err := tc.db.Create(&route).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create route: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"route": route})
}

func (tc *TaxiController) UpdateRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var route models.TaxiRoute
	if err := tc.db.First(&route, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}
	// Payload may carry an ID field; the path parameter decides the row.
	route.ID = id

	if err := tc.db.Save(&route).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update route: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": route})
}

func (tc *TaxiController) DeleteRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var route models.TaxiRoute
	if err := tc.db.First(&route, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	if err := tc.db.Unscoped().Delete(&route).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete route: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route deleted"})
}

func (tc *TaxiController) ToggleRouteActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input flagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var route models.TaxiRoute
	if err := tc.db.First(&route, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	if err := tc.db.Model(&route).Update("is_active", *input.Value).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update route: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": route})
}
