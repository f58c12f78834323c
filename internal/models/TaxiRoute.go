// internal/models/taxi_route.go
package models

import (
	"gorm.io/gorm"
)

// TaxiRoute is a fixed point-to-point fare advertised on the taxi page.
type TaxiRoute struct {
	gorm.Model
	FromLocation  string  `json:"from_location" binding:"required"`
	ToLocation    string  `json:"to_location" binding:"required"`
	DistanceKm    float64 `json:"distance_km"`
	EstimatedTime string  `json:"estimated_time"`
	BaseFare      float64 `json:"base_fare"`
	IsActive      bool    `json:"is_active" gorm:"default:true"`
}
