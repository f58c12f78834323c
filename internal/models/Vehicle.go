// internal/models/vehicle.go
package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Vehicle is a taxi fleet car shown on the taxi page when IsAvailable.
type Vehicle struct {
	gorm.Model
	Name            string         `json:"name" binding:"required"`
	Type            string         `json:"type" binding:"required"` // "sedan", "suv", "tempo traveller"
	Capacity        int            `json:"capacity"`
	LuggageCapacity int            `json:"luggage_capacity"`
	Features        pq.StringArray `json:"features" gorm:"type:text[]"`
	BaseFare        float64        `json:"base_fare"`
	PerKmRate       float64        `json:"per_km_rate"`
	ImageURL        string         `json:"image_url"`
	IsAvailable     bool           `json:"is_available" gorm:"default:true"`
}
