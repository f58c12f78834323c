// internal/models/package.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// JSONB stores loosely structured document data (the day-by-day itinerary)
// in a Postgres jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}

// Package is a tour package sold on the public site. IsActive gates public
// visibility; IsFeatured pins it to the home page hero slider.
type Package struct {
	gorm.Model
	Title            string         `json:"title" binding:"required"`
	Slug             string         `json:"slug" gorm:"uniqueIndex" binding:"required"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Price            float64        `json:"price"`
	OriginalPrice    float64        `json:"original_price"`
	Duration         string         `json:"duration"`
	Region           string         `json:"region"`
	MinPersons       int            `json:"min_persons"`
	Category         string         `json:"category"`
	Highlights       pq.StringArray `json:"highlights" gorm:"type:text[]"`
	Inclusions       pq.StringArray `json:"inclusions" gorm:"type:text[]"`
	Exclusions       pq.StringArray `json:"exclusions" gorm:"type:text[]"`
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	Itinerary        JSONB          `json:"itinerary" gorm:"type:jsonb"`
	ItineraryPDFURL  string         `json:"itinerary_pdf_url"`
	SEOTitle         string         `json:"seo_title"`
	SEODescription   string         `json:"seo_description"`
	IsActive         bool           `json:"is_active" gorm:"default:true"`
	IsFeatured       bool           `json:"is_featured"`
}
