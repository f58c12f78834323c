// internal/models/media.go
package models

import (
	"gorm.io/gorm"
)

// Media is a registered asset in the media library. The file itself lives
// on the CDN; this row only records the URL and where it belongs.
type Media struct {
	gorm.Model
	Name    string `json:"name" binding:"required"`
	URL     string `json:"url" binding:"required"`
	Type    string `json:"type" gorm:"default:'image'"`
	Size    int64  `json:"size"`
	Folder  string `json:"folder" gorm:"default:'general';index"` // "general", "packages", "blogs", "diaries", "vehicles"
	AltText string `json:"alt_text"`
}
