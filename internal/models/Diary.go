// internal/models/diary.go
package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Diary is a travel diary entry written by a traveller or staff member.
// Publishing behaves exactly like Blog.
type Diary struct {
	gorm.Model
	Title        string         `json:"title" binding:"required"`
	Slug         string         `json:"slug" gorm:"uniqueIndex" binding:"required"`
	Excerpt      string         `json:"excerpt"`
	Content      string         `json:"content" binding:"required"`
	CoverImage   string         `json:"cover_image"`
	Gallery      pq.StringArray `json:"gallery" gorm:"type:text[]"`
	AuthorName   string         `json:"author_name" binding:"required"`
	AuthorAvatar string         `json:"author_avatar"`
	Destination  string         `json:"destination"`
	TravelDate   *time.Time     `json:"travel_date"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`
	IsPublished  bool           `json:"is_published"`
	PublishedAt  *time.Time     `json:"published_at"`
}

// SetPublished stamps PublishedAt on the first publish only; see
// Blog.SetPublished.
func (d *Diary) SetPublished(published bool, now time.Time) {
	d.IsPublished = published
	if published && d.PublishedAt == nil {
		t := now
		d.PublishedAt = &t
	}
}
