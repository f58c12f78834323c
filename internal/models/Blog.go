// internal/models/blog.go
package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Blog is a marketing article shown on the public blog pages when
// IsPublished is set.
type Blog struct {
	gorm.Model
	Title       string         `json:"title" binding:"required"`
	Slug        string         `json:"slug" gorm:"uniqueIndex" binding:"required"`
	Excerpt     string         `json:"excerpt"`
	Content     string         `json:"content" binding:"required"`
	CoverImage  string         `json:"cover_image"`
	Category    string         `json:"category"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	AuthorName  string         `json:"author_name"`
	IsPublished bool           `json:"is_published"`
	PublishedAt *time.Time     `json:"published_at"`
}

// SetPublished flips the publish flag. The first publish stamps
// PublishedAt; republishing after an unpublish keeps the original stamp,
// so public pages keep sorting on the original publish date.
func (b *Blog) SetPublished(published bool, now time.Time) {
	b.IsPublished = published
	if published && b.PublishedAt == nil {
		t := now
		b.PublishedAt = &t
	}
}
