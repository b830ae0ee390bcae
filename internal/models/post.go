// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media file types stored on a Post. The enumeration is fixed; classification
// happens once at upload time from the declared content type.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// Post represents one shared media item in the Simple Social application.
// A Post is created exactly once after a successful provider upload and is
// never updated in place.
type Post struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Caption   string    `gorm:"type:text" json:"caption"`
	URL       string    `gorm:"not null" json:"url"`
	FileType  string    `gorm:"not null" json:"file_type"`
	FileName  string    `gorm:"not null" json:"file_name"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	// User survives JSON round-trips so a cached post list keeps the
	// author's email. The password field never serializes.
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// FileTypeFor classifies a declared MIME type into the Post file type
// enumeration: a video/ prefix means video, everything else is an image.
func FileTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return FileTypeVideo
	}
	return FileTypeImage
}

// FeedItem is a Post shaped for feed presentation. Email and IsOwner are
// sourced from the requesting identity; DisplayURL carries the provider
// transformation used for uniform rendering.
type FeedItem struct {
	ID         string    `json:"id"`
	Caption    string    `json:"caption"`
	URL        string    `json:"url"`
	FileType   string    `json:"file_type"`
	FileName   string    `json:"file_name"`
	CreatedAt  time.Time `json:"created_at"`
	Email      string    `json:"email"`
	IsOwner    bool      `json:"is_owner"`
	DisplayURL string    `json:"display_url"`
}
