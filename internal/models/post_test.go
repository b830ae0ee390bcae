package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileTypeFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", FileTypeImage},
		{"image/png", FileTypeImage},
		{"image/gif", FileTypeImage},
		{"video/mp4", FileTypeVideo},
		{"video/quicktime", FileTypeVideo},
		{"application/octet-stream", FileTypeImage},
		{"", FileTypeImage},
		// The prefix must be at the start of the declared type.
		{"application/video", FileTypeImage},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, FileTypeFor(tt.contentType))
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	p := &Post{}
	assert.NoError(t, p.BeforeCreate(nil))
	assert.NotEmpty(t, p.ID)

	// An explicit ID survives the hook.
	fixed := &Post{ID: "existing-id"}
	assert.NoError(t, fixed.BeforeCreate(nil))
	assert.Equal(t, "existing-id", fixed.ID)
}
