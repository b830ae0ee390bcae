// Package service implements the application's use cases on top of the
// repository, staging, and media host layers.
package service

import (
	"context"
	"io"
	"log/slog"

	"simplesocial/internal/mediahost"
	"simplesocial/internal/middleware"
	"simplesocial/internal/models"
	"simplesocial/internal/repository"
	"simplesocial/internal/staging"
)

// UploadInput carries one inbound media upload.
type UploadInput struct {
	UserID      uint
	File        io.Reader
	Filename    string
	ContentType string
	Caption     string
}

// UploadService runs the upload pipeline: stage the stream, forward it to
// the media host, then persist the Post. A Post is created only after the
// provider confirms storage, so a failed upload never reaches the feed.
type UploadService struct {
	stager   *staging.Stager
	uploader mediahost.Uploader
	postRepo repository.PostRepository
}

// NewUploadService wires the upload pipeline.
func NewUploadService(stager *staging.Stager, uploader mediahost.Uploader, postRepo repository.PostRepository) *UploadService {
	return &UploadService{
		stager:   stager,
		uploader: uploader,
		postRepo: postRepo,
	}
}

// Upload executes the pipeline for one request and returns the durable Post.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (*models.Post, error) {
	if in.UserID == 0 {
		return nil, models.NewValidationError("Invalid user")
	}
	if in.File == nil || in.Filename == "" {
		return nil, models.NewValidationError("No file uploaded")
	}

	staged, err := s.stager.Stage(in.File, in.Filename)
	if err != nil {
		return nil, models.NewStagingError(err)
	}
	// The staged file is removed on every exit path from here on, including
	// provider and store failures.
	defer staged.Cleanup()

	src, err := staged.Open()
	if err != nil {
		return nil, models.NewStagingError(err)
	}
	defer func() { _ = src.Close() }()

	result, err := s.uploader.Upload(ctx, src, in.Filename)
	if err != nil {
		return nil, models.NewUploadError(err)
	}

	post := &models.Post{
		Caption:  in.Caption,
		URL:      result.URL,
		FileType: models.FileTypeFor(in.ContentType),
		FileName: result.Name,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewStoreError(err)
	}

	middleware.Logger.InfoContext(ctx, "media uploaded",
		slog.String("post_id", post.ID),
		slog.String("file_type", post.FileType),
		slog.String("file_name", post.FileName),
	)

	return post, nil
}
