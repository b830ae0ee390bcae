package service

import (
	"context"

	"simplesocial/internal/mediahost"
	"simplesocial/internal/models"
	"simplesocial/internal/repository"
)

// FeedService assembles the reverse-chronological feed. It preserves the
// store's ordering and decorates each post with viewer-relative fields; it
// never re-sorts or filters.
type FeedService struct {
	postRepo repository.PostRepository
}

// NewFeedService creates a feed service over the post store.
func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// AssembleFeed lists all posts newest-first and shapes them for display.
// viewerID is the requesting identity, passed per call; is_owner is computed
// against it. An empty feed is a valid result, not an error.
func (s *FeedService) AssembleFeed(ctx context.Context, viewerID uint) ([]models.FeedItem, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, models.NewStoreError(err)
	}

	items := make([]models.FeedItem, 0, len(posts))
	for _, post := range posts {
		displayURL, err := s.displayURL(post)
		if err != nil {
			return nil, err
		}
		items = append(items, models.FeedItem{
			ID:         post.ID,
			Caption:    post.Caption,
			URL:        post.URL,
			FileType:   post.FileType,
			FileName:   post.FileName,
			CreatedAt:  post.CreatedAt,
			Email:      post.User.Email,
			IsOwner:    post.UserID == viewerID,
			DisplayURL: displayURL,
		})
	}
	return items, nil
}

// displayURL picks the provider transformation per item: fixed-box padding
// for videos (caption shown as plain text beside the player), caption
// overlay for images.
func (s *FeedService) displayURL(post *models.Post) (string, error) {
	var (
		u   string
		err error
	)
	if post.FileType == models.FileTypeVideo {
		u, err = mediahost.Transform(post.URL, mediahost.VideoPadDirective, "")
	} else {
		u, err = mediahost.Transform(post.URL, "", post.Caption)
	}
	if err != nil {
		return "", models.NewMalformedURLError(post.URL)
	}
	return u, nil
}
