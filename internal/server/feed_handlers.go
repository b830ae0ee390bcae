package server

import (
	"simplesocial/internal/middleware"
	"simplesocial/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FeedResponse is the API response for GET /feed.
type FeedResponse struct {
	Posts []models.FeedItem `json:"posts"`
}

// GetFeed handles GET /feed. Posts come back newest-first; an empty store
// yields an empty posts array with 200, never an error.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	items, err := s.feedService.AssembleFeed(c.UserContext(), userID)
	if err != nil {
		middleware.FeedRequests.WithLabelValues("error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	middleware.FeedRequests.WithLabelValues("ok").Inc()

	return c.JSON(FeedResponse{Posts: items})
}
