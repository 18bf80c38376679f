package handlers

import (
	"errors"
	"net/http"

	"imposter_server/internal/category"
	"imposter_server/internal/domain"
	"imposter_server/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Categories *category.Store
	Games      *service.GameService
}

func NewHandler(categories *category.Store, games *service.GameService) *Handler {
	return &Handler{
		Categories: categories,
		Games:      games,
	}
}

// respondError maps domain errors to the HTTP contract. The missing-game
// body is exactly {"error": "Game not found"}: the mobile client matches
// that string to show its "game expired" restart flow.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	case errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidParameters),
		errors.Is(err, domain.ErrEmptyWordPool),
		errors.Is(err, domain.ErrInvalidPlayer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
