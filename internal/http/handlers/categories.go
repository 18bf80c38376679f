package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCategories returns the built-in catalog as [{id, name}, ...]. Custom
// categories never appear here; they exist only on the device.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Categories.List())
}
