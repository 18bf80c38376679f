package handlers

import (
	"net/http"

	"imposter_server/internal/domain"

	"github.com/gin-gonic/gin"
)

// CreateGameRequest mirrors the create-game payload from the mobile client.
// CustomCategories carries the full word lists for any selected custom
// category, since the server has no knowledge of per-device lists.
type CreateGameRequest struct {
	CategoryIDs      []string          `json:"categoryIds" binding:"required,min=1"`
	NumPlayers       int               `json:"numPlayers" binding:"required"`
	NumImposters     int               `json:"numImposters" binding:"required"`
	HintsEnabled     bool              `json:"hintsEnabled"`
	CustomCategories []domain.Category `json:"customCategories"`
}

// CreateGameResponse is all the client needs to drive the reveal flow.
type CreateGameResponse struct {
	GameID     string `json:"gameId"`
	NumPlayers int    `json:"numPlayers"`
}

// CreateGame handles POST /games.
func (h *Handler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	g, err := h.Games.Create(c.Request.Context(), req.CategoryIDs, req.NumPlayers, req.NumImposters, req.HintsEnabled, req.CustomCategories)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateGameResponse{
		GameID:     g.ID,
		NumPlayers: g.NumPlayers,
	})
}

// RevealRequest identifies the player picking up the device. Pointer so a
// missing field is distinguishable from player 0.
type RevealRequest struct {
	PlayerNumber *int `json:"playerNumber" binding:"required"`
}

// Reveal handles POST /games/:gameId/reveal. Idempotent per player: the
// response is derived entirely from creation-time state.
func (h *Handler) Reveal(c *gin.Context) {
	var req RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Games.Reveal(c.Request.Context(), c.Param("gameId"), *req.PlayerNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// SolutionResponse discloses the word and the sorted imposter seats.
type SolutionResponse struct {
	Word      string `json:"word"`
	Imposters []int  `json:"imposters"`
}

// Solution handles GET /games/:gameId/solution.
func (h *Handler) Solution(c *gin.Context) {
	word, imposters, err := h.Games.Solution(c.Request.Context(), c.Param("gameId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SolutionResponse{
		Word:      word,
		Imposters: imposters,
	})
}
