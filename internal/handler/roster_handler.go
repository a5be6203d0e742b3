package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tridenda/talentlytica/internal/response"
	"github.com/tridenda/talentlytica/internal/roster"
)

// RosterHandler serves the fixed students, aspects and score choices the
// form grid is drawn from.
type RosterHandler struct {
	roster *roster.Roster
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(ro *roster.Roster) *RosterHandler {
	return &RosterHandler{roster: ro}
}

// GetRoster godoc
// GET /api/v1/roster
func (h *RosterHandler) GetRoster(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"students": h.roster.Students(),
		"aspects":  h.roster.Aspects(),
		"choices":  roster.Choices(),
	})
}
