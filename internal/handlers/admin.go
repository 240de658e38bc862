package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unistay/api/internal/repository"
	"unistay/api/internal/service"
)

func (h HandlerSet) PlatformStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats.Snapshot(c.Request.Context()))
}

func (h HandlerSet) PendingAgents(c *gin.Context) {
	limit := 50
	if perPage := c.Query("perPage"); perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	agents, err := h.accounts.PendingAgents(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list pending agents failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	items := make([]userResponse, 0, len(agents))
	for _, agent := range agents {
		items = append(items, toUserResponse(agent))
	}

	c.JSON(http.StatusOK, gin.H{"agents": items})
}

func (h HandlerSet) VerifyAgent(c *gin.Context) {
	id := c.Param("id")

	user, err := h.accounts.VerifyAgent(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		case errors.Is(err, service.ErrNotAnAgent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "not_an_agent"})
		default:
			h.log.Error().Err(err).Str("user_id", id).Msg("verify agent failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
