package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"unistay/api/internal/middleware"
	"unistay/api/internal/service"
)

const maxAvatarBytes = 5 << 20

func (h HandlerSet) UploadAvatar(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file required"})
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer file.Close()

	url, err := h.accounts.UpdateAvatar(c.Request.Context(), session.UserID, file, fileHeader.Size)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
			return
		}
		h.log.Error().Err(err).Str("user_id", session.UserID).Msg("avatar upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
