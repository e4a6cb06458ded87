package handlers

import (
	"errors"
	"net/http"
	"strings"

	"golftracker/internal/models"
	"golftracker/internal/service"

	"github.com/gin-gonic/gin"
)

const userCtxKey = "currentUser"

// currentUserMiddleware verifies the bearer token and resolves its subject
// to a stored user. Expired and malformed tokens get the same 401; a valid
// token for a user that no longer exists is a 404, matching the lookup.
func (h *Handler) currentUserMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	username, err := h.services.ParseToken(parts[1])
	if err != nil {
		// Expired vs malformed matters for the logs, not for the client.
		if h.log != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				h.log.Infow("auth_token_expired")
			} else {
				h.log.Infow("auth_token_invalid")
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	user, err := h.services.UserByUsername(username)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to resolve user", "auth_user_lookup_failed", err, "username", username)
		c.Abort()
		return
	}
	if user == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": "user not found",
		})
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

// currentUser extracts the authenticated user stored by the middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
