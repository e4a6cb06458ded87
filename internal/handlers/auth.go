package handlers

import (
	"errors"
	"net/http"

	"golftracker/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginRequest is form-encoded, OAuth2 password-flow style.
type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// bindOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindOrBadRequest(c *gin.Context, dst any, bind func(any) error) bool {
	if err := bind(dst); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Credentials"
// @Success      201   {object}  models.User
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindOrBadRequest(c, &input, c.ShouldBindJSON); !ok {
		return
	}

	user, err := h.services.SignUp(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to register user", "auth_sign_up_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Login and get access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  map[string]string  "access_token, token_type"
// @Failure      401  {object}  map[string]string
// @Router       /api/token [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		if h.log != nil && !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Errorw("auth_sign_in_failed", "err", err, "username", input.Username)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// @Summary      Current user info
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}
