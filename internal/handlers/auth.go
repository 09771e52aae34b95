package handlers

import (
	"errors"
	"net/http"

	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoginFailed = "Incorrect username or password"
	meMessage      = "Only authenticated users can access this endpoint"
)

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"demo"`
	Password string `json:"password" binding:"required" example:"demo123"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	Username string `json:"username" example:"demo"`
	Email    string `json:"email,omitempty" example:"demo@example.com"`
	Message  string `json:"message"`
}

// @Summary      Log in
// @Description  Exchanges username and password for a bearer token. Demo account: demo / demo123.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  service.TokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	resp, err := h.services.Authorization.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_login_failed", "username", input.Username)
			}
			h.unauthorized(c, errLoginFailed)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "auth_login_error", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		h.unauthorized(c, errMissingAuth)
		return
	}
	c.JSON(http.StatusOK, MeResponse{
		Username: claims.Subject,
		Email:    claims.Email,
		Message:  meMessage,
	})
}
