package auth

import (
	"net/http"

	"fitclub/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	accessSecret  string
	refreshSecret string
}

func NewHandler(accessSecret, refreshSecret string) *Handler {
	if refreshSecret == "" {
		refreshSecret = accessSecret
	}
	return &Handler{accessSecret: accessSecret, refreshSecret: refreshSecret}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	Session     Session `json:"session"`
}

// @Summary      Refresh access token
// @Description  Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body auth.RefreshRequest true "Refresh token"
// @Success      200 {object} auth.TokenResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "refresh_token is required"})
		return
	}

	accessToken, claims, err := RefreshAccessToken(req.RefreshToken, h.refreshSecret, h.accessSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		Session:     claims.Session(),
	})
}
