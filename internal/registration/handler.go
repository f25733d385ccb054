package registration

import (
	"net/http"

	"fitclub/internal/api"
	"fitclub/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List own registrations
// @Description  Classes the authenticated member is registered for
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} registration.Enrollment
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /registrations [get]
func (h *Handler) ListMine(c *gin.Context) {
	session, ok := auth.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	enrollments, err := h.service.ListByMember(c.Request.Context(), session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch registrations"})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}
