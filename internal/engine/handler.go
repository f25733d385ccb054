package engine

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fitclub/internal/api"
	"fitclub/internal/auth"
	"fitclub/internal/conflict"
	"fitclub/internal/db"
	"fitclub/internal/groupclass"
	"fitclub/internal/schedule"

	"github.com/gin-gonic/gin"
)

// Admitter is the part of Engine the HTTP layer depends on.
type Admitter interface {
	Admit(ctx context.Context, c Candidate) (Outcome, error)
}

type Handler struct {
	engine Admitter
}

func NewHandler(engine Admitter) *Handler {
	return &Handler{engine: engine}
}

type ProposeWindowRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required" example:"Monday"`
	StartTime string `json:"start_time" validate:"required" example:"08:00"`
	EndTime   string `json:"end_time" validate:"required" example:"12:00"`
}

type ProposeBookingRequest struct {
	Name      string `json:"name" validate:"max=100" example:"Morning Yoga"`
	RoomID    int    `json:"room_id" validate:"required,gt=0" example:"1"`
	TrainerID int    `json:"trainer_id" validate:"required,gt=0" example:"2"`
	Date      string `json:"date" validate:"required" example:"2026-10-19"`
	StartTime string `json:"start_time" validate:"required" example:"09:00"`
	EndTime   string `json:"end_time" validate:"required" example:"10:00"`
	Capacity  int    `json:"capacity" example:"15"`
}

// @Summary      Declare availability
// @Description  Propose a weekly availability window for the authenticated trainer
// @Tags         trainer,availability
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body engine.ProposeWindowRequest true "Window"
// @Success      201 {object} availability.Window
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.RejectionResponse
// @Failure      422 {object} api.RejectionResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /trainer/availability [post]
func (h *Handler) ProposeWindow(c *gin.Context) {
	session, ok := auth.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req ProposeWindowRequest
	if !bindAndValidate(c, &req) {
		return
	}

	day, err := schedule.ParseWeekday(req.DayOfWeek)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	interval, ok := parseInterval(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	h.admit(c, WindowCandidate{TrainerID: session.UserID, Day: day, Interval: interval})
}

// @Summary      Book a class
// @Description  Admin-only: propose a class for a room, trainer, date and time range
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body engine.ProposeBookingRequest true "Class"
// @Success      201 {object} groupclass.Class
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.RejectionResponse
// @Failure      409 {object} api.RejectionResponse
// @Failure      422 {object} api.RejectionResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) ProposeBooking(c *gin.Context) {
	var req ProposeBookingRequest
	if !bindAndValidate(c, &req) {
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	interval, ok := parseInterval(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	h.admit(c, BookingCandidate{groupclass.BookingRequest{
		Name:      strings.TrimSpace(req.Name),
		RoomID:    req.RoomID,
		TrainerID: req.TrainerID,
		Date:      date,
		Interval:  interval,
		Capacity:  req.Capacity,
	}})
}

// @Summary      Register for a class
// @Description  Propose a registration of the authenticated member
// @Tags         classes,registrations
// @Produce      json
// @Security     BearerAuth
// @Param        classID path int true "Class ID"
// @Success      201 {object} registration.Registration
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.RejectionResponse
// @Failure      409 {object} api.RejectionResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /classes/{classID}/register [post]
func (h *Handler) ProposeRegistration(c *gin.Context) {
	session, ok := auth.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	h.admit(c, RegistrationCandidate{ClassID: classID, MemberID: session.UserID})
}

func (h *Handler) admit(c *gin.Context, candidate Candidate) {
	outcome, err := h.engine.Admit(c.Request.Context(), candidate)
	if err != nil {
		if errors.Is(err, db.ErrTransient) {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Temporarily unable to decide, please retry"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to process request"})
		return
	}

	if outcome.Accepted {
		c.JSON(http.StatusCreated, outcome.Record)
		return
	}

	c.JSON(StatusFor(outcome.Reason), api.RejectionResponse{
		Error:      outcome.Message,
		Reason:     string(outcome.Reason),
		ConflictID: outcome.ConflictID,
	})
}

// StatusFor maps a rejection reason to its HTTP status.
func StatusFor(reason conflict.Reason) int {
	switch reason {
	case conflict.ClassNotFound, conflict.RoomNotFound:
		return http.StatusNotFound
	case conflict.InvalidInterval, conflict.InvalidCapacity:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusConflict
	}
}

func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return false
	}
	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return false
	}
	return true
}

// parseInterval only checks the HH:MM format. Ordering of start and end is
// left to the ledgers, which reject it as invalid_interval.
func parseInterval(c *gin.Context, start, end string) (schedule.Interval, bool) {
	s, err := schedule.ParseClock(start)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return schedule.Interval{}, false
	}
	e, err := schedule.ParseClock(end)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return schedule.Interval{}, false
	}
	return schedule.Interval{Start: s, End: e}, true
}
