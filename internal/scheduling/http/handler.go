package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetsync/scheduler-backend/internal/scheduling/domain"
	"github.com/meetsync/scheduler-backend/internal/scheduling/service"
)

// Handler serves the scheduling conversion endpoint.
type Handler struct {
	scheduler      *service.SchedulerService
	callbackSecret string
}

// NewHandler creates a new Handler. An empty callbackSecret disables the
// shared-secret check (local development).
func NewHandler(scheduler *service.SchedulerService, callbackSecret string) *Handler {
	return &Handler{
		scheduler:      scheduler,
		callbackSecret: callbackSecret,
	}
}

// Convert handles the scheduling call from the workflow trigger.
// Authn: shared secret in header X-Scheduler-Secret, required only when
// configured. Pipeline failures return 200 with an error envelope, matching
// the contract the workflow expects; only schema violations get a 4xx.
func (h *Handler) Convert(c *gin.Context) {
	if h.callbackSecret != "" {
		secret := c.GetHeader("X-Scheduler-Secret")
		if subtle.ConstantTimeCompare([]byte(secret), []byte(h.callbackSecret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized: invalid scheduler secret"})
			return
		}
	}

	var body ConvertRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := &domain.SchedulingRequest{
		MeetingTime:     body.MeetingTime,
		UserTimezone:    body.UserTimezone,
		FromTimezone:    body.FromTimezone,
		TargetTimezone:  body.TargetTimezone,
		DurationMinutes: body.DurationMinutes,
	}

	result, err := h.scheduler.Schedule(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusOK, ConvertResponse{
			Error: fmt.Sprintf("Error converting time: %s", err),
		})
		return
	}

	c.JSON(http.StatusOK, ConvertResponse{
		Outputs: &ConvertOutputs{
			ReadableTimeOrigin:      result.ReadableTimeOrigin,
			ReadableTimeParticipant: result.ReadableTimeParticipant,
			CalendarMeetingTime:     result.CalendarMeetingTime,
			CalendarEndTime:         result.CalendarEndTime,
		},
	})
}
