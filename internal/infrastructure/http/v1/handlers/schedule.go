package handlers

import (
	"github.com/gin-gonic/gin"

	"motordesk/internal/domain/schedule"
	"motordesk/internal/infrastructure/http/v1/dto"
)

// ScheduleHandler generates installment schedules.
type ScheduleHandler struct {
	*BaseHandler
}

// NewScheduleHandler creates a schedule handler.
func NewScheduleHandler(base *BaseHandler) *ScheduleHandler {
	return &ScheduleHandler{BaseHandler: base}
}

// Generate returns the payment schedule for the requested parameters.
// POST /api/v1/schedules
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.ScheduleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	params, err := req.Params()
	if err != nil {
		h.Error(c, err)
		return
	}

	lines := schedule.Generate(params)
	h.OK(c, gin.H{"items": lines, "total": len(lines)})
}
