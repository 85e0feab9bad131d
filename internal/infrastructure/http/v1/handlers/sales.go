package handlers

import (
	"github.com/gin-gonic/gin"

	"motordesk/internal/domain/reports"
)

// SalesHandler serves the reconciled sale views.
type SalesHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewSalesHandler creates a sales handler.
func NewSalesHandler(base *BaseHandler, service *reports.Service) *SalesHandler {
	return &SalesHandler{BaseHandler: base, service: service}
}

// List returns every sale enriched with customer and vehicle profiles.
// GET /api/v1/sales
func (h *SalesHandler) List(c *gin.Context) {
	views, err := h.service.EnrichedSales(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": views, "total": len(views)})
}
