package handlers

import (
	"github.com/gin-gonic/gin"

	"motordesk/internal/core/apperror"
	"motordesk/internal/core/id"
	"motordesk/internal/domain/reports"
	"motordesk/internal/infrastructure/http/v1/dto"
	"motordesk/internal/infrastructure/storage/postgres"
)

// ReportsHandler serves the financial reports and the snapshot archive.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
	archive *postgres.ReportArchive
}

// NewReportsHandler creates a reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service, archive *postgres.ReportArchive) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service, archive: archive}
}

// Dashboard returns the aggregated report for the requested period.
// GET /api/v1/reports/dashboard?from=2024-01-01&to=2024-01-31&seller=all
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	var q dto.DashboardQuery
	if !h.BindQuery(c, &q) {
		return
	}
	f, err := q.Filter()
	if err != nil {
		h.Error(c, err)
		return
	}

	d, err := h.service.Dashboard(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, d)
}

// VehicleProfit returns the per-vehicle profit report.
// GET /api/v1/reports/vehicle-profit
func (h *ReportsHandler) VehicleProfit(c *gin.Context) {
	var q dto.DashboardQuery
	if !h.BindQuery(c, &q) {
		return
	}
	f, err := q.Filter()
	if err != nil {
		h.Error(c, err)
		return
	}

	r, err := h.service.VehicleProfit(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, r)
}

// ArchiveDashboard generates a dashboard and stores it as a snapshot.
// POST /api/v1/reports/dashboard/archive
func (h *ReportsHandler) ArchiveDashboard(c *gin.Context) {
	var q dto.DashboardQuery
	if !h.BindQuery(c, &q) {
		return
	}
	f, err := q.Filter()
	if err != nil {
		h.Error(c, err)
		return
	}

	d, err := h.service.Dashboard(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}

	entryID, err := h.archive.Save(c.Request.Context(), d)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, entryID.String())
}

// GetArchivedDashboard retrieves a stored snapshot.
// GET /api/v1/reports/dashboard/archive/:id
func (h *ReportsHandler) GetArchivedDashboard(c *gin.Context) {
	entryID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid snapshot id").WithDetail("id", c.Param("id")))
		return
	}

	entry, err := h.archive.Get(c.Request.Context(), entryID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entry)
}
