package handlers

import (
	"github.com/gin-gonic/gin"

	"motordesk/internal/domain/reports"
	"motordesk/internal/infrastructure/http/v1/dto"
)

// ExpensesHandler records new expenses.
type ExpensesHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewExpensesHandler creates an expenses handler.
func NewExpensesHandler(base *BaseHandler, service *reports.Service) *ExpensesHandler {
	return &ExpensesHandler{BaseHandler: base, service: service}
}

// Create records a new expense.
// POST /api/v1/expenses
func (h *ExpensesHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	e, err := req.Record()
	if err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.CreateExpense(c.Request.Context(), e)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created.ID)
}
