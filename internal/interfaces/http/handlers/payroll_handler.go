package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// PayrollHandler handles payroll screens
type PayrollHandler struct {
	usecase *usecases.PayrollUsecase
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(usecase *usecases.PayrollUsecase) *PayrollHandler {
	return &PayrollHandler{usecase: usecase}
}

// Create records one salary payment
// POST /api/v1/payroll
func (h *PayrollHandler) Create(c *gin.Context) {
	var input entities.CreatePayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.usecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, record)
}

// List returns the filtered payroll list
// GET /api/v1/payroll
func (h *PayrollHandler) List(c *gin.Context) {
	var filter usecases.PayrollFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	items, err := h.usecase.List(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// Export downloads the filtered payroll list as a spreadsheet
// GET /api/v1/payroll/export
func (h *PayrollHandler) Export(c *gin.Context) {
	var filter usecases.PayrollFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	data, err := h.usecase.ExportCSV(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="payroll.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
