package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// SalesHandler handles sales screens
type SalesHandler struct {
	usecase *usecases.SalesUsecase
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(usecase *usecases.SalesUsecase) *SalesHandler {
	return &SalesHandler{usecase: usecase}
}

// Create records one sale
// POST /api/v1/sales
func (h *SalesHandler) Create(c *gin.Context) {
	var input entities.CreateSalesInput
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

// List returns the filtered sales list
// GET /api/v1/sales
func (h *SalesHandler) List(c *gin.Context) {
	var filter usecases.SalesFilter
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

// Export downloads the filtered sales list as a spreadsheet
// GET /api/v1/sales/export
func (h *SalesHandler) Export(c *gin.Context) {
	var filter usecases.SalesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	data, err := h.usecase.ExportCSV(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="sales.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
