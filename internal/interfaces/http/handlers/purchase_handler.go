package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// PurchaseHandler handles purchase screens
type PurchaseHandler struct {
	usecase *usecases.PurchaseUsecase
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(usecase *usecases.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{usecase: usecase}
}

// Create records one purchase
// POST /api/v1/purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	var input entities.CreatePurchaseInput
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

// List returns the filtered purchase list
// GET /api/v1/purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	var filter usecases.PurchaseFilter
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

// Export downloads the filtered purchase list as a spreadsheet
// GET /api/v1/purchases/export
func (h *PurchaseHandler) Export(c *gin.Context) {
	var filter usecases.PurchaseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	data, err := h.usecase.ExportCSV(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="purchases.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
