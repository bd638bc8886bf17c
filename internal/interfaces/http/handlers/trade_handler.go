package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// TradeHandler handles trade transaction screens
type TradeHandler struct {
	usecase *usecases.TradeUsecase
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(usecase *usecases.TradeUsecase) *TradeHandler {
	return &TradeHandler{usecase: usecase}
}

// Create records one export or import deal
// POST /api/v1/trades
func (h *TradeHandler) Create(c *gin.Context) {
	var input entities.CreateTradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tx, err := h.usecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, tx)
}

// List returns the filtered trade list
// GET /api/v1/trades
func (h *TradeHandler) List(c *gin.Context) {
	var filter usecases.TradeFilter
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

// Export downloads the filtered trade list as a spreadsheet
// GET /api/v1/trades/export
func (h *TradeHandler) Export(c *gin.Context) {
	var filter usecases.TradeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	data, err := h.usecase.ExportCSV(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="trade_transactions.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
