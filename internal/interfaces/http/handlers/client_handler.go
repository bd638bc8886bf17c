package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// ClientHandler handles client screens
type ClientHandler struct {
	usecase *usecases.ClientUsecase
}

// NewClientHandler creates a new client handler
func NewClientHandler(usecase *usecases.ClientUsecase) *ClientHandler {
	return &ClientHandler{usecase: usecase}
}

// Create registers one client
// POST /api/v1/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var input entities.CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, client)
}

// List returns the filtered client list
// GET /api/v1/clients
func (h *ClientHandler) List(c *gin.Context) {
	var filter usecases.ClientFilter
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

// Export downloads the filtered client list as a spreadsheet
// GET /api/v1/clients/export
func (h *ClientHandler) Export(c *gin.Context) {
	var filter usecases.ClientFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	data, err := h.usecase.ExportCSV(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="clients.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
