package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// ImportHandler handles bulk spreadsheet uploads
type ImportHandler struct {
	usecase *usecases.ImportUsecase
}

// NewImportHandler creates a new import handler
func NewImportHandler(usecase *usecases.ImportUsecase) *ImportHandler {
	return &ImportHandler{usecase: usecase}
}

// Upload loads a spreadsheet file into an entity table
// POST /api/v1/imports/:entity
func (h *ImportHandler) Upload(c *gin.Context) {
	entity := c.Param("entity")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("a spreadsheet file is required under the \"file\" field"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("uploaded file could not be opened"))
		return
	}
	defer f.Close()

	result, err := h.usecase.ImportCSV(c.Request.Context(), entity, f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
