package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// EmployeeHandler handles employee screens
type EmployeeHandler struct {
	usecase *usecases.EmployeeUsecase
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(usecase *usecases.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{usecase: usecase}
}

// Create registers one employee
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var input entities.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	employee, err := h.usecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, employee)
}

// List returns the filtered employee list
// GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	var filter usecases.EmployeeFilter
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

// Export downloads the filtered employee list as a spreadsheet
// GET /api/v1/employees/export
func (h *EmployeeHandler) Export(c *gin.Context) {
	var filter usecases.EmployeeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	data, err := h.usecase.ExportCSV(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="employees.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
