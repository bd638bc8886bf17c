package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// DashboardHandler serves the landing-screen summary
type DashboardHandler struct {
	usecase *usecases.DashboardUsecase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(usecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{usecase: usecase}
}

// Stats returns headline counts and totals
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
