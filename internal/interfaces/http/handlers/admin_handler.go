package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/interfaces/http/response"
	"hr-ledger.backend/internal/usecases"
)

// AdminHandler handles account administration endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// ListUsers lists accounts matching the status/search filter
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter usecases.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	users, err := h.adminUsecase.ListUsers(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": users, "total": len(users)})
}

// ListPending lists accounts awaiting approval
// GET /api/v1/admin/users/pending
func (h *AdminHandler) ListPending(c *gin.Context) {
	users, err := h.adminUsecase.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": users, "total": len(users)})
}

// SetApproval records an approve/reject decision
// PUT /api/v1/admin/users/:id/approval
func (h *AdminHandler) SetApproval(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input entities.ApprovalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUsecase.SetApproval(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// SetRole changes an account's role
// PUT /api/v1/admin/users/:id/role
func (h *AdminHandler) SetRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input entities.RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUsecase.SetRole(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
