package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func registerDebtRoutes(rg *gin.RouterGroup, ds portssvc.DebtSvcFacade) {
	h := &debtHandler{debtService: ds}

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listDebts)
		debts.POST("", h.createDebt)
		debts.GET("/:id", h.getDebt)
		debts.PUT("/:id", h.updateDebt)
		debts.DELETE("/:id", h.deleteDebt)
	}
}

// listDebts godoc
// @Summary List debts
// @Description Lists money lent, borrowed and subscriptions, in store order
// @Tags debts
// @Produce json
// @Success 200 {object} dto.ListDebtsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "debts", "list")
		return
	}

	c.JSON(http.StatusOK, dto.ListDebtsResponse{Debts: debts})
}

// createDebt godoc
// @Summary Create a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.SaveDebtRequest true "Debt to create"
// @Success 201 {object} domain.Debt
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	h.saveDebt(c, "", http.StatusCreated)
}

// updateDebt godoc
// @Summary Replace a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param debt body dto.SaveDebtRequest true "Debt data"
// @Success 200 {object} domain.Debt
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	h.saveDebt(c, c.Param("id"), http.StatusOK)
}

func (h *debtHandler) saveDebt(c *gin.Context, id string, status int) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.SaveDebtRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	if id != "" {
		req.ID = id
	}

	debt, err := h.debtService.SaveDebt(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "debt", "save")
		return
	}

	c.JSON(status, debt)
}

// getDebt godoc
// @Summary Get a debt
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} domain.Debt
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	debt, err := h.debtService.GetDebt(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "debt", "get")
		return
	}

	c.JSON(http.StatusOK, debt)
}

// deleteDebt godoc
// @Summary Delete a debt
// @Tags debts
// @Param id path string true "Debt ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondError(c, logger, err, "debt", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
