package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler serves the opening balances of named accounts.
type accountHandler struct {
	accountService portssvc.AccountRecordSvcFacade
}

func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountRecordSvcFacade) {
	h := &accountHandler{accountService: as}

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// listAccounts godoc
// @Summary List account records
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.ListAccountRecordsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccountRecords(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "accounts", "list")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountRecordsResponse{Accounts: accounts})
}

// createAccount godoc
// @Summary Create an account record
// @Description Records the opening balance of a named account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.SaveAccountRecordRequest true "Account record to create"
// @Success 201 {object} domain.AccountRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	h.saveAccount(c, "", http.StatusCreated)
}

// updateAccount godoc
// @Summary Replace an account record
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account record ID"
// @Param account body dto.SaveAccountRecordRequest true "Account record data"
// @Success 200 {object} domain.AccountRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	h.saveAccount(c, c.Param("id"), http.StatusOK)
}

func (h *accountHandler) saveAccount(c *gin.Context, id string, status int) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.SaveAccountRecordRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	if id != "" {
		req.ID = id
	}

	account, err := h.accountService.SaveAccountRecord(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "account", "save")
		return
	}

	c.JSON(status, account)
}

// getAccount godoc
// @Summary Get an account record
// @Tags accounts
// @Produce json
// @Param id path string true "Account record ID"
// @Success 200 {object} domain.AccountRecord
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountRecord(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "account", "get")
		return
	}

	c.JSON(http.StatusOK, account)
}

// deleteAccount godoc
// @Summary Delete an account record
// @Tags accounts
// @Param id path string true "Account record ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccountRecord(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondError(c, logger, err, "account", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
