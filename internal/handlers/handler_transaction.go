package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	viewService        portssvc.ViewSvc
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, vs portssvc.ViewSvc) *transactionHandler {
	return &transactionHandler{transactionService: ts, viewService: vs}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, vs portssvc.ViewSvc) {
	h := newTransactionHandler(ts, vs)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the user's transactions newest first, filtered by a search query and an entry type
// @Tags transactions
// @Produce json
// @Param q query string false "Case-insensitive search over category, subcategory and note"
// @Param type query string false "Entry type or All" default(All)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	params, ok := bindViewParams(c, logger)
	if !ok {
		return
	}

	txs, err := h.viewService.FilteredTransactions(c.Request.Context(), ownerID, params.Query, params.Type)
	if err != nil {
		respondError(c, logger, err, "transactions", "list")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: txs})
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates a transaction. A linkedId naming a debt or goal adds the amount to that record as well.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.SaveTransactionRequest true "Transaction to create"
// @Success 201 {object} dto.SaveTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	h.saveTransaction(c, "", http.StatusCreated)
}

// updateTransaction godoc
// @Summary Replace a transaction
// @Description Replaces the transaction with the given ID. The linked record is updated again with the full amount.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.SaveTransactionRequest true "Transaction data"
// @Success 200 {object} dto.SaveTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	h.saveTransaction(c, c.Param("id"), http.StatusOK)
}

func (h *transactionHandler) saveTransaction(c *gin.Context, id string, status int) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.SaveTransactionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	if id != "" {
		req.ID = id
	}

	tx, link, err := h.transactionService.SaveTransaction(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "transaction", "save")
		return
	}

	c.JSON(status, dto.SaveTransactionResponse{Transaction: *tx, LinkUpdate: link})
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} domain.Transaction
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "transaction", "get")
		return
	}

	c.JSON(http.StatusOK, tx)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction. Linked debts and goals keep the amount already applied.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondError(c, logger, err, "transaction", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
