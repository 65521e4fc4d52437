package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerMetaRoutes(rg *gin.RouterGroup, vs portssvc.ViewSvc) {
	rg.GET("/meta", func(c *gin.Context) { getMeta(c, vs) })
}

// getMeta godoc
// @Summary Get form choices
// @Description Entry types, debt types, default categories and the account names already in use
// @Tags meta
// @Produce json
// @Success 200 {object} dto.MetaResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /meta [get]
func getMeta(c *gin.Context, vs portssvc.ViewSvc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	accounts, err := vs.KnownAccounts(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "accounts", "list")
		return
	}

	c.JSON(http.StatusOK, dto.NewMetaResponse(accounts))
}
