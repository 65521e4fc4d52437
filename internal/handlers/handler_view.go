package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// defaultKeepAlive is how often an idle dashboard stream sends a ping event.
const defaultKeepAlive = 25 * time.Second

// viewHandler serves the computed views. Every request recomputes from the stored records.
type viewHandler struct {
	viewService portssvc.ViewSvc
	changes     portssvc.ChangeNotifier
	keepAlive   time.Duration
}

func newViewHandler(vs portssvc.ViewSvc, changes portssvc.ChangeNotifier) *viewHandler {
	return &viewHandler{viewService: vs, changes: changes, keepAlive: defaultKeepAlive}
}

func registerViewRoutes(rg *gin.RouterGroup, vs portssvc.ViewSvc, changes portssvc.ChangeNotifier) {
	h := newViewHandler(vs, changes)

	views := rg.Group("/views")
	{
		views.GET("/totals", h.getTotals)
		views.GET("/ledgers", h.getNameLedgers)
		views.GET("/goals", h.getGoalReport)
		views.GET("/dashboard", h.getDashboard)
		views.GET("/stream", h.streamDashboard)
	}
}

// getTotals godoc
// @Summary Get totals
// @Description Net balance, receivables, payables and the per-account balances
// @Tags views
// @Produce json
// @Success 200 {object} domain.Totals
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/totals [get]
func (h *viewHandler) getTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	totals, err := h.viewService.Totals(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "totals", "compute")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// getNameLedgers godoc
// @Summary Get counterparty ledgers
// @Description Debts and linked transactions grouped by counterparty name
// @Tags views
// @Produce json
// @Success 200 {object} dto.NameLedgersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/ledgers [get]
func (h *viewHandler) getNameLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	ledgers, err := h.viewService.NameLedgers(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "ledgers", "compute")
		return
	}

	c.JSON(http.StatusOK, dto.NameLedgersResponse{NameLedgers: ledgers})
}

// getGoalReport godoc
// @Summary Get goal projections
// @Description Remaining amount, months to target, monthly requirement and deposit history per goal
// @Tags views
// @Produce json
// @Success 200 {object} dto.GoalReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/goals [get]
func (h *viewHandler) getGoalReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	goals, err := h.viewService.GoalReport(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "goal report", "compute")
		return
	}

	c.JSON(http.StatusOK, dto.GoalReportResponse{Goals: goals})
}

// getDashboard godoc
// @Summary Get the dashboard
// @Description Every view computed from one snapshot
// @Tags views
// @Produce json
// @Param q query string false "Search query for the transaction list"
// @Param type query string false "Entry type or All" default(All)
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/dashboard [get]
func (h *viewHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	params, ok := bindViewParams(c, logger)
	if !ok {
		return
	}

	dashboard, err := h.viewService.Dashboard(c.Request.Context(), ownerID, params.Query, params.Type)
	if err != nil {
		respondError(c, logger, err, "dashboard", "compute")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// streamDashboard godoc
// @Summary Stream the dashboard
// @Description Server-sent events. A "dashboard" event carries the full dashboard, first on connect and again after every change to the user's records.
// @Tags views
// @Produce text/event-stream
// @Param q query string false "Search query for the transaction list"
// @Param type query string false "Entry type or All" default(All)
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/stream [get]
func (h *viewHandler) streamDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	params, ok := bindViewParams(c, logger)
	if !ok {
		return
	}

	events, cancel := h.changes.Subscribe(ownerID)
	defer cancel()

	dashboard, err := h.viewService.Dashboard(ctx, ownerID, params.Query, params.Type)
	if err != nil {
		respondError(c, logger, err, "dashboard", "compute")
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("dashboard", dashboard)
	c.Writer.Flush()

	logger.Debug("Dashboard stream opened")
	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		case event, open := <-events:
			if !open {
				return false
			}
			drain(events)
			logger.Debug("Recomputing dashboard",
				slog.String("collection", string(event.Collection)),
				slog.String("record_id", event.RecordID))

			dashboard, err := h.viewService.Dashboard(ctx, ownerID, params.Query, params.Type)
			if err != nil {
				logger.Error("Failed to recompute dashboard", slog.String("error", err.Error()))
				c.SSEvent("error", ErrorResponse{Error: "Failed to compute dashboard"})
				return true
			}
			c.SSEvent("dashboard", dashboard)
			return true
		}
	})
	logger.Debug("Dashboard stream closed")
}

// drain discards events already queued, one recompute covers them all.
func drain(events <-chan domain.ChangeEvent) {
	for {
		select {
		case _, open := <-events:
			if !open {
				return
			}
		default:
			return
		}
	}
}
