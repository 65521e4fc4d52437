package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func registerGoalRoutes(rg *gin.RouterGroup, gs portssvc.GoalSvcFacade) {
	h := &goalHandler{goalService: gs}

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
	}
}

// listGoals godoc
// @Summary List goals
// @Description Lists the stored savings goals without projections, see /views/goals for those
// @Tags goals
// @Produce json
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "goals", "list")
		return
	}

	c.JSON(http.StatusOK, dto.ListGoalsResponse{Goals: goals})
}

// createGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.SaveGoalRequest true "Goal to create"
// @Success 201 {object} domain.Goal
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	h.saveGoal(c, "", http.StatusCreated)
}

// updateGoal godoc
// @Summary Replace a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param goal body dto.SaveGoalRequest true "Goal data"
// @Success 200 {object} domain.Goal
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	h.saveGoal(c, c.Param("id"), http.StatusOK)
}

func (h *goalHandler) saveGoal(c *gin.Context, id string, status int) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.SaveGoalRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	if id != "" {
		req.ID = id
	}

	goal, err := h.goalService.SaveGoal(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "goal", "save")
		return
	}

	c.JSON(status, goal)
}

// getGoal godoc
// @Summary Get a goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} domain.Goal
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "goal", "get")
		return
	}

	c.JSON(http.StatusOK, goal)
}

// deleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondError(c, logger, err, "goal", "delete")
		return
	}

	c.Status(http.StatusNoContent)
}
