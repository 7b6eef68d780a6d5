package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// groupHandler handles the chart of accounts of a company.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
}

func newGroupHandler(gs portssvc.GroupSvcFacade) *groupHandler {
	return &groupHandler{groupService: gs}
}

// registerGroupRoutes registers the group routes under a company.
func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade) {
	h := newGroupHandler(groupService)

	groups := rg.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.GET("", h.listGroups)
		groups.GET("/:groupID", h.getGroup)
		groups.PUT("/:groupID", h.updateGroup)
		groups.DELETE("/:groupID", h.deleteGroup)
	}
}

// createGroup godoc
// @Summary Create a group
// @Description Creates a group. Sub-groups inherit nature and gross-profit treatment from the parent unless given.
// @Tags groups
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   group body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.SuccessResponse{data=dto.GroupResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 409 {object} dto.ErrorResponse "Group name already used"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateGroupRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), companyID, req, userID)
	if err != nil {
		handleServiceError(c, logger, "create group", err)
		return
	}

	logger.Info("Group created successfully", slog.String("group_id", group.GroupID))
	respond(c, http.StatusCreated, dto.ToGroupResponse(group))
}

// listGroups godoc
// @Summary List groups
// @Tags groups
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.GroupResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/groups [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.groupService.ListGroups(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		handleServiceError(c, logger, "list groups", err)
		return
	}
	respond(c, http.StatusOK, dto.ToListGroupResponse(groups))
}

// getGroup godoc
// @Summary Get a group
// @Tags groups
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   groupID path string true "Group ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.GroupResponse}
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/groups/{groupID} [get]
func (h *groupHandler) getGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	group, err := h.groupService.GetGroupByID(c.Request.Context(), c.Param("companyID"), c.Param("groupID"))
	if err != nil {
		handleServiceError(c, logger, "get group", err)
		return
	}
	respond(c, http.StatusOK, dto.ToGroupResponse(group))
}

// updateGroup godoc
// @Summary Update a group
// @Tags groups
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   groupID path string true "Group ID"
// @Param   group body dto.UpdateGroupRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.GroupResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/groups/{groupID} [put]
func (h *groupHandler) updateGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("groupID")

	var req dto.UpdateGroupRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), c.Param("companyID"), groupID, req, userID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("group_id", groupID)), "update group", err)
		return
	}
	respond(c, http.StatusOK, dto.ToGroupResponse(group))
}

// deleteGroup godoc
// @Summary Delete a group
// @Description Primary groups and groups with sub-groups or ledgers cannot be deleted
// @Tags groups
// @Param   companyID path string true "Company ID"
// @Param   groupID path string true "Group ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 409 {object} dto.ErrorResponse "Group is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/groups/{groupID} [delete]
func (h *groupHandler) deleteGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("groupID")

	if err := h.groupService.DeleteGroup(c.Request.Context(), c.Param("companyID"), groupID); err != nil {
		handleServiceError(c, logger.With(slog.String("group_id", groupID)), "delete group", err)
		return
	}

	logger.Info("Group deleted", slog.String("group_id", groupID))
	c.Status(http.StatusNoContent)
}
