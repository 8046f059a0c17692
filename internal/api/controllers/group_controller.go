package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type GroupController struct {
	groupService services.GroupServiceInterface
}

func NewGroupController(groupService services.GroupServiceInterface) *GroupController {
	return &GroupController{groupService: groupService}
}

// CreateGroup godoc
// @Summary Create a group
// @Description The caller becomes the owner member
// @Tags Groups
// @Accept json
// @Produce json
// @Param request body request_models.CreateGroupRequest true "Group payload"
// @Success 201 {object} response_models.GroupResponse
// @Security BearerAuth
// @Router /groups [post]
func (g *GroupController) CreateGroup(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req request_models.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := g.groupService.CreateGroup(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, group, "Group created successfully")
}

// ListGroups godoc
// @Summary List groups of the caller
// @Tags Groups
// @Produce json
// @Success 200 {array} response_models.GroupResponse
// @Security BearerAuth
// @Router /groups [get]
func (g *GroupController) ListGroups(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	groups, err := g.groupService.ListGroups(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, groups, "Groups fetched successfully")
}

// ListMembers godoc
// @Summary List group members
// @Tags Groups
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {array} response_models.GroupMemberResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups/{groupId}/members [get]
func (g *GroupController) ListMembers(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "groupId", utils.ErrGroupNotFound)
	if !ok {
		return
	}

	members, err := g.groupService.ListMembers(c.Request.Context(), actor, groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, members, "Members fetched successfully")
}

// AddMember godoc
// @Summary Add a member by email
// @Description Owner only
// @Tags Groups
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param request body request_models.AddGroupMemberRequest true "Member payload"
// @Success 201 {object} response_models.GroupMemberResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups/{groupId}/members [post]
func (g *GroupController) AddMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "groupId", utils.ErrGroupNotFound)
	if !ok {
		return
	}
	var req request_models.AddGroupMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := g.groupService.AddMember(c.Request.Context(), actor, groupID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, member, "Member added successfully")
}

// RemoveMember godoc
// @Summary Remove a member
// @Description Owner only; the owner membership cannot be removed
// @Tags Groups
// @Param groupId path string true "Group ID"
// @Param memberId path string true "Member ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups/{groupId}/members/{memberId} [delete]
func (g *GroupController) RemoveMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "groupId", utils.ErrGroupNotFound)
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId", utils.ErrMemberNotFound)
	if !ok {
		return
	}

	if err := g.groupService.RemoveMember(c.Request.Context(), actor, groupID, memberID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
