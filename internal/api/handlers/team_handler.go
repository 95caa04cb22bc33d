package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

type TeamHandler struct {
	service *services.TeamService
}

func NewTeamHandler(service *services.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// RegisterRoutes expects rg to be authenticated.
func (h *TeamHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/teams", h.List)
	rg.GET("/teams/:id", h.Get)
	rg.GET("/teams/:id/members", h.Members)

	w := rg.Group("", middleware.RequireOperations())
	w.POST("/teams", h.Create)
	w.PUT("/teams/:id", h.Update)
	w.POST("/teams/:id/members", h.AddMember)
	w.DELETE("/teams/:id/members/:user_id", h.RemoveMember)
}

// List godoc
// @Summary List teams visible to the caller
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param operation_id query integer false "Operation ID"
// @Success 200 {array} models.Team
// @Failure 400 {object} ErrorResponse
// @Router /oper/teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	opID, ok := queryUint(c, "operation_id")
	if !ok {
		return
	}
	teams, err := h.service.List(middleware.CurrentUser(c), opID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// load fetches a team the caller may see.
func (h *TeamHandler) load(c *gin.Context) (*models.Team, bool) {
	id, ok := paramUint(c, "id")
	if !ok {
		return nil, false
	}
	team, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if err := h.service.Authorize(middleware.CurrentUser(c), team); err != nil {
		respondError(c, err)
		return nil, false
	}
	return team, true
}

// Get godoc
// @Summary Get a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/teams/{id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	team, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, team)
}

// Members godoc
// @Summary Members of a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {array} models.TeamMember
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/teams/{id}/members [get]
func (h *TeamHandler) Members(c *gin.Context) {
	team, ok := h.load(c)
	if !ok {
		return
	}
	members, err := h.service.Members(team.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// Create godoc
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.TeamInput true "Team"
// @Success 201 {object} models.Team
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /oper/teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req services.TeamInput
	if !bindJSON(c, &req) {
		return
	}
	team, err := h.service.Create(actorContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// Update godoc
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param body body services.TeamInput true "Team"
// @Success 200 {object} models.Team
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/teams/{id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req services.TeamInput
	if !bindJSON(c, &req) {
		return
	}
	team, err := h.service.Update(actorContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

type addMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// AddMember godoc
// @Summary Add a member to a team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param body body addMemberRequest true "Member"
// @Success 201 {object} models.TeamMember
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req addMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	member, err := h.service.AddMember(actorContext(c), id, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// RemoveMember godoc
// @Summary Remove a member from a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param user_id path int true "User ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /oper/teams/{id}/members/{user_id} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	userID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}
	if err := h.service.RemoveMember(actorContext(c), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
