package controllers

import (
	"net/http"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type AgentController struct {
	Agents *services.AgentService
}

func NewAgentController(svc *services.AgentService) *AgentController {
	return &AgentController{Agents: svc}
}

func (ctrl *AgentController) GetAgents(c *gin.Context) {
	agents, err := ctrl.Agents.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (ctrl *AgentController) GetAgentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	agent, err := ctrl.Agents.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

func (ctrl *AgentController) CreateAgent(c *gin.Context) {
	var agent models.Agent
	if err := c.ShouldBindJSON(&agent); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.Agents.Create(&agent); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

func (ctrl *AgentController) UpdateAgent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.Agents.Update(id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "agent updated"})
}

func (ctrl *AgentController) DeleteAgent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.Agents.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "agent deleted"})
}
