package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

var (
	ErrAgentNotFound   = errors.New("agent_not_found")
	ErrAgentReferenced = errors.New("agent_referenced_by_reservations")
)

type AgentService struct {
	DB *gorm.DB
}

func NewAgentService(db *gorm.DB) *AgentService {
	return &AgentService{DB: db}
}

func (s *AgentService) Create(agent *models.Agent) error {
	agent.Name = strings.TrimSpace(agent.Name)
	if agent.Name == "" {
		return fmt.Errorf("validation: agent name is required")
	}
	if agent.CommissionPct < 0 || agent.CommissionPct > 100 {
		return fmt.Errorf("validation: commission must be between 0 and 100")
	}
	return s.DB.Create(agent).Error
}

func (s *AgentService) GetAll() ([]models.Agent, error) {
	var agents []models.Agent
	err := s.DB.Order("name ASC").Find(&agents).Error
	return agents, err
}

func (s *AgentService) GetByID(id uint) (models.Agent, error) {
	var agent models.Agent
	err := s.DB.First(&agent, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return agent, ErrAgentNotFound
	}
	return agent, err
}

func (s *AgentService) Update(id uint, patch map[string]interface{}) error {
	delete(patch, "id")
	return s.DB.Model(&models.Agent{}).Where("id = ?", id).Updates(patch).Error
}

func (s *AgentService) Delete(id uint) error {
	var refs int64
	if err := s.DB.Model(&models.Reservation{}).Where("agent_id = ?", id).Count(&refs).Error; err != nil {
		return fmt.Errorf("failed to check reservations for agent %d: %w", id, err)
	}
	if refs > 0 {
		return ErrAgentReferenced
	}

	result := s.DB.Delete(&models.Agent{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete agent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAgentNotFound
	}
	return nil
}
