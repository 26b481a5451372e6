package repositories

import (
	"errors"
	"fmt"

	"personal-crm-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InteractionRepository interface {
	CreateInteraction(interaction *models.Interaction) (*models.Interaction, error)
	GetInteractionByID(id uuid.UUID) (*models.Interaction, error)
	GetInteractions(contactID *uuid.UUID, interactionType string) ([]models.Interaction, error)
	UpdateInteraction(interaction *models.Interaction) (*models.Interaction, error)
	DeleteInteraction(id uuid.UUID) error
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) CreateInteraction(interaction *models.Interaction) (*models.Interaction, error) {
	interaction.ID = uuid.New()
	if err := r.db.Create(interaction).Error; err != nil {
		return nil, err
	}
	return interaction, r.db.Preload("Contact").First(interaction, "id = ?", interaction.ID).Error
}

func (r *interactionRepository) GetInteractionByID(id uuid.UUID) (*models.Interaction, error) {
	var interaction models.Interaction
	err := r.db.Preload("Contact").First(&interaction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("interaction '%s' not found", id)
		}
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) GetInteractions(contactID *uuid.UUID, interactionType string) ([]models.Interaction, error) {
	var interactions []models.Interaction
	db := r.db.Preload("Contact").Order("date DESC")
	if contactID != nil {
		db = db.Where("contact_id = ?", *contactID)
	}
	if interactionType != "" {
		db = db.Where("type = ?", interactionType)
	}
	err := db.Find(&interactions).Error
	return interactions, err
}

func (r *interactionRepository) UpdateInteraction(interaction *models.Interaction) (*models.Interaction, error) {
	if err := r.db.Save(interaction).Error; err != nil {
		return nil, err
	}
	return interaction, nil
}

func (r *interactionRepository) DeleteInteraction(id uuid.UUID) error {
	result := r.db.Delete(&models.Interaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("interaction '%s' not found", id)
	}
	return nil
}
