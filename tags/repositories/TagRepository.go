package repositories

import (
	"errors"
	"fmt"
	"strings"

	"personal-crm-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagRepository interface {
	CreateTag(tag *models.Tag) (*models.Tag, error)
	GetAllTags() ([]models.Tag, error)
	GetTagByID(id uuid.UUID) (*models.Tag, error)
	DeleteTag(id uuid.UUID) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) CreateTag(tag *models.Tag) (*models.Tag, error) {
	tag.ID = uuid.New()
	tag.Name = strings.ToLower(strings.TrimSpace(tag.Name))
	if err := r.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *tagRepository) GetAllTags() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetTagByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag '%s' not found", id)
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) DeleteTag(id uuid.UUID) error {
	tag := models.Tag{ID: id}
	if err := r.db.Model(&tag).Association("Contacts").Clear(); err != nil {
		return err
	}
	result := r.db.Delete(&tag)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("tag '%s' not found", id)
	}
	return nil
}
