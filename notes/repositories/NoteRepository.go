package repositories

import (
	"errors"
	"fmt"

	"personal-crm-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepository interface {
	CreateNote(note *models.Note) (*models.Note, error)
	GetNoteByID(id uuid.UUID) (*models.Note, error)
	GetNotes(contactID *uuid.UUID) ([]models.Note, error)
	UpdateNote(note *models.Note) (*models.Note, error)
	DeleteNote(id uuid.UUID) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) CreateNote(note *models.Note) (*models.Note, error) {
	note.ID = uuid.New()
	if err := r.db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, r.db.Preload("Contact").First(note, "id = ?", note.ID).Error
}

func (r *noteRepository) GetNoteByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Preload("Contact").First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("note '%s' not found", id)
		}
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) GetNotes(contactID *uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	db := r.db.Preload("Contact").Order("created_at DESC")
	if contactID != nil {
		db = db.Where("contact_id = ?", *contactID)
	}
	err := db.Find(&notes).Error
	return notes, err
}

func (r *noteRepository) UpdateNote(note *models.Note) (*models.Note, error) {
	if err := r.db.Save(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

func (r *noteRepository) DeleteNote(id uuid.UUID) error {
	result := r.db.Delete(&models.Note{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("note '%s' not found", id)
	}
	return nil
}
