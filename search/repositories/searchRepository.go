package repositories

import (
	"context"

	"personal-crm-backend/db/models"

	"gorm.io/gorm"
)

// SearchRepository supplies the candidate rows for each searchable entity.
// Every query is a case-insensitive substring match capped at limit rows;
// ordering is the per-entity source order the matchers expect.
type SearchRepository interface {
	FindContacts(ctx context.Context, query string, limit int) ([]models.Contact, error)
	FindNotes(ctx context.Context, query string, limit int) ([]models.Note, error)
	FindInteractions(ctx context.Context, query string, limit int) ([]models.Interaction, error)
	FindReminders(ctx context.Context, query string, limit int) ([]models.Reminder, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) FindContacts(ctx context.Context, query string, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR company ILIKE ? OR job_title ILIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Find(&contacts).Error
	return contacts, err
}

func (r *searchRepository) FindNotes(ctx context.Context, query string, limit int) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Where("content ILIKE ?", "%"+query+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error
	return notes, err
}

func (r *searchRepository) FindInteractions(ctx context.Context, query string, limit int) ([]models.Interaction, error) {
	var interactions []models.Interaction
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Where("subject ILIKE ? OR notes ILIKE ? OR location ILIKE ?", pattern, pattern, pattern).
		Order("date DESC").
		Limit(limit).
		Find(&interactions).Error
	return interactions, err
}

func (r *searchRepository) FindReminders(ctx context.Context, query string, limit int) ([]models.Reminder, error) {
	var reminders []models.Reminder
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("due_date ASC").
		Limit(limit).
		Find(&reminders).Error
	return reminders, err
}
