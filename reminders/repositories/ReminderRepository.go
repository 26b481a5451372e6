package repositories

import (
	"errors"
	"fmt"
	"time"

	"personal-crm-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	CreateReminder(reminder *models.Reminder) (*models.Reminder, error)
	GetReminderByID(id uuid.UUID) (*models.Reminder, error)
	GetReminders(contactID *uuid.UUID, status string) ([]models.Reminder, error)
	GetRemindersDueBefore(cutoff time.Time) ([]models.Reminder, error)
	UpdateReminder(reminder *models.Reminder) (*models.Reminder, error)
	SetCompleted(id uuid.UUID, completed bool) (*models.Reminder, error)
	DeleteReminder(id uuid.UUID) error
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) CreateReminder(reminder *models.Reminder) (*models.Reminder, error) {
	reminder.ID = uuid.New()
	if err := r.db.Create(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, r.db.Preload("Contact").First(reminder, "id = ?", reminder.ID).Error
}

func (r *reminderRepository) GetReminderByID(id uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.db.Preload("Contact").First(&reminder, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder '%s' not found", id)
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) GetReminders(contactID *uuid.UUID, status string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	db := r.db.Preload("Contact").Order("due_date ASC")
	if contactID != nil {
		db = db.Where("contact_id = ?", *contactID)
	}

	switch status {
	case "upcoming":
		db = db.Where("is_completed = ? AND due_date >= ?", false, time.Now())
	case "overdue":
		db = db.Where("is_completed = ? AND due_date < ?", false, time.Now())
	case "completed":
		db = db.Where("is_completed = ?", true)
	}

	err := db.Find(&reminders).Error
	return reminders, err
}

// GetRemindersDueBefore returns incomplete reminders due before cutoff,
// overdue ones included. Used by the daily digest job.
func (r *reminderRepository) GetRemindersDueBefore(cutoff time.Time) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.Preload("Contact").
		Where("is_completed = ? AND due_date <= ?", false, cutoff).
		Order("due_date ASC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) UpdateReminder(reminder *models.Reminder) (*models.Reminder, error) {
	if err := r.db.Save(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepository) SetCompleted(id uuid.UUID, completed bool) (*models.Reminder, error) {
	reminder, err := r.GetReminderByID(id)
	if err != nil {
		return nil, err
	}
	reminder.IsCompleted = completed
	return r.UpdateReminder(reminder)
}

func (r *reminderRepository) DeleteReminder(id uuid.UUID) error {
	result := r.db.Delete(&models.Reminder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder '%s' not found", id)
	}
	return nil
}
