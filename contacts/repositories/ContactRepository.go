package repositories

import (
	"errors"
	"fmt"
	"strings"

	"personal-crm-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepository interface {
	CreateContact(contact *models.Contact) (*models.Contact, error)
	GetContactByID(id uuid.UUID) (*models.Contact, error)
	GetAllContacts() ([]models.Contact, error)
	GetFilteredContacts(pageSize int, offset int, filters map[string]string) ([]models.Contact, int64, error)
	UpdateContact(contact *models.Contact) (*models.Contact, error)
	DeleteContact(id uuid.UUID) error
	AddTag(contactID, tagID uuid.UUID) error
	RemoveTag(contactID, tagID uuid.UUID) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (r *contactRepository) CreateContact(contact *models.Contact) (*models.Contact, error) {
	contact.ID = uuid.New()
	err := r.db.Create(contact).Error
	return contact, err
}

func (r *contactRepository) GetContactByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("Tags").First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact '%s' not found", id)
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) GetAllContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Preload("Tags").Order("last_name ASC, first_name ASC").Find(&contacts).Error
	return contacts, err
}

// GetFilteredContacts retrieves contacts with filtering and pagination
func (r *contactRepository) GetFilteredContacts(pageSize int, offset int, filters map[string]string) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	db := r.db.Model(&models.Contact{})

	for key, value := range filters {
		switch key {
		case "name":
			pattern := "%" + value + "%"
			db = db.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
		case "company":
			db = db.Where("company ILIKE ?", "%"+value+"%")
		case "email":
			db = db.Where("email ILIKE ?", "%"+value+"%")
		case "tag":
			db = db.Joins("JOIN contact_tags ON contact_tags.contact_id = contacts.id").
				Joins("JOIN tags ON tags.id = contact_tags.tag_id").
				Where("tags.name = ?", strings.ToLower(value))
		case "start_date":
			db = db.Where("Date(contacts.created_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(contacts.created_at) <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Tags").Limit(pageSize).Offset(offset).
		Order("last_name ASC, first_name ASC").Find(&contacts).Error; err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *contactRepository) UpdateContact(contact *models.Contact) (*models.Contact, error) {
	if err := r.db.Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *contactRepository) DeleteContact(id uuid.UUID) error {
	result := r.db.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("contact '%s' not found", id)
	}
	return nil
}

func (r *contactRepository) AddTag(contactID, tagID uuid.UUID) error {
	contact := models.Contact{ID: contactID}
	tag := models.Tag{ID: tagID}
	return r.db.Model(&contact).Association("Tags").Append(&tag)
}

func (r *contactRepository) RemoveTag(contactID, tagID uuid.UUID) error {
	contact := models.Contact{ID: contactID}
	tag := models.Tag{ID: tagID}
	return r.db.Model(&contact).Association("Tags").Delete(&tag)
}
