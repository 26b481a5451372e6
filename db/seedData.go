package db

import (
	"errors"

	"personal-crm-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedDefaultTags populates the database with the starter tag set.
// Existing tags are left untouched, so this is safe to run on every boot.
func SeedDefaultTags(db *gorm.DB) error {
	tags := []models.Tag{
		{Name: "family", Color: strPtr("#e57373")},
		{Name: "friend", Color: strPtr("#64b5f6")},
		{Name: "colleague", Color: strPtr("#81c784")},
		{Name: "client", Color: strPtr("#ffd54f")},
		{Name: "mentor", Color: strPtr("#ba68c8")},
		{Name: "networking", Color: strPtr("#4db6ac")},
	}

	for _, tag := range tags {
		var existing models.Tag
		err := db.Where("name = ?", tag.Name).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				tag.ID = uuid.New()
				if err := db.Create(&tag).Error; err != nil {
					return err
				}
			} else {
				return err
			}
		}
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
