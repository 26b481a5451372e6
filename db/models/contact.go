package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Contact is the hub entity: every note, interaction and reminder
// belongs to exactly one contact.
type Contact struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	FirstName string     `gorm:"not null" json:"firstName"`
	LastName  string     `gorm:"not null" json:"lastName"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	Company   *string    `json:"company"`
	JobTitle  *string    `json:"jobTitle"`
	Birthday  *time.Time `json:"birthday"`

	// Arbitrary profile URLs keyed by platform (e.g. {"linkedin": "..."}).
	SocialLinks datatypes.JSON `json:"socialLinks,omitempty"`

	Notes        []Note        `gorm:"constraint:OnDelete:CASCADE;" json:"notes,omitempty"`
	Interactions []Interaction `gorm:"constraint:OnDelete:CASCADE;" json:"interactions,omitempty"`
	Reminders    []Reminder    `gorm:"constraint:OnDelete:CASCADE;" json:"reminders,omitempty"`
	Tags         []Tag         `gorm:"many2many:contact_tags;" json:"tags,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FullName joins first and last name with a single space.
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
