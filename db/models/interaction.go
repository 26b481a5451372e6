package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InteractionType string

const (
	InteractionCall    InteractionType = "CALL"
	InteractionMeeting InteractionType = "MEETING"
	InteractionEmail   InteractionType = "EMAIL"
	InteractionText    InteractionType = "TEXT"
	InteractionCoffee  InteractionType = "COFFEE"
	InteractionLunch   InteractionType = "LUNCH"
	InteractionEvent   InteractionType = "EVENT"
	InteractionOther   InteractionType = "OTHER"
)

// ValidInteractionType reports whether t is one of the known interaction kinds.
func ValidInteractionType(t InteractionType) bool {
	switch t {
	case InteractionCall, InteractionMeeting, InteractionEmail, InteractionText,
		InteractionCoffee, InteractionLunch, InteractionEvent, InteractionOther:
		return true
	}
	return false
}

// Interaction records a touchpoint with a contact (a call, a meeting, ...).
type Interaction struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	Type     InteractionType `gorm:"type:varchar(20);not null" json:"type"`
	Subject  *string         `json:"subject"`
	Notes    *string         `gorm:"type:text" json:"notes"`
	Location *string         `json:"location"`
	Date     time.Time       `gorm:"not null;index" json:"date"`

	ContactID uuid.UUID `gorm:"type:uuid;not null;index" json:"contactId"`
	Contact   *Contact  `gorm:"foreignKey:ContactID" json:"contact,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
