package models

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies which table a search hit came from.
type EntityType string

const (
	EntityContact     EntityType = "contact"
	EntityNote        EntityType = "note"
	EntityInteraction EntityType = "interaction"
	EntityReminder    EntityType = "reminder"
)

// SearchResult is one ranked hit in a global search. Results are built
// fresh per request and never persisted. ContactID and ContactName are
// always set for non-contact hits and never set for contact hits.
type SearchResult struct {
	ID             uuid.UUID  `json:"id"`
	EntityType     EntityType `json:"entityType"`
	Title          string     `json:"title"`
	Preview        string     `json:"preview"`
	RelevanceScore int        `json:"relevanceScore"`
	ContactID      *uuid.UUID `json:"contactId,omitempty"`
	ContactName    *string    `json:"contactName,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// GlobalSearchResponse is the envelope returned by the search endpoint.
// Results are ordered by descending relevance score.
type GlobalSearchResponse struct {
	Query        string         `json:"query"`
	TotalResults int            `json:"totalResults"`
	Results      []SearchResult `json:"results"`
}
