package services

import (
	"context"
	"fmt"
	"strings"

	dbmodels "personal-crm-backend/db/models"
	"personal-crm-backend/search/models"
	"personal-crm-backend/search/repositories"
)

const previewDateFormat = "Jan 2, 2006"

// entityMatcher is the shared shape of the four per-entity searches:
// fetch candidates, build title/preview, score. One interface with four
// variants keeps the field-selection rules from drifting apart.
type entityMatcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
}

type contactMatcher struct {
	repo repositories.SearchRepository
}

func (m *contactMatcher) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	contacts, err := m.repo.FindContacts(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(contacts))
	for _, contact := range contacts {
		title := contact.FullName()

		var parts []string
		for _, field := range []*string{contact.Company, contact.JobTitle, contact.Email} {
			if field != nil && *field != "" {
				parts = append(parts, *field)
			}
		}
		preview := "No additional details"
		if len(parts) > 0 {
			preview = strings.Join(parts, " • ")
		}

		results = append(results, models.SearchResult{
			ID:             contact.ID,
			EntityType:     models.EntityContact,
			Title:          title,
			Preview:        preview,
			RelevanceScore: RelevanceScore(query, &title, &preview),
			CreatedAt:      contact.CreatedAt,
		})
	}
	return results, nil
}

type noteMatcher struct {
	repo repositories.SearchRepository
}

func (m *noteMatcher) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	notes, err := m.repo.FindNotes(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(notes))
	for _, note := range notes {
		name := ownerName(note.Contact)
		contactID := note.ContactID

		// Notes have no title field the query could match, so they are
		// scored on content alone.
		results = append(results, models.SearchResult{
			ID:             note.ID,
			EntityType:     models.EntityNote,
			Title:          "Note for " + name,
			Preview:        TruncatePreview(note.Content, PreviewMaxLength),
			RelevanceScore: RelevanceScore(query, nil, &note.Content),
			ContactID:      &contactID,
			ContactName:    &name,
			CreatedAt:      note.CreatedAt,
		})
	}
	return results, nil
}

type interactionMatcher struct {
	repo repositories.SearchRepository
}

func (m *interactionMatcher) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	interactions, err := m.repo.FindInteractions(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(interactions))
	for _, interaction := range interactions {
		name := ownerName(interaction.Contact)
		contactID := interaction.ContactID

		title := fmt.Sprintf("%s with %s", interaction.Type, name)
		if interaction.Subject != nil && *interaction.Subject != "" {
			title = *interaction.Subject
		}

		preview := fmt.Sprintf("%s on %s", interaction.Type, interaction.Date.Format(previewDateFormat))
		if interaction.Notes != nil && *interaction.Notes != "" {
			preview = TruncatePreview(*interaction.Notes, PreviewMaxLength)
		}

		results = append(results, models.SearchResult{
			ID:             interaction.ID,
			EntityType:     models.EntityInteraction,
			Title:          title,
			Preview:        preview,
			RelevanceScore: RelevanceScore(query, interaction.Subject, interaction.Notes),
			ContactID:      &contactID,
			ContactName:    &name,
			CreatedAt:      interaction.CreatedAt,
		})
	}
	return results, nil
}

type reminderMatcher struct {
	repo repositories.SearchRepository
}

func (m *reminderMatcher) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	reminders, err := m.repo.FindReminders(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(reminders))
	for _, reminder := range reminders {
		name := ownerName(reminder.Contact)
		contactID := reminder.ContactID
		title := reminder.Title

		var preview string
		switch {
		case reminder.Description != nil && *reminder.Description != "":
			preview = TruncatePreview(*reminder.Description, PreviewMaxLength)
		case reminder.IsCompleted:
			preview = "✓ Completed"
		default:
			preview = "Due " + reminder.DueDate.Format(previewDateFormat)
		}

		results = append(results, models.SearchResult{
			ID:             reminder.ID,
			EntityType:     models.EntityReminder,
			Title:          title,
			Preview:        preview,
			RelevanceScore: RelevanceScore(query, &title, reminder.Description),
			ContactID:      &contactID,
			ContactName:    &name,
			CreatedAt:      reminder.CreatedAt,
		})
	}
	return results, nil
}

// ownerName resolves the preloaded owning contact's display name.
func ownerName(contact *dbmodels.Contact) string {
	if contact == nil {
		return ""
	}
	return contact.FullName()
}
