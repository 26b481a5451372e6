package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	dbmodels "personal-crm-backend/db/models"
	"personal-crm-backend/search/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearchRepo returns pre-canned candidate rows, honoring the per-entity
// limit the way the real ILIKE queries do.
type fakeSearchRepo struct {
	contacts     []dbmodels.Contact
	notes        []dbmodels.Note
	interactions []dbmodels.Interaction
	reminders    []dbmodels.Reminder

	contactsErr     error
	notesErr        error
	interactionsErr error
	remindersErr    error
}

func capRows[T any](rows []T, limit int) []T {
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func (f *fakeSearchRepo) FindContacts(_ context.Context, _ string, limit int) ([]dbmodels.Contact, error) {
	return capRows(f.contacts, limit), f.contactsErr
}

func (f *fakeSearchRepo) FindNotes(_ context.Context, _ string, limit int) ([]dbmodels.Note, error) {
	return capRows(f.notes, limit), f.notesErr
}

func (f *fakeSearchRepo) FindInteractions(_ context.Context, _ string, limit int) ([]dbmodels.Interaction, error) {
	return capRows(f.interactions, limit), f.interactionsErr
}

func (f *fakeSearchRepo) FindReminders(_ context.Context, _ string, limit int) ([]dbmodels.Reminder, error) {
	return capRows(f.reminders, limit), f.remindersErr
}

func newContact(first, last string, company, jobTitle, email *string) dbmodels.Contact {
	return dbmodels.Contact{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
		Company:   company,
		JobTitle:  jobTitle,
		Email:     email,
		CreatedAt: time.Now(),
	}
}

func newNote(contact dbmodels.Contact, content string) dbmodels.Note {
	return dbmodels.Note{
		ID:        uuid.New(),
		Content:   content,
		ContactID: contact.ID,
		Contact:   &contact,
		CreatedAt: time.Now(),
	}
}

func sp(s string) *string { return &s }

func TestSearchRejectsShortQueries(t *testing.T) {
	svc := NewGlobalSearchService(&fakeSearchRepo{})

	for _, q := range []string{"", "j", " j ", "   ", "\t"} {
		_, err := svc.Search(context.Background(), q, 10)
		assert.ErrorIs(t, err, ErrQueryTooShort, "query %q", q)
	}
}

func TestSearchQueryLengthCountsCharactersNotBytes(t *testing.T) {
	svc := NewGlobalSearchService(&fakeSearchRepo{})

	// One character, two bytes: still too short.
	_, err := svc.Search(context.Background(), "é", 10)
	assert.ErrorIs(t, err, ErrQueryTooShort)

	resp, err := svc.Search(context.Background(), "éé", 10)
	require.NoError(t, err)
	assert.Equal(t, "éé", resp.Query)
}

func TestSearchTwoCharQuerySucceeds(t *testing.T) {
	svc := NewGlobalSearchService(&fakeSearchRepo{})

	resp, err := svc.Search(context.Background(), "jo", 10)
	require.NoError(t, err)
	assert.Equal(t, "jo", resp.Query)
	assert.Equal(t, 0, resp.TotalResults)
	assert.Empty(t, resp.Results)
}

func TestSearchEchoesTrimmedQuery(t *testing.T) {
	svc := NewGlobalSearchService(&fakeSearchRepo{})

	resp, err := svc.Search(context.Background(), "  john  ", 10)
	require.NoError(t, err)
	assert.Equal(t, "john", resp.Query)
}

func TestSearchResultsSortedByDescendingScore(t *testing.T) {
	john := newContact("John", "Doe", sp("Acme Corp"), sp("Engineer"), nil)
	repo := &fakeSearchRepo{
		contacts: []dbmodels.Contact{john},
		notes: []dbmodels.Note{
			newNote(john, "Yesterday I discussed the roadmap with John over coffee."),
		},
	}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "john", 10)
	require.NoError(t, err)

	require.Equal(t, 2, resp.TotalResults)
	require.Len(t, resp.Results, resp.TotalResults)
	for i := 0; i < len(resp.Results)-1; i++ {
		assert.GreaterOrEqual(t, resp.Results[i].RelevanceScore, resp.Results[i+1].RelevanceScore)
	}

	// Name prefix match (80) outranks a content-only note match (30).
	assert.Equal(t, models.EntityContact, resp.Results[0].EntityType)
	assert.Equal(t, "John Doe", resp.Results[0].Title)
	assert.Equal(t, models.EntityNote, resp.Results[1].EntityType)
}

func TestSearchTiesKeepEntityTypeOrder(t *testing.T) {
	contact := newContact("Jane", "Smith", nil, nil, nil)
	notes := sp("followed up about the conference budget")
	repo := &fakeSearchRepo{
		notes: []dbmodels.Note{newNote(contact, "conference planning kickoff")},
		interactions: []dbmodels.Interaction{{
			ID:        uuid.New(),
			Type:      dbmodels.InteractionCall,
			Notes:     notes,
			Date:      time.Now(),
			ContactID: contact.ID,
			Contact:   &contact,
			CreatedAt: time.Now(),
		}},
	}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "conference", 10)
	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalResults)

	// Both score 30 (secondary-field contains); notes merge before
	// interactions, and the stable sort keeps that order.
	assert.Equal(t, resp.Results[0].RelevanceScore, resp.Results[1].RelevanceScore)
	assert.Equal(t, models.EntityNote, resp.Results[0].EntityType)
	assert.Equal(t, models.EntityInteraction, resp.Results[1].EntityType)
}

func TestSearchLimitCapsPerEntityNotGlobally(t *testing.T) {
	repo := &fakeSearchRepo{
		contacts: []dbmodels.Contact{
			newContact("John", "Adams", nil, nil, nil),
			newContact("John", "Baker", nil, nil, nil),
			newContact("John", "Carter", nil, nil, nil),
		},
		notes: []dbmodels.Note{
			newNote(newContact("John", "Adams", nil, nil, nil), "note mentioning john"),
			newNote(newContact("John", "Baker", nil, nil, nil), "another john note"),
		},
	}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "john", 2)
	require.NoError(t, err)

	var contactHits int
	for _, r := range resp.Results {
		if r.EntityType == models.EntityContact {
			contactHits++
		}
	}
	assert.Equal(t, 2, contactHits)
	// The merged total exceeds the per-entity cap.
	assert.Equal(t, 4, resp.TotalResults)
}

func TestSearchMatcherFailureFailsWholeCall(t *testing.T) {
	repo := &fakeSearchRepo{
		contacts: []dbmodels.Contact{newContact("John", "Doe", nil, nil, nil)},
		notesErr: assert.AnError,
	}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "john", 10)
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.Nil(t, resp)
}

// siblingRepo fails the contact query immediately and records the context
// state the note query observes.
type siblingRepo struct {
	fakeSearchRepo
	mu      sync.Mutex
	ctxErrs []error
}

func (r *siblingRepo) FindContacts(context.Context, string, int) ([]dbmodels.Contact, error) {
	return nil, assert.AnError
}

func (r *siblingRepo) FindNotes(ctx context.Context, _ string, _ int) ([]dbmodels.Note, error) {
	// Let the failing contact query return first.
	time.Sleep(10 * time.Millisecond)
	r.mu.Lock()
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	r.mu.Unlock()
	return nil, nil
}

func TestSearchSiblingQueriesRunToCompletionOnFailure(t *testing.T) {
	repo := &siblingRepo{}
	svc := NewGlobalSearchService(repo)

	_, err := svc.Search(context.Background(), "john", 10)
	assert.ErrorIs(t, err, ErrSearchFailed)

	// One sub-query failing must not cancel the others mid-flight.
	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.ctxErrs, 1)
	assert.NoError(t, repo.ctxErrs[0])
}

func TestSearchContactRefPresenceRules(t *testing.T) {
	contact := newContact("John", "Doe", nil, nil, nil)
	desc := sp("call john about the offer")
	repo := &fakeSearchRepo{
		contacts: []dbmodels.Contact{contact},
		notes:    []dbmodels.Note{newNote(contact, "spoke to john")},
		interactions: []dbmodels.Interaction{{
			ID:        uuid.New(),
			Type:      dbmodels.InteractionMeeting,
			Subject:   sp("john catch-up"),
			Date:      time.Now(),
			ContactID: contact.ID,
			Contact:   &contact,
			CreatedAt: time.Now(),
		}},
		reminders: []dbmodels.Reminder{{
			ID:          uuid.New(),
			Title:       "Follow up with John",
			Description: desc,
			DueDate:     time.Now().Add(24 * time.Hour),
			ContactID:   contact.ID,
			Contact:     &contact,
			CreatedAt:   time.Now(),
		}},
	}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "john", 10)
	require.NoError(t, err)
	require.Equal(t, 4, resp.TotalResults)

	for _, r := range resp.Results {
		if r.EntityType == models.EntityContact {
			assert.Nil(t, r.ContactID, "contact hits carry no contact ref")
			assert.Nil(t, r.ContactName)
			continue
		}
		require.NotNil(t, r.ContactID, "%s hit missing contactId", r.EntityType)
		require.NotNil(t, r.ContactName, "%s hit missing contactName", r.EntityType)
		assert.Equal(t, contact.ID, *r.ContactID)
		assert.Equal(t, "John Doe", *r.ContactName)
	}
}

func TestSearchContactPreviewRules(t *testing.T) {
	full := newContact("John", "Doe", sp("Acme Corp"), sp("Engineer"), sp("john@acme.test"))
	bare := newContact("Johnny", "Doe", nil, nil, nil)
	repo := &fakeSearchRepo{contacts: []dbmodels.Contact{full, bare}}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "john", 10)
	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalResults)

	previews := map[string]string{}
	for _, r := range resp.Results {
		previews[r.Title] = r.Preview
	}
	assert.Equal(t, "Acme Corp • Engineer • john@acme.test", previews["John Doe"])
	assert.Equal(t, "No additional details", previews["Johnny Doe"])
}

func TestSearchLongNotePreviewTruncated(t *testing.T) {
	contact := newContact("John", "Doe", nil, nil, nil)
	content := strings.Repeat("john talked about the quarterly plan ", 6) // > 200 chars
	repo := &fakeSearchRepo{notes: []dbmodels.Note{newNote(contact, content)}}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "john", 10)
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalResults)

	hit := resp.Results[0]
	assert.Equal(t, "Note for John Doe", hit.Title)
	assert.LessOrEqual(t, len(hit.Preview), PreviewMaxLength+3)
	assert.True(t, strings.HasSuffix(hit.Preview, "..."))
	// Notes never score through a primary field.
	assert.Equal(t, 30, hit.RelevanceScore)
}

func TestSearchInteractionFallbackTitleAndPreview(t *testing.T) {
	contact := newContact("Jane", "Smith", nil, nil, nil)
	when := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	repo := &fakeSearchRepo{
		interactions: []dbmodels.Interaction{{
			ID:        uuid.New(),
			Type:      dbmodels.InteractionCoffee,
			Location:  sp("Blue Bottle downtown"),
			Date:      when,
			ContactID: contact.ID,
			Contact:   &contact,
			CreatedAt: time.Now(),
		}},
	}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "blue bottle", 10)
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalResults)

	hit := resp.Results[0]
	assert.Equal(t, "COFFEE with Jane Smith", hit.Title)
	assert.Equal(t, "COFFEE on Mar 14, 2026", hit.Preview)
	// Location matched the store filter but is neither primary nor
	// secondary, so the score stays zero.
	assert.Equal(t, 0, hit.RelevanceScore)
}

func TestSearchReminderStatusPreviews(t *testing.T) {
	contact := newContact("Jane", "Smith", nil, nil, nil)
	due := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeSearchRepo{
		reminders: []dbmodels.Reminder{
			{
				ID:          uuid.New(),
				Title:       "Send birthday card",
				DueDate:     due,
				IsCompleted: false,
				ContactID:   contact.ID,
				Contact:     &contact,
				CreatedAt:   time.Now(),
			},
			{
				ID:          uuid.New(),
				Title:       "Send thank-you email",
				DueDate:     due,
				IsCompleted: true,
				ContactID:   contact.ID,
				Contact:     &contact,
				CreatedAt:   time.Now(),
			},
		},
	}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "send", 10)
	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalResults)

	previews := map[string]string{}
	for _, r := range resp.Results {
		previews[r.Title] = r.Preview
	}
	assert.Equal(t, "Due Sep 1, 2026", previews["Send birthday card"])
	assert.Equal(t, "✓ Completed", previews["Send thank-you email"])
}

func TestSearchDefaultLimitApplied(t *testing.T) {
	var contacts []dbmodels.Contact
	for i := 0; i < 15; i++ {
		contacts = append(contacts, newContact("John", "Doe", nil, nil, nil))
	}
	repo := &fakeSearchRepo{contacts: contacts}
	svc := NewGlobalSearchService(repo)

	resp, err := svc.Search(context.Background(), "john", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, resp.TotalResults)
}
