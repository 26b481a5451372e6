package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"personal-crm-backend/config"
	dbmodels "personal-crm-backend/db/models"
	"personal-crm-backend/search/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSearchRepo struct {
	contacts []dbmodels.Contact
	err      error
}

func (s *stubSearchRepo) FindContacts(_ context.Context, _ string, limit int) ([]dbmodels.Contact, error) {
	if len(s.contacts) > limit {
		return s.contacts[:limit], s.err
	}
	return s.contacts, s.err
}

func (s *stubSearchRepo) FindNotes(context.Context, string, int) ([]dbmodels.Note, error) {
	return nil, s.err
}

func (s *stubSearchRepo) FindInteractions(context.Context, string, int) ([]dbmodels.Interaction, error) {
	return nil, s.err
}

func (s *stubSearchRepo) FindReminders(context.Context, string, int) ([]dbmodels.Reminder, error) {
	return nil, s.err
}

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Query        string `json:"query"`
		TotalResults int    `json:"totalResults"`
		Results      []struct {
			EntityType     string `json:"entityType"`
			Title          string `json:"title"`
			RelevanceScore int    `json:"relevanceScore"`
		} `json:"results"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func newTestApp(repo *stubSearchRepo) *fiber.App {
	config.Logger = zap.NewNop()

	app := fiber.New()
	controller := NewSearchController(services.NewGlobalSearchService(repo))
	app.Get("/api/search", controller.GlobalSearchController)
	return app
}

func doSearch(t *testing.T, app *fiber.App, target string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestGlobalSearchMissingQuery(t *testing.T) {
	app := newTestApp(&stubSearchRepo{})

	status, env := doSearch(t, app, "/api/search")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "MISSING_QUERY", env.Error.Code)

	status, env = doSearch(t, app, "/api/search?q=")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "MISSING_QUERY", env.Error.Code)
}

func TestGlobalSearchInvalidLimit(t *testing.T) {
	app := newTestApp(&stubSearchRepo{})

	for _, limit := range []string{"abc", "0", "-3", "51", "1.5"} {
		status, env := doSearch(t, app, "/api/search?q=john&limit="+limit)
		assert.Equal(t, fiber.StatusBadRequest, status, "limit %q", limit)
		assert.Equal(t, "INVALID_LIMIT", env.Error.Code, "limit %q", limit)
	}
}

func TestGlobalSearchQueryTooShort(t *testing.T) {
	app := newTestApp(&stubSearchRepo{})

	// Non-empty at the boundary, under two characters after trimming.
	for _, q := range []string{"j", "%20j%20", "%20%20"} {
		status, env := doSearch(t, app, "/api/search?q="+q)
		assert.Equal(t, fiber.StatusBadRequest, status, "q %q", q)
		assert.Equal(t, "INVALID_QUERY", env.Error.Code, "q %q", q)
	}
}

func TestGlobalSearchRepoFailure(t *testing.T) {
	app := newTestApp(&stubSearchRepo{err: assert.AnError})

	status, env := doSearch(t, app, "/api/search?q=john")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.Equal(t, "SEARCH_ERROR", env.Error.Code)
	assert.Empty(t, env.Data.Results)
}

func TestGlobalSearchHappyPath(t *testing.T) {
	app := newTestApp(&stubSearchRepo{
		contacts: []dbmodels.Contact{{
			ID:        uuid.New(),
			FirstName: "John",
			LastName:  "Doe",
			CreatedAt: time.Now(),
		}},
	})

	status, env := doSearch(t, app, "/api/search?q=%20john%20&limit=5")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "john", env.Data.Query)
	require.Equal(t, 1, env.Data.TotalResults)
	require.Len(t, env.Data.Results, 1)
	assert.Equal(t, "contact", env.Data.Results[0].EntityType)
	assert.Equal(t, "John Doe", env.Data.Results[0].Title)
	assert.Equal(t, 80, env.Data.Results[0].RelevanceScore)
}
