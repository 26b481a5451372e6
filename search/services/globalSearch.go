package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"personal-crm-backend/search/models"
	"personal-crm-backend/search/repositories"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLimit is the per-entity row cap applied when the caller
	// does not supply one.
	DefaultLimit = 10

	minQueryLength = 2
)

var (
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")
	ErrSearchFailed  = errors.New("search failed")
)

// GlobalSearchService fans a query out to the four entity matchers and
// merges their hits into one relevance-ordered response.
type GlobalSearchService struct {
	// Concatenation order on merge: contacts, notes, interactions,
	// reminders. Ties in score keep this order.
	matchers []entityMatcher
}

func NewGlobalSearchService(repo repositories.SearchRepository) *GlobalSearchService {
	return &GlobalSearchService{
		matchers: []entityMatcher{
			&contactMatcher{repo: repo},
			&noteMatcher{repo: repo},
			&interactionMatcher{repo: repo},
			&reminderMatcher{repo: repo},
		},
	}
}

// Search validates the query, runs all matchers concurrently and returns
// the merged, score-sorted response. limit caps each matcher's rows
// independently, so the merged total can exceed it. Any matcher failure
// fails the whole call; there are no partial results, but once issued the
// sub-queries always run to completion, never cancelled by a sibling.
func (s *GlobalSearchService) Search(ctx context.Context, query string, limit int) (*models.GlobalSearchResponse, error) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minQueryLength {
		return nil, ErrQueryTooShort
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	buckets := make([][]models.SearchResult, len(s.matchers))

	var g errgroup.Group
	for i, matcher := range s.matchers {
		g.Go(func() error {
			hits, err := matcher.Search(ctx, trimmed, limit)
			if err != nil {
				return err
			}
			buckets[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	results := make([]models.SearchResult, 0)
	for _, bucket := range buckets {
		results = append(results, bucket...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return &models.GlobalSearchResponse{
		Query:        trimmed,
		TotalResults: len(results),
		Results:      results,
	}, nil
}
