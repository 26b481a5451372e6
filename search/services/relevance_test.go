package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRelevanceScoreTiers(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		primary   *string
		secondary *string
		want      int
	}{
		{"exact primary match", "john doe", strPtr("John Doe"), nil, 100},
		{"prefix primary match", "john", strPtr("John Doe"), nil, 80},
		{"contains primary match", "doe", strPtr("John Doe"), nil, 60},
		{"no primary match", "smith", strPtr("John Doe"), nil, 0},
		{"secondary match only", "acme", nil, strPtr("Works at Acme Corp"), 30},
		{"secondary no match", "acme", nil, strPtr("unrelated text"), 0},
		{"primary and secondary stack", "john", strPtr("John Doe"), strPtr("john's details"), 110},
		{"exact plus secondary", "john doe", strPtr("John Doe"), strPtr("met john doe yesterday"), 130},
		{"both absent", "anything", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelevanceScore(tt.query, tt.primary, tt.secondary))
		})
	}
}

func TestRelevanceScorePrimaryTiersAreExclusive(t *testing.T) {
	// An exact match is also a prefix and a substring; only the top
	// tier may count.
	got := RelevanceScore("meeting", strPtr("Meeting"), nil)
	assert.Equal(t, 100, got)

	got = RelevanceScore("meet", strPtr("Meeting notes"), nil)
	assert.Equal(t, 80, got)
}

func TestRelevanceScoreExactBeatsContains(t *testing.T) {
	exact := RelevanceScore("budget", strPtr("budget"), nil)
	contains := RelevanceScore("budget", strPtr("quarterly budget review"), nil)
	assert.Greater(t, exact, contains)
}

func TestRelevanceScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, 100, RelevanceScore("JOHN DOE", strPtr("john doe"), nil))
	assert.Equal(t, 30, RelevanceScore("Acme", nil, strPtr("works at ACME corp")))
}

func TestRelevanceScoreTrimsQuery(t *testing.T) {
	assert.Equal(t, 100, RelevanceScore("  john doe  ", strPtr("John Doe"), nil))
}
