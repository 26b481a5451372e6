package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncatePreviewIdentityUnderLimit(t *testing.T) {
	assert.Equal(t, "", TruncatePreview("", PreviewMaxLength))
	assert.Equal(t, "short note", TruncatePreview("short note", PreviewMaxLength))

	exactly := strings.Repeat("a", PreviewMaxLength)
	assert.Equal(t, exactly, TruncatePreview(exactly, PreviewMaxLength))
}

func TestTruncatePreviewCutsOnWordBoundary(t *testing.T) {
	text := strings.Repeat("word ", 40) // 200 chars
	got := TruncatePreview(text, PreviewMaxLength)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), PreviewMaxLength+3)
	// The cut must not split a word.
	trimmed := strings.TrimSuffix(got, "...")
	assert.True(t, strings.HasSuffix(trimmed, "word"))
}

func TestTruncatePreviewNoSpaceFallsBackToHardCut(t *testing.T) {
	text := strings.Repeat("x", 150)
	got := TruncatePreview(text, PreviewMaxLength)

	assert.Equal(t, strings.Repeat("x", PreviewMaxLength)+"...", got)
	assert.Len(t, got, PreviewMaxLength+3)
}

func TestTruncatePreviewCountsCharactersNotBytes(t *testing.T) {
	// A two-byte rune straddles the 100-byte mark; a byte-indexed cut
	// would split it and emit invalid UTF-8.
	text := strings.Repeat("a", 99) + "é" + strings.Repeat("b", 50)
	got := TruncatePreview(text, PreviewMaxLength)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 99)+"é...", got)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), PreviewMaxLength+3)
}

func TestTruncatePreviewMultibyteIdentityUnderLimit(t *testing.T) {
	// 100 characters but 200 bytes: still at the limit, returned whole.
	text := strings.Repeat("é", PreviewMaxLength)
	assert.Equal(t, text, TruncatePreview(text, PreviewMaxLength))
}

func TestTruncatePreviewBoundNeverExceeded(t *testing.T) {
	inputs := []string{
		strings.Repeat("lorem ipsum ", 30),
		strings.Repeat("y", 101),
		"a " + strings.Repeat("b", 200),
	}
	for _, in := range inputs {
		got := TruncatePreview(in, PreviewMaxLength)
		assert.LessOrEqual(t, len(got), PreviewMaxLength+3, "input %q", in)
	}
}
