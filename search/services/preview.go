package services

import "strings"

// PreviewMaxLength bounds search result previews before the ellipsis.
const PreviewMaxLength = 100

// TruncatePreview cuts text to at most maxLength characters, preferring
// the last word boundary inside the window, and appends "...". Text at
// or under the limit is returned unchanged, so the output never exceeds
// maxLength+3 characters. Lengths count runes, not bytes, so the cut
// never splits a multi-byte character.
func TruncatePreview(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	cut := string(runes[:maxLength])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
