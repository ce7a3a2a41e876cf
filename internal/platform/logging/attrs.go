package logging

import (
	"log/slog"
	"unicode/utf8"
)

// maxPreviewRunes is how much of a caller-supplied text Text keeps.
const maxPreviewRunes = 64

// Text returns a group attribute describing a caller-supplied text: its length
// in bytes and a preview cut to maxPreviewRunes runes.
func Text(key, text string) slog.Attr {
	return slog.Group(key,
		slog.Int("bytes", len(text)),
		slog.String("preview", preview(text)),
	)
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= maxPreviewRunes {
		return text
	}

	n := 0
	for i := range text {
		if n == maxPreviewRunes {
			return text[:i] + "…"
		}
		n++
	}
	return text
}
