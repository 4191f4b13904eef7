// Package batch generates artifacts for ordered collections of payloads:
// one raster file per item, or one paginated document for the whole set.
package batch

import (
	"strings"

	"github.com/google/uuid"
)

// Item is one batch entry. The ID stays stable across edits so callers can
// track rows; it never appears in output filenames.
type Item struct {
	ID       uuid.UUID
	Payload  string
	NameHint string
}

// NewItem builds an Item with a fresh id.
func NewItem(payload, hint string) Item {
	return Item{ID: uuid.New(), Payload: payload, NameHint: hint}
}

// Filter returns the items eligible for export. Blank payloads are
// excluded from every pass but remain in the caller's collection.
func Filter(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Payload) != "" {
			out = append(out, it)
		}
	}
	return out
}

// Import parses the two-column "payload,filenameHint" format, one item per
// line. The first line is treated as a header and skipped iff it contains
// "text" or "url" case-insensitively. A single pair of double quotes per
// field is stripped; embedded commas or quotes are not supported.
func Import(input string) []Item {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	items := make([]Item, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i == 0 && isHeader(line) {
			continue
		}
		payload, hint := splitLine(line)
		if payload == "" {
			continue
		}
		items = append(items, NewItem(payload, hint))
	}
	return items
}

func isHeader(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "text") || strings.Contains(l, "url")
}

func splitLine(line string) (payload, hint string) {
	parts := strings.Split(line, ",")
	payload = unquote(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		hint = unquote(strings.TrimSpace(parts[1]))
	}
	return payload, hint
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
