// =============================================================================
// Roster Printer - File Name Sanitation
// =============================================================================

package render

import "strings"

// SafeFileName converts a document title into a name valid on common
// filesystems. Characters that are reserved on Windows or Unix are replaced
// with underscores rather than rejected, so a session key like "A/B" still
// prints; trailing dots and spaces are trimmed because Windows strips them
// silently. An empty or fully invalid title falls back to "roster".
func SafeFileName(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r < 0x20, strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	name := strings.TrimRight(b.String(), ". ")
	if name == "" {
		return "roster"
	}
	return name
}
