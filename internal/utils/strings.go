package utils

import "fmt"

// DefaultMaxStringLength caps strings destined for log attributes and
// model-facing summaries when callers do not pick a limit themselves.
const DefaultMaxStringLength = 500

// TruncateString shortens s to at most maxLen bytes, marking the cut with
// the original length so a reader knows data was dropped. A zero or
// negative maxLen falls back to [DefaultMaxStringLength].
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}

// TruncateStringDefault is [TruncateString] with the default limit.
func TruncateStringDefault(s string) string {
	return TruncateString(s, DefaultMaxStringLength)
}
