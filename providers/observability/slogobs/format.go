package slogobs

import (
	"os"
	"strings"
)

// Format selects how the handler renders log records.
type Format string

const (
	// FormatCompact renders one line per record with JSON attributes.
	// This is the default.
	//
	//	2026-01-02 15:04:05  INFO Message → {"key":"value"}
	FormatCompact Format = "compact"

	// FormatPretty renders a header line plus one indented branch per
	// attribute, for reading logs interactively.
	//
	//	2026-01-02 15:04:05 🟢 INFO   Message
	//	                   └─ key: value
	FormatPretty Format = "pretty"

	// FormatJSON renders one JSON object per line, for log aggregation.
	//
	//	{"time":"2026-01-02T15:04:05","level":"INFO","msg":"Message","key":"value"}
	FormatJSON Format = "json"
)

// ParseFormat maps a string to a Format, ignoring case and surrounding
// whitespace. Unknown values fall back to FormatCompact.
func ParseFormat(s string) Format {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "compact":
		return FormatCompact
	case "pretty":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return FormatCompact
	}
}

// GetFormatFromEnv reads the format from NAVERGO_LOG_FORMAT, falling back
// to LOG_FORMAT and then to FormatCompact.
func GetFormatFromEnv() Format {
	if format := os.Getenv("NAVERGO_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return FormatCompact
}

func (f Format) String() string {
	return string(f)
}
