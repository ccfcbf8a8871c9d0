package utils

import (
	"io"
	"log/slog"
)

// CloseWithLog closes c and logs a warning if the close fails. It is meant to
// be used with defer on HTTP response bodies, where a close error must not
// override the primary error returned by the surrounding function.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}
