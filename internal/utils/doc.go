// Package utils holds the small helpers shared across the navergo
// internals: [CloseWithLog] for deferred response-body closing and
// [TruncateString] for bounding strings bound for log attributes and
// model-facing summaries.
package utils
