// Package slogobs implements observability.Provider on top of log/slog,
// turning spans and metric updates into structured log records so search
// calls can be traced without any external backend.
//
// [New] is the entry point. Output is tuned with [WithFormat], [WithLevel],
// [WithOutput], [WithColors], and [WithLogger], or via the
// NAVERGO_LOG_FORMAT and NAVERGO_LOG_LEVEL environment variables.
package slogobs
