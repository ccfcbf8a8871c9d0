package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Search Request Attributes ---

const (
	// AttrSearchType is the search vertical being queried (e.g., "news", "blog")
	AttrSearchType = "search.type"

	// AttrSearchQuery is the raw query string before URL encoding
	AttrSearchQuery = "search.query"

	// AttrSearchDisplay is the number of results requested per call
	AttrSearchDisplay = "search.display"

	// AttrSearchStart is the 1-based offset of the first result
	AttrSearchStart = "search.start"

	// AttrSearchSort is the sort order ("sim" or "date")
	AttrSearchSort = "search.sort"

	// AttrSearchResultCount is the number of items returned in the response
	AttrSearchResultCount = "search.result.count"

	// AttrSearchTotalResults is the total number of matches reported by the API
	AttrSearchTotalResults = "search.total_results"
)

// --- Tool Execution Attributes ---

const (
	// AttrToolName is the name of the tool being executed
	AttrToolName = "tool.name"

	// AttrToolDescription is the tool description
	AttrToolDescription = "tool.description"

	// AttrToolInput is the tool input (serialized)
	AttrToolInput = "tool.input"

	// AttrToolOutput is the tool output (serialized)
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the execution duration
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message if tool execution failed
	AttrToolError = "tool.error"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrErrorType is the error type/class
	AttrErrorType = "error.type"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanSearchRequest is the span name for search API requests
	SpanSearchRequest = "search.request"

	// SpanToolExecution is the span name for tool executions
	SpanToolExecution = "tool.execution"
)

// --- Event Names ---

const (
	// EventSearchRequestStart marks the start of a search API request
	EventSearchRequestStart = "search.request.start"

	// EventSearchRequestEnd marks the end of a search API request
	EventSearchRequestEnd = "search.request.end"

	// EventToolExecutionStart marks the start of tool execution
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of tool execution
	EventToolExecutionEnd = "tool.execution.end"

	// EventHTTPResponseReceived marks when the HTTP response has been read
	EventHTTPResponseReceived = "http.response.received"
)

// --- Metric Names ---

const (
	// MetricSearchRequestCount is the counter for search API requests
	MetricSearchRequestCount = "navergo.search.request.count"

	// MetricSearchRequestDuration is the histogram for search request duration
	MetricSearchRequestDuration = "navergo.search.request.duration"

	// MetricSearchErrorCount is the counter for failed search requests
	MetricSearchErrorCount = "navergo.search.error.count"

	// MetricToolExecutionCount is the counter for tool executions
	MetricToolExecutionCount = "navergo.tool.execution.count"
)
