package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/leofalp/navergo/internal/utils"
	"github.com/leofalp/navergo/providers/observability"
)

// SearchType selects the search vertical. The API exposes one endpoint per
// vertical, named "{type}.json" under the base URL.
type SearchType string

const (
	SearchNews SearchType = "news"
	SearchBlog SearchType = "blog"
	SearchWeb  SearchType = "webkr"
	SearchBook SearchType = "book"
)

// Sort is the result ordering. The API accepts exactly two values.
type Sort string

const (
	// SortSim orders by relevance (similarity).
	SortSim Sort = "sim"
	// SortDate orders by date, newest first.
	SortDate Sort = "date"
)

// Parameter bounds documented by the Naver Search API. Values outside these
// ranges are clamped rather than rejected.
const (
	DefaultDisplay = 10
	DefaultStart   = 1
	MaxDisplay     = 100
	MaxStart       = 1000
)

type searchConfig struct {
	searchType SearchType
	display    int
	start      int
	sort       Sort
}

// SearchOption tweaks a single search call. The zero configuration is a
// relevance-sorted news search returning the first 10 results.
type SearchOption func(*searchConfig)

// WithSearchType selects the vertical to query ("news", "blog", "webkr",
// "book"). The set is open so new verticals work without a code change.
func WithSearchType(t SearchType) SearchOption {
	return func(cfg *searchConfig) {
		cfg.searchType = t
	}
}

// WithDisplay sets how many results to return per call. Values are clamped
// to the API range 1..100; zero and negative fall back to the default.
func WithDisplay(n int) SearchOption {
	return func(cfg *searchConfig) {
		cfg.display = n
	}
}

// WithStart sets the 1-based offset of the first result, clamped to 1..1000.
func WithStart(n int) SearchOption {
	return func(cfg *searchConfig) {
		cfg.start = n
	}
}

// WithSort sets the result ordering, [SortSim] or [SortDate]. Any other
// value makes the call fail with [ErrInvalidSort] before the network is hit.
func WithSort(s Sort) SearchOption {
	return func(cfg *searchConfig) {
		cfg.sort = s
	}
}

// resolveSearchConfig applies opts over the defaults, clamps the numeric
// parameters into the documented API ranges, and validates the sort order.
func resolveSearchConfig(opts []SearchOption) (searchConfig, error) {
	cfg := searchConfig{
		searchType: SearchNews,
		display:    DefaultDisplay,
		start:      DefaultStart,
		sort:       SortSim,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.searchType == "" {
		cfg.searchType = SearchNews
	}
	if cfg.display <= 0 {
		cfg.display = DefaultDisplay
	} else if cfg.display > MaxDisplay {
		cfg.display = MaxDisplay
	}
	if cfg.start < 1 {
		cfg.start = DefaultStart
	} else if cfg.start > MaxStart {
		cfg.start = MaxStart
	}
	if cfg.sort == "" {
		cfg.sort = SortSim
	}
	if cfg.sort != SortSim && cfg.sort != SortDate {
		return cfg, fmt.Errorf("%w: %q (valid: %q, %q)", ErrInvalidSort, cfg.sort, SortSim, SortDate)
	}
	return cfg, nil
}

// Response is the decoded body of a successful search call, matching the
// JSON envelope the API returns for every vertical.
type Response struct {
	LastBuildDate string `json:"lastBuildDate,omitempty"`
	Total         int    `json:"total"`
	Start         int    `json:"start"`
	Display       int    `json:"display"`
	Items         []Item `json:"items"`
}

// Item is one search result. Verticals return different fields (news carries
// pubDate, blog carries bloggername, book carries author and isbn), so items
// decode as generic string maps; [CleanResults] narrows them to the common
// shape.
type Item map[string]string

// newSearchRequest builds the GET request for one search call. It rejects
// blank queries with [ErrEmptyQuery] before any network activity and attaches
// the credential headers the API authenticates with.
func (c *Client) newSearchRequest(ctx context.Context, query string, cfg searchConfig) (*http.Request, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(cfg.display))
	params.Set("start", strconv.Itoa(cfg.start))
	params.Set("sort", string(cfg.sort))

	requestURL := fmt.Sprintf("%s/%s.json?%s", c.baseURL, cfg.searchType, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("X-Naver-Client-Id", c.creds.id)
	req.Header.Set("X-Naver-Client-Secret", c.creds.secret)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// RawResults runs a blocking search and returns the decoded response
// envelope with the items exactly as the API sent them. Non-200 responses
// come back as a [StatusError] carrying only the code.
func (c *Client) RawResults(query string, opts ...SearchOption) (*Response, error) {
	cfg, err := resolveSearchConfig(opts)
	if err != nil {
		return nil, err
	}
	req, err := c.newSearchRequest(context.Background(), query, cfg)
	if err != nil {
		return nil, err
	}

	resp, err := c.syncClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	return decodeResponse(body)
}

// RawResultsContext is the context-aware variant of [Client.RawResults].
// Cancellation and deadlines come from ctx. When a span or observer rides
// the context (see providers/observability) the call emits request start and
// end events, an error counter on failure, and a duration histogram; without
// them it is as silent as the blocking path. Non-200 responses come back as
// a [StatusError] carrying the code and the status line reason.
func (c *Client) RawResultsContext(ctx context.Context, query string, opts ...SearchOption) (*Response, error) {
	cfg, err := resolveSearchConfig(opts)
	if err != nil {
		return nil, err
	}
	req, err := c.newSearchRequest(ctx, query, cfg)
	if err != nil {
		return nil, err
	}

	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)
	started := time.Now()

	if span != nil {
		span.AddEvent(observability.EventSearchRequestStart,
			observability.String(observability.AttrSearchType, string(cfg.searchType)),
			observability.String(observability.AttrSearchQuery, query),
			observability.Int(observability.AttrSearchDisplay, cfg.display),
			observability.Int(observability.AttrSearchStart, cfg.start),
			observability.String(observability.AttrSearchSort, string(cfg.sort)),
		)
	}
	if observer != nil {
		observer.Counter(observability.MetricSearchRequestCount).Add(ctx, 1,
			observability.String(observability.AttrSearchType, string(cfg.searchType)))
	}

	resp, err := c.ctxClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error making request: %w", err)
		recordSearchError(ctx, span, observer, cfg, err)
		return nil, err
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{Code: resp.StatusCode, Reason: statusReason(resp)}
		recordSearchError(ctx, span, observer, cfg, statusErr)
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("error reading response: %w", err)
		recordSearchError(ctx, span, observer, cfg, err)
		return nil, err
	}
	if span != nil {
		span.AddEvent(observability.EventHTTPResponseReceived,
			observability.Int(observability.AttrHTTPStatusCode, resp.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(body)),
		)
	}
	if observer != nil {
		observer.Trace(ctx, "Search response body",
			observability.String(observability.AttrSearchType, string(cfg.searchType)),
			observability.String("body", utils.TruncateStringDefault(string(body))),
		)
	}

	result, err := decodeResponse(body)
	if err != nil {
		recordSearchError(ctx, span, observer, cfg, err)
		return nil, err
	}

	elapsed := time.Since(started)
	if span != nil {
		span.AddEvent(observability.EventSearchRequestEnd,
			observability.Duration(observability.AttrDuration, elapsed),
			observability.Int(observability.AttrSearchResultCount, len(result.Items)),
			observability.Int(observability.AttrSearchTotalResults, result.Total),
		)
	}
	if observer != nil {
		observer.Histogram(observability.MetricSearchRequestDuration).Record(ctx,
			float64(elapsed.Milliseconds()),
			observability.String(observability.AttrSearchType, string(cfg.searchType)))
	}
	return result, nil
}

// Results runs a blocking search and returns the items normalized by
// [CleanResults]: HTML tags stripped from titles and descriptions, only the
// common fields kept.
func (c *Client) Results(query string, opts ...SearchOption) ([]Item, error) {
	resp, err := c.RawResults(query, opts...)
	if err != nil {
		return nil, err
	}
	return CleanResults(resp.Items), nil
}

// ResultsContext is the context-aware variant of [Client.Results].
func (c *Client) ResultsContext(ctx context.Context, query string, opts ...SearchOption) ([]Item, error) {
	resp, err := c.RawResultsContext(ctx, query, opts...)
	if err != nil {
		return nil, err
	}
	return CleanResults(resp.Items), nil
}

func decodeResponse(body []byte) (*Response, error) {
	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &result, nil
}

// recordSearchError marks the span and bumps the error counter. Both sinks
// are optional; a nil span or observer is skipped.
func recordSearchError(ctx context.Context, span observability.Span, observer observability.Provider, cfg searchConfig, err error) {
	if span != nil {
		span.RecordError(err)
	}
	if observer != nil {
		observer.Counter(observability.MetricSearchErrorCount).Add(ctx, 1,
			observability.String(observability.AttrSearchType, string(cfg.searchType)),
			observability.Error(err),
		)
	}
}

// statusReason extracts the textual part of the HTTP status line ("Bad
// Request" from "400 Bad Request"), falling back to the standard text for
// the code when the server sent none.
func statusReason(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
