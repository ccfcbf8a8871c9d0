package naver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/leofalp/navergo/providers/observability"
)

// emptyEnvelope is a valid zero-result response body.
const emptyEnvelope = `{"lastBuildDate":"Mon, 25 Aug 2025 09:00:00 +0900","total":0,"start":1,"display":10,"items":[]}`

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(NewCredentials("test-id", "test-secret"), WithBaseURL(baseURL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

// TestNewClient tests fail-fast construction on missing credentials
func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		creds       Credentials
		expectError bool
	}{
		{"ValidCredentials", NewCredentials("id", "secret"), false},
		{"MissingID", NewCredentials("", "secret"), true},
		{"MissingSecret", NewCredentials("id", ""), true},
		{"ZeroValue", Credentials{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.creds)
			if tt.expectError {
				if !errors.Is(err, ErrMissingCredentials) {
					t.Errorf("NewClient() error = %v, want ErrMissingCredentials", err)
				}
				if client != nil {
					t.Error("NewClient() should return a nil client on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}
			if client == nil {
				t.Fatal("NewClient() returned nil client")
			}
		})
	}
}

// TestNewClient_Options tests construction options
func TestNewClient_Options(t *testing.T) {
	creds := NewCredentials("id", "secret")

	t.Run("Defaults", func(t *testing.T) {
		client, err := NewClient(creds)
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		if client.baseURL != DefaultBaseURL {
			t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
		}
		if client.syncClient.Timeout != DefaultTimeout {
			t.Errorf("sync client timeout = %v, want %v", client.syncClient.Timeout, DefaultTimeout)
		}
		if client.ctxClient.Timeout != 0 {
			t.Errorf("context client timeout = %v, want none", client.ctxClient.Timeout)
		}
	})

	t.Run("BaseURLTrailingSlash", func(t *testing.T) {
		client, err := NewClient(creds, WithBaseURL("https://example.com/v1/search/"))
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		if client.baseURL != "https://example.com/v1/search" {
			t.Errorf("baseURL = %q, want trailing slash trimmed", client.baseURL)
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		client, err := NewClient(creds, WithTimeout(3*time.Second))
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		if client.syncClient.Timeout != 3*time.Second {
			t.Errorf("sync client timeout = %v, want 3s", client.syncClient.Timeout)
		}
	})

	t.Run("CustomHTTPClient", func(t *testing.T) {
		hc := &http.Client{Timeout: time.Second}
		client, err := NewClient(creds, WithHTTPClient(hc))
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		if client.syncClient != hc || client.ctxClient != hc {
			t.Error("WithHTTPClient should drive both transport paths")
		}
	})
}

// TestSearch_RequestShape tests the path, parameters, and headers of the
// outgoing request for every vertical
func TestSearch_RequestShape(t *testing.T) {
	tests := []struct {
		searchType   SearchType
		expectedPath string
	}{
		{SearchNews, "/news.json"},
		{SearchBlog, "/blog.json"},
		{SearchWeb, "/webkr.json"},
		{SearchBook, "/book.json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.searchType), func(t *testing.T) {
			var gotPath, gotRawQuery, gotID, gotSecret string
			var gotParams url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotRawQuery = r.URL.RawQuery
				gotParams = r.URL.Query()
				gotID = r.Header.Get("X-Naver-Client-Id")
				gotSecret = r.Header.Get("X-Naver-Client-Secret")
				fmt.Fprint(w, emptyEnvelope)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			if _, err := client.RawResults("서울 맛집", WithSearchType(tt.searchType)); err != nil {
				t.Fatalf("RawResults() error = %v", err)
			}

			if gotPath != tt.expectedPath {
				t.Errorf("path = %q, want %q", gotPath, tt.expectedPath)
			}
			if gotParams.Get("query") != "서울 맛집" {
				t.Errorf("query = %q, want %q", gotParams.Get("query"), "서울 맛집")
			}
			if strings.Contains(gotRawQuery, "서울") {
				t.Errorf("raw query %q should carry the query percent-encoded", gotRawQuery)
			}
			if gotParams.Get("display") != "10" || gotParams.Get("start") != "1" || gotParams.Get("sort") != "sim" {
				t.Errorf("defaults = display %q start %q sort %q, want 10 1 sim",
					gotParams.Get("display"), gotParams.Get("start"), gotParams.Get("sort"))
			}
			if gotID != "test-id" || gotSecret != "test-secret" {
				t.Errorf("credential headers = %q / %q, want test-id / test-secret", gotID, gotSecret)
			}
		})
	}
}

// TestSearch_ParameterClamping tests that display and start stay inside the
// ranges the API accepts
func TestSearch_ParameterClamping(t *testing.T) {
	tests := []struct {
		name    string
		opts    []SearchOption
		display string
		start   string
	}{
		{"DisplayTooHigh", []SearchOption{WithDisplay(500)}, "100", "1"},
		{"DisplayZero", []SearchOption{WithDisplay(0)}, "10", "1"},
		{"DisplayNegative", []SearchOption{WithDisplay(-3)}, "10", "1"},
		{"StartTooHigh", []SearchOption{WithStart(5000)}, "10", "1000"},
		{"StartZero", []SearchOption{WithStart(0)}, "10", "1"},
		{"UpperBoundsPass", []SearchOption{WithDisplay(100), WithStart(1000)}, "100", "1000"},
		{"SortDate", []SearchOption{WithSort(SortDate)}, "10", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotParams url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotParams = r.URL.Query()
				fmt.Fprint(w, emptyEnvelope)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			if _, err := client.RawResults("seoul", tt.opts...); err != nil {
				t.Fatalf("RawResults() error = %v", err)
			}

			if gotParams.Get("display") != tt.display {
				t.Errorf("display = %q, want %q", gotParams.Get("display"), tt.display)
			}
			if gotParams.Get("start") != tt.start {
				t.Errorf("start = %q, want %q", gotParams.Get("start"), tt.start)
			}
		})
	}
}

// TestSearch_ValidationBeforeNetwork tests that invalid input never reaches
// the server
func TestSearch_ValidationBeforeNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	t.Run("EmptyQuery", func(t *testing.T) {
		if _, err := client.RawResults(""); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("RawResults(\"\") error = %v, want ErrEmptyQuery", err)
		}
	})

	t.Run("BlankQuery", func(t *testing.T) {
		if _, err := client.Results("   "); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Results(blank) error = %v, want ErrEmptyQuery", err)
		}
	})

	t.Run("EmptyQueryContext", func(t *testing.T) {
		if _, err := client.RawResultsContext(context.Background(), ""); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("RawResultsContext(\"\") error = %v, want ErrEmptyQuery", err)
		}
	})

	t.Run("InvalidSort", func(t *testing.T) {
		_, err := client.RawResults("seoul", WithSort("relevance"))
		if !errors.Is(err, ErrInvalidSort) {
			t.Errorf("RawResults() error = %v, want ErrInvalidSort", err)
		}
		if err != nil && !strings.Contains(err.Error(), "relevance") {
			t.Errorf("error %q should name the rejected value", err.Error())
		}
	})
}

// TestRawResults_StatusError tests the code-only error of the blocking path
func TestRawResults_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorMessage":"Incorrect query request","errorCode":"SE01"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.RawResults("seoul")
	if err == nil {
		t.Fatal("RawResults() should fail on a 400 response")
	}
	if err.Error() != "Error Code: 400" {
		t.Errorf("error = %q, want %q", err.Error(), "Error Code: 400")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatal("errors.As() should extract a StatusError")
	}
	if statusErr.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want %d", statusErr.Code, http.StatusBadRequest)
	}
	if statusErr.Reason != "" {
		t.Errorf("Reason = %q, want empty on the blocking path", statusErr.Reason)
	}
}

// TestRawResultsContext_StatusError tests the code-and-reason error of the
// context path
func TestRawResultsContext_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.RawResultsContext(context.Background(), "seoul")
	if err == nil {
		t.Fatal("RawResultsContext() should fail on a 401 response")
	}
	if err.Error() != "Error 401: Unauthorized" {
		t.Errorf("error = %q, want %q", err.Error(), "Error 401: Unauthorized")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatal("errors.As() should extract a StatusError")
	}
	if statusErr.Code != http.StatusUnauthorized || statusErr.Reason != "Unauthorized" {
		t.Errorf("StatusError = {%d, %q}, want {401, Unauthorized}", statusErr.Code, statusErr.Reason)
	}
}

// TestSearch_InvalidJSON tests decode failures of a 200 response
func TestSearch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>definitely not json</html>")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	t.Run("Blocking", func(t *testing.T) {
		if _, err := client.RawResults("seoul"); !errors.Is(err, ErrInvalidResponse) {
			t.Errorf("RawResults() error = %v, want ErrInvalidResponse", err)
		}
	})

	t.Run("Context", func(t *testing.T) {
		if _, err := client.RawResultsContext(context.Background(), "seoul"); !errors.Is(err, ErrInvalidResponse) {
			t.Errorf("RawResultsContext() error = %v, want ErrInvalidResponse", err)
		}
	})
}

// TestRawResultsContext_Cancelled tests that a cancelled context aborts the call
func TestRawResultsContext_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyEnvelope)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.RawResultsContext(ctx, "seoul")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RawResultsContext() error = %v, want context.Canceled in the chain", err)
	}
}

// TestRawResults_KeepsRawItems tests that the raw path leaves items untouched
func TestRawResults_KeepsRawItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"lastBuildDate": "Mon, 25 Aug 2025 09:00:00 +0900",
			"total": 523,
			"start": 1,
			"display": 1,
			"items": [{
				"title": "Seoul <b>food</b>",
				"originallink": "https://original.example.com/1",
				"link": "https://news.example.com/1",
				"description": "All about <b>food</b>",
				"pubDate": "Mon, 25 Aug 2025 08:00:00 +0900"
			}]
		}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.RawResults("seoul food")
	if err != nil {
		t.Fatalf("RawResults() error = %v", err)
	}

	if resp.Total != 523 {
		t.Errorf("Total = %d, want 523", resp.Total)
	}
	if resp.LastBuildDate == "" {
		t.Error("LastBuildDate should be decoded")
	}
	if len(resp.Items) != 1 {
		t.Fatalf("Items length = %d, want 1", len(resp.Items))
	}
	if resp.Items[0]["title"] != "Seoul <b>food</b>" {
		t.Errorf("raw title = %q, want tags kept", resp.Items[0]["title"])
	}
	if resp.Items[0]["originallink"] != "https://original.example.com/1" {
		t.Errorf("raw originallink = %q, want kept", resp.Items[0]["originallink"])
	}
}

// TestResults_CleansItems tests the full search-then-clean flow
func TestResults_CleansItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"total": 2,
			"start": 1,
			"display": 2,
			"items": [
				{
					"title": "Seoul <b>food</b> news",
					"originallink": "https://original.example.com/1",
					"link": "https://news.example.com/1",
					"description": "All about <b>food</b>",
					"pubDate": "Mon, 25 Aug 2025 08:00:00 +0900"
				},
				{
					"title": "Second <b>item</b>",
					"originallink": "https://original.example.com/2",
					"link": "https://news.example.com/2",
					"description": "More <b>news</b>",
					"pubDate": "Sun, 24 Aug 2025 08:00:00 +0900"
				}
			]
		}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	results, err := client.Results("seoul food")
	if err != nil {
		t.Fatalf("Results() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Results() returned %d items, want 2", len(results))
	}
	if results[0]["title"] != "Seoul food news" {
		t.Errorf("title = %q, want tags stripped", results[0]["title"])
	}
	if results[0]["description"] != "All about food" {
		t.Errorf("description = %q, want tags stripped", results[0]["description"])
	}
	if results[0]["pubDate"] != "Mon, 25 Aug 2025 08:00:00 +0900" {
		t.Errorf("pubDate = %q, want kept", results[0]["pubDate"])
	}
	if _, ok := results[0]["originallink"]; ok {
		t.Error("originallink should be dropped by cleaning")
	}
	if results[1]["title"] != "Second item" {
		t.Errorf("second title = %q, want order preserved", results[1]["title"])
	}
}

// TestResultsContext_EmptyItems tests that zero results yield a usable slice
func TestResultsContext_EmptyItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyEnvelope)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	results, err := client.ResultsContext(context.Background(), "no matches expected")
	if err != nil {
		t.Fatalf("ResultsContext() error = %v", err)
	}
	if results == nil {
		t.Error("ResultsContext() should never return a nil slice on success")
	}
	if len(results) != 0 {
		t.Errorf("ResultsContext() returned %d items, want 0", len(results))
	}
}

// recordingSpan captures span calls for assertions.
type recordingSpan struct {
	mu     sync.Mutex
	events []string
	errs   []error
}

func (s *recordingSpan) End()                                       {}
func (s *recordingSpan) SetAttributes(...observability.Attribute)   {}
func (s *recordingSpan) SetStatus(observability.StatusCode, string) {}
func (s *recordingSpan) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}
func (s *recordingSpan) AddEvent(name string, _ ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, name)
}

// TestRawResultsContext_SpanEvents tests the request lifecycle events
func TestRawResultsContext_SpanEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyEnvelope)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	span := &recordingSpan{}
	ctx := observability.ContextWithSpan(context.Background(), span)

	if _, err := client.RawResultsContext(ctx, "seoul"); err != nil {
		t.Fatalf("RawResultsContext() error = %v", err)
	}

	expected := []string{
		observability.EventSearchRequestStart,
		observability.EventHTTPResponseReceived,
		observability.EventSearchRequestEnd,
	}
	if !reflect.DeepEqual(span.events, expected) {
		t.Errorf("span events = %v, want %v", span.events, expected)
	}
	if len(span.errs) != 0 {
		t.Errorf("RecordError called %d times on success, want 0", len(span.errs))
	}
}

// TestRawResultsContext_SpanRecordsError tests error recording on failure
func TestRawResultsContext_SpanRecordsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	span := &recordingSpan{}
	ctx := observability.ContextWithSpan(context.Background(), span)

	if _, err := client.RawResultsContext(ctx, "seoul"); err == nil {
		t.Fatal("RawResultsContext() should fail on a 500 response")
	}

	if len(span.errs) != 1 {
		t.Fatalf("RecordError called %d times, want 1", len(span.errs))
	}
	var statusErr *StatusError
	if !errors.As(span.errs[0], &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Errorf("recorded error = %v, want StatusError with code 500", span.errs[0])
	}
	for _, event := range span.events {
		if event == observability.EventSearchRequestEnd {
			t.Error("end event should not fire on failure")
		}
	}
}

// recordingProvider counts metric updates for assertions.
type recordingProvider struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{counts: make(map[string]int64)}
}

func (p *recordingProvider) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	return ctx, &recordingSpan{}
}

func (p *recordingProvider) Counter(name string) observability.Counter {
	return recordingInstrument{p: p, name: name}
}

func (p *recordingProvider) Histogram(name string) observability.Histogram {
	return recordingInstrument{p: p, name: name}
}

func (p *recordingProvider) Trace(context.Context, string, ...observability.Attribute) {}
func (p *recordingProvider) Debug(context.Context, string, ...observability.Attribute) {}
func (p *recordingProvider) Info(context.Context, string, ...observability.Attribute)  {}
func (p *recordingProvider) Warn(context.Context, string, ...observability.Attribute)  {}
func (p *recordingProvider) Error(context.Context, string, ...observability.Attribute) {}

func (p *recordingProvider) bump(name string, delta int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.counts[name] += delta
}

func (p *recordingProvider) count(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[name]
}

// recordingInstrument feeds counter and histogram updates back to the provider.
type recordingInstrument struct {
	p    *recordingProvider
	name string
}

func (i recordingInstrument) Add(_ context.Context, value int64, _ ...observability.Attribute) {
	i.p.bump(i.name, value)
}

func (i recordingInstrument) Record(_ context.Context, _ float64, _ ...observability.Attribute) {
	i.p.bump(i.name, 1)
}

// TestRawResultsContext_Metrics tests counter and histogram updates
func TestRawResultsContext_Metrics(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, emptyEnvelope)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		provider := newRecordingProvider()
		ctx := observability.ContextWithObserver(context.Background(), provider)

		if _, err := client.RawResultsContext(ctx, "seoul"); err != nil {
			t.Fatalf("RawResultsContext() error = %v", err)
		}

		if got := provider.count(observability.MetricSearchRequestCount); got != 1 {
			t.Errorf("request count = %d, want 1", got)
		}
		if got := provider.count(observability.MetricSearchRequestDuration); got != 1 {
			t.Errorf("duration recordings = %d, want 1", got)
		}
		if got := provider.count(observability.MetricSearchErrorCount); got != 0 {
			t.Errorf("error count = %d, want 0", got)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		provider := newRecordingProvider()
		ctx := observability.ContextWithObserver(context.Background(), provider)

		if _, err := client.RawResultsContext(ctx, "seoul"); err == nil {
			t.Fatal("RawResultsContext() should fail on a 429 response")
		}

		if got := provider.count(observability.MetricSearchRequestCount); got != 1 {
			t.Errorf("request count = %d, want 1", got)
		}
		if got := provider.count(observability.MetricSearchErrorCount); got != 1 {
			t.Errorf("error count = %d, want 1", got)
		}
		if got := provider.count(observability.MetricSearchRequestDuration); got != 0 {
			t.Errorf("duration recordings = %d, want 0 on failure", got)
		}
	})
}

// TestStatusReason tests extraction of the status line text
func TestStatusReason(t *testing.T) {
	tests := []struct {
		status   string
		code     int
		expected string
	}{
		{"400 Bad Request", 400, "Bad Request"},
		{"429 Too Many Requests", 429, "Too Many Requests"},
		{"500", 500, "Internal Server Error"},
		{"", 404, "Not Found"},
	}

	for _, tt := range tests {
		resp := &http.Response{Status: tt.status, StatusCode: tt.code}
		if got := statusReason(resp); got != tt.expected {
			t.Errorf("statusReason(%q, %d) = %q, want %q", tt.status, tt.code, got, tt.expected)
		}
	}
}

// TestClient_ConcurrentSearches tests that one client handles parallel calls
func TestClient_ConcurrentSearches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyEnvelope)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.ResultsContext(context.Background(), "seoul"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent search failed: %v", err)
	}
}
