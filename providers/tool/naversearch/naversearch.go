package naversearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/navergo/core/cost"
	"github.com/leofalp/navergo/internal/utils"
	"github.com/leofalp/navergo/providers/naver"
	"github.com/leofalp/navergo/providers/tool"
)

// summaryLimit caps how many results the plain-text summary lists. The full
// Results slice always carries everything the API returned.
const summaryLimit = 10

// Input holds the query parameters forwarded to the Naver Search API.
// Query is the only required field.
type Input struct {
	Query   string `json:"query" jsonschema:"description=The search query string (Korean or English),required"`
	Display int    `json:"display,omitempty" jsonschema:"description=Number of results to return (default: 10 max: 100)"`
	Start   int    `json:"start,omitempty" jsonschema:"description=1-based offset of the first result for pagination (max: 1000)"`
	Sort    string `json:"sort,omitempty" jsonschema:"description=Result ordering: 'sim' for relevance (default) or 'date' for newest first"`
}

// Result holds one cleaned search result. PubDate is set for news results and
// Bloggername for blog results; the other verticals carry neither.
type Result struct {
	Title       string `json:"title" jsonschema:"description=Title of the result with HTML tags removed"`
	Link        string `json:"link" jsonschema:"description=URL of the result"`
	Description string `json:"description" jsonschema:"description=Description snippet with HTML tags removed"`
	PubDate     string `json:"pubDate,omitempty" jsonschema:"description=Publication date for news results"`
	Bloggername string `json:"bloggername,omitempty" jsonschema:"description=Author name for blog results"`
}

// Output holds a summarized view of a Naver search response, shaped for direct
// use by an LLM. It combines a human-readable Summary with the underlying
// Results slice so callers can inspect individual entries when needed.
type Output struct {
	Query   string   `json:"query" jsonschema:"description=The original search query"`
	Type    string   `json:"type" jsonschema:"description=The search vertical that was queried"`
	Total   int      `json:"total" jsonschema:"description=Total number of matches reported by the API"`
	Summary string   `json:"summary" jsonschema:"description=Formatted summary of search results"`
	Results []Result `json:"results" jsonschema:"description=List of search results"`
}

// variant binds the advertised name, description, and metrics of a tool to a
// search vertical. One parametrized constructor consults this table instead of
// one tool type per vertical.
type variant struct {
	name        string
	label       string
	description string
	metrics     cost.ToolMetrics
}

// Naver's search API is free up to the daily quota, so every variant carries
// zero cost; accuracy and latency differ slightly per vertical.
var variants = map[naver.SearchType]variant{
	naver.SearchNews: {
		name:        "NaverNewsSearch",
		label:       "news",
		description: "Search Korean news articles via the Naver Search API. Best for: current events in Korea, Korean company and market news, coverage of Korean public figures. Returns headlines with links, publication dates, and description snippets. Queries in Korean give the best results.",
		metrics: cost.ToolMetrics{
			Amount:                  0.0,
			Currency:                "USD",
			CostDescription:         "free tier (25,000 requests/day)",
			Accuracy:                0.85,
			AverageDurationInMillis: 400,
		},
	},
	naver.SearchBlog: {
		name:        "NaverBlogSearch",
		label:       "blog",
		description: "Search Korean blog posts via the Naver Search API. Best for: personal reviews, restaurant and travel recommendations, how-to posts, and opinions from Korean bloggers. Returns post titles with links, author names, and description snippets. Queries in Korean give the best results.",
		metrics: cost.ToolMetrics{
			Amount:                  0.0,
			Currency:                "USD",
			CostDescription:         "free tier (25,000 requests/day)",
			Accuracy:                0.80,
			AverageDurationInMillis: 400,
		},
	},
	naver.SearchWeb: {
		name:        "NaverWebSearch",
		label:       "web",
		description: "Search Korean web documents via the Naver Search API. Best for: general Korean-language web content that is neither news nor blogs. Returns page titles, links, and description snippets. Queries in Korean give the best results.",
		metrics: cost.ToolMetrics{
			Amount:                  0.0,
			Currency:                "USD",
			CostDescription:         "free tier (25,000 requests/day)",
			Accuracy:                0.78,
			AverageDurationInMillis: 450,
		},
	},
	naver.SearchBook: {
		name:        "NaverBookSearch",
		label:       "book",
		description: "Search books via the Naver Search API. Best for: finding Korean book titles, checking availability of translations, and book metadata. Returns titles, links, and description snippets. Queries in Korean give the best results.",
		metrics: cost.ToolMetrics{
			Amount:                  0.0,
			Currency:                "USD",
			CostDescription:         "free tier (25,000 requests/day)",
			Accuracy:                0.82,
			AverageDurationInMillis: 450,
		},
	},
}

// genericVariant advertises the parametrized tool when the vertical is unset
// or unknown; searches fall through to the client's news default.
var genericVariant = variant{
	name:        "NaverSearch",
	label:       "search",
	description: "Search Naver, Korea's dominant search engine. Covers news by default. Best for any Korea-related query; Korean-language queries give the best results.",
	metrics: cost.ToolMetrics{
		Amount:                  0.0,
		Currency:                "USD",
		CostDescription:         "free tier (25,000 requests/day)",
		Accuracy:                0.82,
		AverageDurationInMillis: 400,
	},
}

// NewNaverSearchTool returns a tool searching the given Naver vertical through
// client. The vertical picks the advertised name and description from the
// variant table (NaverNewsSearch, NaverBlogSearch, NaverWebSearch,
// NaverBookSearch); an empty or unknown vertical advertises the generic
// NaverSearch tool, which searches news.
func NewNaverSearchTool(client *naver.Client, searchType naver.SearchType) *tool.Tool[Input, Output] {
	v, ok := variants[searchType]
	if !ok {
		v = genericVariant
	}

	return tool.NewTool[Input, Output](
		v.name,
		search(client, searchType, v.label),
		tool.WithDescription(v.description),
		tool.WithMetrics(v.metrics),
	)
}

// NewNaverNewsSearchTool returns the news variant of [NewNaverSearchTool].
func NewNaverNewsSearchTool(client *naver.Client) *tool.Tool[Input, Output] {
	return NewNaverSearchTool(client, naver.SearchNews)
}

// NewNaverBlogSearchTool returns the blog variant of [NewNaverSearchTool].
func NewNaverBlogSearchTool(client *naver.Client) *tool.Tool[Input, Output] {
	return NewNaverSearchTool(client, naver.SearchBlog)
}

// NewNaverWebSearchTool returns the web document variant of [NewNaverSearchTool].
func NewNaverWebSearchTool(client *naver.Client) *tool.Tool[Input, Output] {
	return NewNaverSearchTool(client, naver.SearchWeb)
}

// NewNaverBookSearchTool returns the book variant of [NewNaverSearchTool].
func NewNaverBookSearchTool(client *naver.Client) *tool.Tool[Input, Output] {
	return NewNaverSearchTool(client, naver.SearchBook)
}

// search builds the tool function for one vertical. Typed errors from the
// client pass through untouched; turning them into model-facing text is the
// caller's job via tool.CallString.
func search(client *naver.Client, searchType naver.SearchType, label string) func(ctx context.Context, input Input) (Output, error) {
	return func(ctx context.Context, input Input) (Output, error) {
		resp, err := client.RawResultsContext(ctx, input.Query,
			naver.WithSearchType(searchType),
			naver.WithDisplay(input.Display),
			naver.WithStart(input.Start),
			naver.WithSort(naver.Sort(input.Sort)),
		)
		if err != nil {
			return Output{}, err
		}

		items := naver.CleanResults(resp.Items)
		results := make([]Result, 0, len(items))
		for _, item := range items {
			results = append(results, Result{
				Title:       item["title"],
				Link:        item["link"],
				Description: item["description"],
				PubDate:     item["pubDate"],
				Bloggername: item["bloggername"],
			})
		}

		output := Output{
			Query:   input.Query,
			Type:    label,
			Total:   resp.Total,
			Summary: buildSummary(input.Query, label, resp.Total, results),
			Results: results,
		}
		return output, nil
	}
}

// buildSummary renders the results as a numbered plain-text list for the
// model, listing at most summaryLimit entries.
func buildSummary(query, label string, total int, results []Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No %s results found for %q. Try a different query or another search vertical.", label, query)
	}

	summaryParts := []string{
		fmt.Sprintf("Found %d %s results for %q (total matches: %d):", len(results), label, query, total),
	}
	for i, result := range results {
		if i >= summaryLimit {
			summaryParts = append(summaryParts, fmt.Sprintf("\n... and %d more results", len(results)-summaryLimit))
			break
		}

		entry := fmt.Sprintf("\n%d. %s\n   URL: %s", i+1, result.Title, result.Link)
		if result.PubDate != "" {
			entry += fmt.Sprintf("\n   Published: %s", result.PubDate)
		}
		if result.Bloggername != "" {
			entry += fmt.Sprintf("\n   By: %s", result.Bloggername)
		}
		if result.Description != "" {
			entry += fmt.Sprintf("\n   %s", utils.TruncateString(result.Description, 200))
		}
		summaryParts = append(summaryParts, entry)
	}
	return strings.Join(summaryParts, "\n")
}
