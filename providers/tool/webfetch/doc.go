// Package webfetch provides a navergo tool that fetches web pages over HTTP/HTTPS
// and converts their HTML content into Markdown for consumption by language models.
// It is the natural companion to the search tools: a search returns links, this
// tool reads them.
//
// The main entry point is [NewWebFetchTool], which returns a ready-to-use
// [tool.Tool] that can be registered in a [tool.Catalog]. The underlying fetch
// logic is also available directly through the [Fetch] function.
//
// URL normalisation (including the desktop-to-mobile rewrite for Naver blog
// links), redirect following, response-size limiting, page-title extraction,
// and context-aware cancellation are handled automatically.
package webfetch
