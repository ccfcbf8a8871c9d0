// Package naversearch provides tool adapters for the Naver Search API,
// enabling LLM agents to search Korean news, blogs, web documents, and books.
// One parametrized entry point, [NewNaverSearchTool], covers every vertical;
// [NewNaverNewsSearchTool], [NewNaverBlogSearchTool], [NewNaverWebSearchTool],
// and [NewNaverBookSearchTool] are convenience constructors for the common
// cases. All variants share the same Input and Output shapes and differ only
// in the advertised name, description, and metrics. The tools require a
// configured naver.Client; credentials come from the composition root, never
// from the tool itself.
package naversearch
