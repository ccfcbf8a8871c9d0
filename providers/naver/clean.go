package naver

import "regexp"

// tagPattern matches HTML tags. The API wraps query matches in <b>..</b>
// inside titles and descriptions; only the tags are removed, entities such
// as &quot; are left as sent.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// CleanResults normalizes raw items to the shape shared by all verticals.
// Every cleaned item carries title, link, and description, with HTML tags
// stripped from title and description. pubDate and bloggername are copied
// only when the source item has them, so news items keep their date and blog
// items their author without inventing empty fields on the others. Input
// order is preserved and the result is never nil.
func CleanResults(items []Item) []Item {
	cleaned := make([]Item, 0, len(items))
	for _, item := range items {
		ci := Item{
			"title":       stripTags(item["title"]),
			"link":        item["link"],
			"description": stripTags(item["description"]),
		}
		if pubDate, ok := item["pubDate"]; ok {
			ci["pubDate"] = pubDate
		}
		if bloggername, ok := item["bloggername"]; ok {
			ci["bloggername"] = bloggername
		}
		cleaned = append(cleaned, ci)
	}
	return cleaned
}
