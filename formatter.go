package jwnews

import "strings"

// FormatArticles formats extracted articles for display.
// A single article is rendered as its markdown alone. Multiple articles
// get "## Article:" headers, using the title if available and the source
// URL otherwise, separated by blank lines.
func FormatArticles(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}
	if len(articles) == 1 {
		return articles[0].Markdown
	}

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		header := a.SourceURL
		if a.Title != nil && *a.Title != "" {
			header = *a.Title
		}
		parts = append(parts, "## Article: "+header+"\n"+a.Markdown)
	}

	return strings.Join(parts, "\n\n")
}
