package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// titleNodeSelector matches elements that can carry the article title.
const titleNodeSelector = "h1, h2, h3, h4, h5, h6, p, div, span"

// selectContainer picks the element holding the article body: the first
// article element, else the first main element, else the keyword-classed
// div with the most visible text, provided it clears minContainerText.
// Returns nil when no candidate qualifies.
func selectContainer(doc *goquery.Document) *goquery.Selection {
	if article := doc.Find("article").First(); article.Length() > 0 {
		return article
	}
	if main := doc.Find("main").First(); main.Length() > 0 {
		return main
	}

	var best *goquery.Selection
	bestLen := 0
	doc.Find("div").Each(func(_ int, div *goquery.Selection) {
		if !containerKeywordPattern.MatchString(attrText(div)) {
			return
		}
		// Strictly greater keeps the earliest div on ties.
		if textLen := utf8.RuneCountInString(visibleText(div)); textLen > bestLen {
			best = div
			bestLen = textLen
		}
	})
	if best != nil && bestLen >= minContainerText {
		return best
	}
	return nil
}

// extractTitle resolves the article title: the container's first h1,
// else the document's title element, else the fallback extractor's
// title. Returns "" when none yields text.
func extractTitle(doc *goquery.Document, container *goquery.Selection, fallbackTitle string) string {
	if h1 := container.Find("h1").First(); h1.Length() > 0 {
		if text := visibleText(h1); text != "" {
			return text
		}
	}
	if text := strings.TrimSpace(doc.Find("title").First().Text()); text != "" {
		return text
	}
	return strings.TrimSpace(fallbackTitle)
}

// findTitleNode locates the first element in the container whose visible
// text exactly equals the title. The returned node is exempt from
// metadata stripping.
func findTitleNode(container *goquery.Selection, title string) *html.Node {
	if title == "" {
		return nil
	}
	var node *html.Node
	container.Find(titleNodeSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if visibleText(s) == title {
			node = s.Get(0)
			return false
		}
		return true
	})
	return node
}
