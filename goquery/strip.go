package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// chromeSelector matches tags that never carry article content.
const chromeSelector = "script, style, noscript, nav, footer, aside, svg, form, button"

// metadataCandidateSelector matches block elements that can hold
// publication metadata. h1 is exempt: it carries the article title.
const metadataCandidateSelector = "section, div, p, ul, ol, li, footer, aside, h2, h3, h4, h5, h6"

// stripChrome removes site chrome from the whole document. Headers
// survive only inside an article or main element, where they hold the
// article lead.
func stripChrome(doc *goquery.Document) {
	doc.Find(chromeSelector).Remove()
	doc.Find("header").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("article, main").Length() == 0 {
			s.Remove()
		}
	})
}

// stripPlayerControls removes audio and video player markup from the
// container: media tags, elements labeled for playback, play buttons,
// and small player-classed elements that carry no imagery.
func stripPlayerControls(container *goquery.Selection) {
	container.Find("audio, video, source, track").Remove()

	for _, attr := range []string{"aria-label", "title"} {
		container.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
			value := strings.ToLower(s.AttrOr(attr, ""))
			for _, needle := range playerControlNeedles {
				if strings.Contains(value, needle) {
					s.Remove()
					return
				}
			}
		})
	}

	container.Find("[role]").Each(func(_ int, s *goquery.Selection) {
		role := strings.ToLower(s.AttrOr("role", ""))
		if (role == "button" || role == "link") && strings.EqualFold(visibleText(s), "play") {
			s.Remove()
		}
	})

	container.Find("*").Each(func(_ int, s *goquery.Selection) {
		if !playerClassPattern.MatchString(attrText(s)) {
			return
		}
		if s.Find("img, picture").Length() > 0 {
			return
		}
		if utf8.RuneCountInString(visibleText(s)) <= maxPlayerTextLen {
			s.Remove()
		}
	})
}

// stripMetadataBlocks removes short blocks of publication metadata from
// the container: issue banners, related-content lists, language promos.
// The block holding the title node survives, as do blocks detached by an
// earlier removal.
func stripMetadataBlocks(container *goquery.Selection, title string, titleNode *html.Node) {
	container.Find(metadataCandidateSelector).Each(func(_ int, s *goquery.Selection) {
		if !containsNode(container, s.Get(0)) {
			return
		}
		if titleNode != nil && containsNode(s, titleNode) {
			return
		}
		text := visibleText(s)
		if text == "" || utf8.RuneCountInString(text) > maxMetadataTextLen {
			return
		}
		if isMetadataBlock(s, text, title) {
			s.Remove()
		}
	})
}

// isMetadataBlock reports whether a short block reads like publication
// metadata rather than article content.
func isMetadataBlock(s *goquery.Selection, text, title string) bool {
	if attrs := attrText(s); attrs != "" && metadataClassPattern.MatchString(attrs) {
		return true
	}

	upper := strings.ToUpper(text)
	if strings.Contains(upper, "THE WATCHTOWER") || strings.Contains(upper, "AWAKE!") {
		return true
	}

	if issuePattern.MatchString(text) &&
		(strings.Contains(text, "No.") || strings.Contains(text, "pp.") || strings.Contains(text, "pp ")) {
		return true
	}

	if title != "" {
		lower := strings.ToLower(text)
		if strings.Contains(lower, "english") && strings.Contains(lower, strings.ToLower(title)) {
			return true
		}
	}

	return false
}
