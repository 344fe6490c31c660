package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jwnews"
	"golang.org/x/net/html"
)

// Ensure ArticleExtractor implements jwnews.ArticleExtractor at compile time.
var _ jwnews.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor turns raw jw.org page HTML into a structured article.
// It selects the element holding the article body, strips player controls
// and publication metadata, normalizes media references to absolute URLs,
// and renders the remainder as markdown.
type ArticleExtractor struct {
	fallback  jwnews.Extractor
	converter jwnews.Converter
}

// NewArticleExtractor creates an ArticleExtractor. fallback locates main
// content on pages without a recognizable container; converter renders
// the cleaned container as markdown.
func NewArticleExtractor(fallback jwnews.Extractor, converter jwnews.Converter) *ArticleExtractor {
	return &ArticleExtractor{fallback: fallback, converter: converter}
}

// ExtractArticle extracts the article from rawHTML. baseURL resolves
// relative links and images and becomes the article's SourceURL. A page
// without recognizable content yields an article with empty markdown
// rather than an error.
func (e *ArticleExtractor) ExtractArticle(rawHTML, baseURL string) (*jwnews.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, jwnews.Errorf(jwnews.EINVALID, "failed to parse HTML: %v", err)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, jwnews.Errorf(jwnews.EINVALID, "invalid base URL: %v", err)
	}

	// The fallback image comes from the full page, before any stripping.
	fallbackImage := resolveFallbackImage(doc, rawHTML, base)

	stripChrome(doc)

	container := selectContainer(doc)
	fallbackTitle := ""
	if container == nil {
		container, fallbackTitle, err = e.fallbackContainer(rawHTML)
		if err != nil {
			return nil, err
		}
	}

	title := extractTitle(doc, container, fallbackTitle)
	titleNode := findTitleNode(container, title)

	stripPlayerControls(container)
	stripMetadataBlocks(container, title, titleNode)

	normalizeLinks(container, base)
	normalizeFigures(container, base)
	normalizeImages(container, base)

	images := collectImages(container)

	markdown, err := e.renderMarkdown(container)
	if err != nil {
		return nil, err
	}
	markdown = ensureTitleHeading(markdown, title)

	if len(images) == 0 && fallbackImage != nil {
		if fallbackImage.Alt == nil && title != "" {
			alt := title
			fallbackImage.Alt = &alt
		}
		images = append(images, *fallbackImage)
		markdown = insertImageLine(markdown, *fallbackImage)
	}

	article := &jwnews.Article{
		Markdown:  markdown,
		SourceURL: baseURL,
		Images:    images,
	}
	if title != "" {
		article.Title = &title
	}
	return article, nil
}

// fallbackContainer runs the pluggable extractor over the raw page and
// parses its output into a detached document, returning that document's
// body. Extractor failures degrade to an empty container rather than
// failing the pipeline.
func (e *ArticleExtractor) fallbackContainer(rawHTML string) (*goquery.Selection, string, error) {
	var contentHTML, title string
	if result, err := e.fallback.Extract(rawHTML); err == nil {
		contentHTML = result.ContentHTML
		title = result.Title
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, "", jwnews.Errorf(jwnews.EINTERNAL, "failed to parse extracted content: %v", err)
	}
	return doc.Find("body"), title, nil
}

// visibleText returns the selection's text with every text node treated
// as a word boundary and all whitespace collapsed to single spaces.
func visibleText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		appendTextNodes(&b, n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func appendTextNodes(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendTextNodes(b, c)
	}
}

// attrText combines an element's id and class values into one matchable
// string.
func attrText(s *goquery.Selection) string {
	return strings.TrimSpace(s.AttrOr("id", "") + " " + s.AttrOr("class", ""))
}

// containsNode reports whether node is one of root's nodes or a
// descendant of one.
func containsNode(root *goquery.Selection, node *html.Node) bool {
	if node == nil {
		return false
	}
	for _, rootNode := range root.Nodes {
		for n := node; n != nil; n = n.Parent {
			if n == rootNode {
				return true
			}
		}
	}
	return false
}
