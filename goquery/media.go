package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jwnews"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// normalizeLinks rewrites anchor hrefs to absolute URLs.
func normalizeLinks(container *goquery.Selection, base *url.URL) {
	container.Find("a").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "" {
			return
		}
		a.SetAttr("href", resolveURL(base, href))
	})
}

// normalizeFigures flattens figures: the figure's first img moves out to
// where the figure stood, followed by the figcaption text as an
// emphasized paragraph. Figures without a usable img are dropped.
func normalizeFigures(container *goquery.Selection, base *url.URL) {
	container.Find("figure").Each(func(_ int, fig *goquery.Selection) {
		img := fig.Find("img").First()
		if img.Length() == 0 {
			fig.Remove()
			return
		}
		if normalizeImage(img, base) == "" {
			fig.Remove()
			return
		}

		caption := ""
		if figcaption := fig.Find("figcaption").First(); figcaption.Length() > 0 {
			caption = visibleText(figcaption)
		}

		figNode := fig.Get(0)
		imgNode := img.Get(0)
		moveAfter(imgNode, figNode)
		if caption != "" {
			insertAfter(captionParagraph(caption), imgNode)
		}
		fig.Remove()
	})
}

// normalizeImages resolves every img's source to an absolute URL and
// strips lazy-loading attributes. Images with no resolvable source are
// removed.
func normalizeImages(container *goquery.Selection, base *url.URL) {
	container.Find("img").Each(func(_ int, img *goquery.Selection) {
		normalizeImage(img, base)
	})
}

// normalizeImage resolves the img's source, sets it as an absolute src
// attribute and drops the lazy-loading attributes. Returns the absolute
// URL, or "" after removing an img with no resolvable source.
func normalizeImage(img *goquery.Selection, base *url.URL) string {
	src := resolveImageSource(img)
	if src == "" {
		img.Remove()
		return ""
	}
	abs := resolveURL(base, src)
	img.SetAttr("src", abs)
	for _, attr := range strippedImgAttrs {
		img.RemoveAttr(attr)
	}
	return abs
}

// resolveImageSource finds the best source reference on an img: data-src,
// then src, then the lazy-loading attribute ladder, and finally the best
// srcset candidate.
func resolveImageSource(img *goquery.Selection) string {
	if src := img.AttrOr("data-src", ""); src != "" {
		return src
	}
	if src := img.AttrOr("src", ""); src != "" {
		return src
	}
	for _, attr := range lazySrcAttrs {
		if src := img.AttrOr(attr, ""); src != "" {
			return src
		}
	}
	srcset := img.AttrOr("srcset", "")
	if srcset == "" {
		srcset = img.AttrOr("data-srcset", "")
	}
	if srcset != "" {
		return bestSrcsetCandidate(srcset)
	}
	return ""
}

// bestSrcsetCandidate picks the srcset entry with the largest width or
// density descriptor. Ties go to the later entry.
func bestSrcsetCandidate(srcset string) string {
	type candidate struct {
		score float64
		url   string
	}
	var candidates []candidate
	for _, part := range strings.Split(srcset, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Fields(part)
		score := 0.0
		if len(fields) > 1 {
			desc := fields[1]
			if strings.HasSuffix(desc, "w") || strings.HasSuffix(desc, "x") {
				if v, err := strconv.ParseFloat(desc[:len(desc)-1], 64); err == nil {
					score = v
				}
			}
		}
		candidates = append(candidates, candidate{score: score, url: fields[0]})
	}
	if len(candidates) == 0 {
		return ""
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score >= best.score {
			best = c
		}
	}
	return best.url
}

// collectImages gathers the container's imgs in document order. A
// caption is recovered when the img's next element sibling is a p whose
// entire text is a single em.
func collectImages(container *goquery.Selection) []jwnews.Image {
	images := []jwnews.Image{}
	container.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := img.AttrOr("src", "")
		if src == "" {
			return
		}
		image := jwnews.Image{URL: src}
		if alt, ok := img.Attr("alt"); ok {
			if trimmed := strings.TrimSpace(alt); trimmed != "" {
				image.Alt = &trimmed
			}
		}
		if caption := imageCaption(img); caption != "" {
			image.Caption = &caption
		}
		images = append(images, image)
	})
	return images
}

// imageCaption returns the text of the caption paragraph following img,
// if any.
func imageCaption(img *goquery.Selection) string {
	next := img.Next()
	if !next.Is("p") {
		return ""
	}
	em := next.Find("em").First()
	if em.Length() == 0 {
		return ""
	}
	emText := visibleText(em)
	if emText == "" || emText != visibleText(next) {
		return ""
	}
	return emText
}

// resolveURL resolves ref against base, returning ref unchanged when it
// does not parse.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// moveAfter detaches n and reinserts it immediately after ref.
func moveAfter(n, ref *html.Node) {
	if ref.Parent == nil {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	ref.Parent.InsertBefore(n, ref.NextSibling)
}

// insertAfter inserts n immediately after ref.
func insertAfter(n, ref *html.Node) {
	if ref.Parent == nil {
		return
	}
	ref.Parent.InsertBefore(n, ref.NextSibling)
}

// captionParagraph builds <p><em>text</em></p> for a recovered figure
// caption.
func captionParagraph(text string) *html.Node {
	p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	em := &html.Node{Type: html.ElementNode, Data: "em", DataAtom: atom.Em}
	em.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	p.AppendChild(em)
	return p
}
