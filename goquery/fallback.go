package goquery

import (
	"encoding/json"
	"maps"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jwnews"
)

// metaImageKeys are the meta tags consulted for a representative page
// image, in preference order.
var metaImageKeys = []struct {
	attr  string
	value string
}{
	{"property", "og:image"},
	{"property", "og:image:secure_url"},
	{"name", "twitter:image"},
	{"name", "twitter:image:src"},
	{"itemprop", "image"},
}

// resolveFallbackImage finds a representative image for pages whose
// article body carries none: meta tags, then JSON-LD payloads, then
// "Image:" anchors, then CDN URLs anywhere in the raw HTML.
func resolveFallbackImage(doc *goquery.Document, rawHTML string, base *url.URL) *jwnews.Image {
	if metaURL := metaImage(doc); metaURL != "" {
		return &jwnews.Image{URL: resolveURL(base, metaURL)}
	}
	if jsonURL := jsonLDImage(doc); jsonURL != "" {
		return &jwnews.Image{URL: resolveURL(base, jsonURL)}
	}
	if linkURL, alt := imageLink(doc); linkURL != "" {
		img := &jwnews.Image{URL: resolveURL(base, linkURL)}
		if alt != "" {
			img.Alt = &alt
		}
		return img
	}
	for _, pattern := range []*regexp.Regexp{cmsImagePattern, akamaiImagePattern} {
		if best := bestCDNImage(pattern.FindAllString(rawHTML, -1)); best != "" {
			return &jwnews.Image{URL: best}
		}
	}
	return nil
}

// metaImage returns the page's meta image reference, if any. The first
// key whose tag carries a content value settles the search, even when
// that value trims to nothing.
func metaImage(doc *goquery.Document) string {
	for _, key := range metaImageKeys {
		sel := doc.Find("meta[" + key.attr + "='" + key.value + "']").First()
		if sel.Length() == 0 {
			continue
		}
		if content := sel.AttrOr("content", ""); content != "" {
			return strings.TrimSpace(content)
		}
	}
	return ""
}

// jsonLDImage scans JSON-LD payloads for an image URL. Malformed
// payloads are skipped.
func jsonLDImage(doc *goquery.Document) string {
	found := ""
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		if u, ok := jsonLDImageValue(payload); ok && u != "" {
			found = u
			return false
		}
		return true
	})
	return found
}

// jsonLDImageValue walks a decoded JSON-LD payload looking for image or
// thumbnailUrl values, recursing into nested objects and lists. Map keys
// are visited in sorted order so results are deterministic.
func jsonLDImageValue(payload any) (string, bool) {
	switch v := payload.(type) {
	case map[string]any:
		for _, key := range []string{"image", "thumbnailUrl"} {
			value, ok := v[key]
			if !ok {
				continue
			}
			if u, ok := imageURLValue(value); ok {
				return u, true
			}
		}
		for _, key := range slices.Sorted(maps.Keys(v)) {
			if u, ok := jsonLDImageValue(v[key]); ok && u != "" {
				return u, true
			}
		}
	case []any:
		for _, item := range v {
			if u, ok := jsonLDImageValue(item); ok && u != "" {
				return u, true
			}
		}
	}
	return "", false
}

// imageURLValue extracts a URL string from a JSON-LD image value, which
// may be a string, a list of strings or objects, or an object with a url
// field.
func imageURLValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []any:
		for _, item := range v {
			switch it := item.(type) {
			case string:
				return it, true
			case map[string]any:
				if u, ok := it["url"].(string); ok {
					return u, true
				}
			}
		}
	case map[string]any:
		if u, ok := v["url"].(string); ok {
			return u, true
		}
	}
	return "", false
}

// imageLink finds an anchor whose text names an image ("Image: ...").
// The text after the marker becomes the alt text.
func imageLink(doc *goquery.Document) (string, string) {
	linkURL, alt := "", ""
	doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text := visibleText(a)
		if !strings.HasPrefix(text, "Image:") {
			return true
		}
		href := a.AttrOr("href", "")
		if href == "" {
			return true
		}
		linkURL = href
		alt = strings.TrimSpace(strings.TrimPrefix(text, "Image:"))
		return false
	})
	return linkURL, alt
}

// bestCDNImage picks the highest-scoring CDN URL. Ties go to the later
// match.
func bestCDNImage(urls []string) string {
	best := ""
	bestScore := -1
	for _, u := range urls {
		if score := imageSizeScore(u); score >= bestScore {
			best = u
			bestScore = score
		}
	}
	return best
}

// imageSizeScore ranks a CDN URL by the size token in its filename. URLs
// without a size token score 0.
func imageSizeScore(u string) int {
	m := imageSizePattern.FindStringSubmatch(u)
	if m == nil {
		return 0
	}
	return imageSizeScores[strings.ToLower(m[1])]
}
