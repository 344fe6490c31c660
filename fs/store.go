// Package fs provides file-based storage for extracted articles.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jwnews"
)

// Ensure Store implements jwnews.ArticleStore at compile time.
var _ jwnews.ArticleStore = (*Store)(nil)

// Store writes articles as markdown files into a directory.
type Store struct {
	baseDir string
}

// NewStore creates a Store that writes into baseDir. The directory is
// created on first save.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// SaveArticle writes the article to disk as a markdown file with YAML
// frontmatter.
func (s *Store) SaveArticle(ctx context.Context, article *jwnews.Article) error {
	if article == nil || article.SourceURL == "" {
		return jwnews.Errorf(jwnews.EINVALID, "article with a source URL required")
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(s.baseDir, Filename(article))
	content := FormatArticle(article, time.Now())
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Filename returns the article's file name: a slug of its title, or of
// the last URL path segment when untitled, joined with a short hash of
// the source URL so distinct articles never collide.
func Filename(article *jwnews.Article) string {
	name := ""
	if article.Title != nil {
		name = slugify(*article.Title)
	}
	if name == "" {
		name = pathSlug(article.SourceURL)
	}
	if name == "" {
		name = "article"
	}
	return fmt.Sprintf("%s-%08x.md", name, uint32(xxhash.Sum64String(article.SourceURL)))
}

// FormatArticle renders the article with YAML frontmatter.
func FormatArticle(article *jwnews.Article, extracted time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.SourceURL)
	if article.Title != nil {
		b.WriteString("\ntitle: ")
		b.WriteString(*article.Title)
	}
	b.WriteString("\nextracted: ")
	b.WriteString(extracted.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(article.Markdown)
	return b.String()
}

// pathSlug slugifies the last path segment of rawURL.
func pathSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	return slugify(segments[len(segments)-1])
}

// slugify creates a file-safe name from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
