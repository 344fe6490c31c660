package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jwnews"
)

// renderMarkdown converts the container to markdown, collapsing runs of
// blank lines and trimming the result. Empty containers yield "".
func (e *ArticleExtractor) renderMarkdown(container *goquery.Selection) (string, error) {
	if container == nil || container.Length() == 0 {
		return "", nil
	}
	containerHTML, err := goquery.OuterHtml(container)
	if err != nil {
		return "", jwnews.Errorf(jwnews.EINTERNAL, "failed to render container: %v", err)
	}
	if strings.TrimSpace(containerHTML) == "" {
		return "", nil
	}
	markdown, err := e.converter.Convert(containerHTML)
	if err != nil {
		return "", err
	}
	markdown = blankRunPattern.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown), nil
}

// ensureTitleHeading promotes the title to the document's leading
// heading when the first content line is the bare title text. Any other
// leading line leaves the markdown unchanged.
func ensureTitleHeading(markdown, title string) string {
	if title == "" {
		return markdown
	}
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if stripped == "# "+title {
			return markdown
		}
		if stripped == title {
			lines[i] = "# " + title
			return strings.Join(lines, "\n")
		}
		return markdown
	}
	return markdown
}

// insertImageLine adds the image's markdown line to the document: after
// a leading heading when one exists, otherwise before everything.
func insertImageLine(markdown string, image jwnews.Image) string {
	alt := ""
	if image.Alt != nil {
		alt = *image.Alt
	}
	line := "![" + alt + "](" + image.URL + ")"
	if strings.TrimSpace(markdown) == "" {
		return line
	}
	lines := strings.Split(markdown, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if strings.HasPrefix(l, "# ") {
			head := strings.Join(lines[:i+1], "\n")
			tail := strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			if tail != "" {
				return head + "\n\n" + line + "\n\n" + tail
			}
			return head + "\n\n" + line
		}
		return line + "\n\n" + markdown
	}
	return line + "\n\n" + markdown
}
