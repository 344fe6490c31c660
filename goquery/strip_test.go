package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/jwnews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleExtractor_StripsPlayerControls(t *testing.T) {
	t.Parallel()

	t.Run("removes class-based player chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<div class="jsAudioPlayer audioPlayer"><button>PLAY</button><span>0:00</span></div>
<p>Body content that survives the cleanup pass.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.NotContains(t, article.Markdown, "PLAY")
		assert.NotContains(t, article.Markdown, "0:00")
		assert.Contains(t, article.Markdown, "Body content that survives the cleanup pass.")
	})

	t.Run("removes media elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<video src="/media/clip.mp4">Your browser does not support video.</video>
<audio src="/media/clip.mp3"></audio>
<p>Text around the embedded media players stays in place.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.NotContains(t, article.Markdown, "Your browser does not support video.")
		assert.Contains(t, article.Markdown, "Text around the embedded media players stays in place.")
	})

	t.Run("removes elements labeled as audio controls", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<div aria-label="Play audio"><span>3:12</span></div>
<span title="Video player">toggle</span>
<p>The main narrative continues after the controls are gone.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.NotContains(t, article.Markdown, "3:12")
		assert.NotContains(t, article.Markdown, "toggle")
		assert.Contains(t, article.Markdown, "The main narrative continues after the controls are gone.")
	})

	t.Run("removes button-role play links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<a role="button" href="/media/clip.mp3">Play</a>
<p>Reading continues without the inline play link.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.NotContains(t, article.Markdown, "Play")
		assert.Contains(t, article.Markdown, "Reading continues without the inline play link.")
	})

	t.Run("keeps player-classed blocks that contain images", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<div class="mediaBox"><img src="/images/still.jpg" alt="Still"></div>
<p>Caption-free imagery inside media wrappers is preserved.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.Contains(t, article.Markdown, "![Still](https://www.jw.org/images/still.jpg)")
		assert.Equal(t, []jwnews.Image{
			{URL: "https://www.jw.org/images/still.jpg", Alt: strptr("Still")},
		}, article.Images)
	})

	t.Run("keeps player-classed blocks with substantial text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<div class="mediaCommentary">This commentary on the recording runs far past any control label.</div>
<p>Regular paragraphs follow the commentary block.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.Contains(t, article.Markdown, "This commentary on the recording runs far past any control label.")
	})
}

func TestArticleExtractor_StripsMetadataBlocks(t *testing.T) {
	t.Parallel()

	t.Run("removes publication info blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Sample Title</title></head><body>
<main>
<h1>Sample Title</h1>
<p>Opening paragraph of the article body text.</p>
<div class="publicationInfo">THE WATCHTOWER wp24 No. 1 pp. 3-6</div>
<p>Closing paragraph of the article body text.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.NotContains(t, article.Markdown, "THE WATCHTOWER")
		assert.NotContains(t, article.Markdown, "wp24")
		assert.Contains(t, article.Markdown, "Opening paragraph of the article body text.")
		assert.Contains(t, article.Markdown, "Closing paragraph of the article body text.")
	})

	t.Run("removes issue references without a metadata class", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<h1>Sample Title</h1>
<p>wp24 No. 1 pp. 14-15</p>
<p>The article body carries on past the issue reference.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.NotContains(t, article.Markdown, "pp. 14-15")
		assert.Contains(t, article.Markdown, "The article body carries on past the issue reference.")
	})

	t.Run("removes language promos that mention the title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Sample Title</title></head><body>
<main>
<p>Also available in English: Sample Title</p>
<p>Body text stays after the language promo is removed.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.NotContains(t, article.Markdown, "Also available in English")
		assert.Contains(t, article.Markdown, "Body text stays after the language promo is removed.")
	})

	t.Run("keeps the node holding the title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Sample Title</title></head><body>
<main>
<p class="contextTitle">Sample Title</p>
<p>Body text follows the title paragraph.</p>
</main>
</body></html>`

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		var firstLine string
		for _, line := range strings.Split(article.Markdown, "\n") {
			if strings.TrimSpace(line) != "" {
				firstLine = line
				break
			}
		}
		assert.Equal(t, "# Sample Title", firstLine)
		assert.Contains(t, article.Markdown, "Body text follows the title paragraph.")
	})

	t.Run("keeps long blocks regardless of class", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("A detailed discussion of related material continues here. ", 6)
		html := fmt.Sprintf(`<html><body>
<main>
<h1>Sample Title</h1>
<div class="relatedContent">%s</div>
<p>The body keeps going.</p>
</main>
</body></html>`, long)

		article, err := newExtractor().ExtractArticle(html, baseURL)
		require.NoError(t, err)

		assert.Contains(t, article.Markdown, "A detailed discussion of related material continues here.")
	})
}
