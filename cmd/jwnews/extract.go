package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/jwnews"
	"github.com/fwojciec/jwnews/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	results := deps.Reader.ReadAll(deps.Ctx, c.URLs)

	var store jwnews.ArticleStore
	if c.Out != "" {
		store = fs.NewStore(c.Out)
	}

	articles := make([]*jwnews.Article, 0, len(results))
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", res.URL, jwnews.ErrorMessage(res.Err))
			continue
		}
		articles = append(articles, res.Article)

		if store != nil {
			if err := store.SaveArticle(deps.Ctx, res.Article); err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", res.URL, jwnews.ErrorMessage(err))
				continue
			}
			if !c.JSON {
				fmt.Fprintf(deps.Stdout, "Saved %s\n", filepath.Join(c.Out, fs.Filename(res.Article)))
			}
		}
	}

	switch {
	case c.JSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(articles); err != nil {
			return err
		}
	case store == nil && len(articles) > 0:
		fmt.Fprintln(deps.Stdout, jwnews.FormatArticles(articles))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(c.URLs))
	}
	return nil
}
