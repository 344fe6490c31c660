package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/jwnews"
	"github.com/fwojciec/jwnews/reader"
	"github.com/rs/zerolog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   zerolog.Logger
	Reader   *reader.Service
	Articles jwnews.ArticleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract articles from jw.org URLs"`
	Serve   ServeCmd   `cmd:"" help:"Serve the extraction API over HTTP"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Article URLs (https, jw.org only)"`
	JSON        bool          `help:"Print articles as a JSON array"`
	Out         string        `short:"o" placeholder:"DIR" help:"Write articles as markdown files under DIR"`
	Engine      string        `default:"readability" enum:"readability,trafilatura" help:"Fallback extraction engine"`
	Browser     bool          `help:"Render pages in a headless browser before extracting"`
	Timeout     time.Duration `default:"10s" help:"Per-page fetch timeout"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string        `default:":8000" help:"HTTP listen address"`
	Engine  string        `default:"readability" enum:"readability,trafilatura" help:"Fallback extraction engine"`
	Browser bool          `help:"Render pages in a headless browser before extracting"`
	Timeout time.Duration `default:"10s" help:"Per-page fetch timeout"`
}
