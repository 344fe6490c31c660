package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	jwhttp "github.com/fwojciec/jwnews/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := jwhttp.NewServer()
	srv.Addr = c.Addr
	srv.Articles = deps.Articles
	srv.Logger = deps.Logger

	if err := srv.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", srv.URL())
	deps.Logger.Info().Str("addr", srv.URL()).Msg("server started")

	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return srv.Close()
}
