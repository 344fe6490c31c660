package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/jwnews"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultAddr is the address the API listens on when none is configured.
const DefaultAddr = ":8000"

// ShutdownTimeout bounds graceful shutdown on Close.
const ShutdownTimeout = 5 * time.Second

// Server exposes an ArticleService as a JSON API: POST /extract reads an
// article, GET /health reports liveness. Errors carry a {"detail": ...}
// body with the status derived from the error code.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Addr is the bind address, DefaultAddr when empty.
	Addr string

	// Articles serves extraction requests.
	Articles jwnews.ArticleService

	// Logger receives one entry per request.
	Logger zerolog.Logger
}

// NewServer creates a Server with the default address and a disabled
// logger. Set Articles before calling Open.
func NewServer() *Server {
	s := &Server{
		Addr:   DefaultAddr,
		server: &http.Server{},
		Logger: zerolog.Nop(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /extract", s.handleExtract)
	s.server.Handler = s.logRequests(mux)

	return s
}

// Open binds the listener and begins serving on a background goroutine.
func (s *Server) Open() error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() { _ = s.server.Serve(s.ln) }()

	return nil
}

// Close gracefully shuts the server down, waiting for in-flight requests
// up to ShutdownTimeout.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the bound listener. Useful with ephemeral
// ports in tests.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

type extractRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, jwnews.Errorf(jwnews.EINVALID, "Request body must be JSON with a url field"))
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, jwnews.Errorf(jwnews.EINVALID, "url is required"))
		return
	}

	article, err := s.Articles.ReadArticle(r.Context(), req.URL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// logRequests assigns each request an ID, echoes it as X-Request-ID, and
// logs the outcome.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		s.Logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.status).
			Dur("duration", time.Since(begin)).
			Msg("request")
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// errorStatus maps application error codes to HTTP status codes. Unknown
// codes map to 500.
var errorStatus = map[string]int{
	jwnews.EINVALID:     http.StatusBadRequest,
	jwnews.EUNSUPPORTED: http.StatusUnprocessableEntity,
	jwnews.ENOTFOUND:    http.StatusNotFound,
	jwnews.EUPSTREAM:    http.StatusBadGateway,
	jwnews.EINTERNAL:    http.StatusInternalServerError,
}

func writeError(w http.ResponseWriter, err error) {
	status, ok := errorStatus[jwnews.ErrorCode(err)]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"detail": jwnews.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
