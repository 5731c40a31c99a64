// Package api exposes the textalign formatter over HTTP.
//
// The API has a single formatting endpoint for editor and pipeline
// integration:
//
//	POST /v1/format
//	{"text": "Hi there! My name is Roben Li.\n", "width": 10, "align": "justify"}
//
// responds with the aligned text:
//
//	{"text": "Hi  there!\nMy name is\nRoben  Li.\n"}
//
// Validation failures return 400 with the structured error code, words that
// can never fit the requested width return 422, and unexpected failures
// return 500. Every request is tagged with a request ID (X-Request-ID) that
// also appears in the access log.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/robenli/textalign/pkg/align"
	"github.com/robenli/textalign/pkg/errors"
	"github.com/robenli/textalign/pkg/sink"
)

const shutdownTimeout = 5 * time.Second

// Server serves the formatting API on a single address.
type Server struct {
	logger *log.Logger
	http   *http.Server
}

// New creates a Server listening on addr once Run is called.
func New(addr string, logger *log.Logger) *Server {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/format", s.handleFormat)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is canceled, then shuts down gracefully, draining
// in-flight requests for up to shutdownTimeout. A canceled context is a
// normal shutdown, not an error.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	s.logger.Infof("Listening on %s", s.http.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh // always http.ErrServerClosed after Shutdown
		return nil
	}
}

// formatRequest is the body of POST /v1/format.
type formatRequest struct {
	Text  string `json:"text"`
	Width int    `json:"width"`
	Align string `json:"align"`
}

// formatResponse carries the aligned text.
type formatResponse struct {
	Text string `json:"text"`
}

// errorResponse carries a machine-readable code and a human-readable message.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	mode, err := align.ParseMode(req.Align)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Width <= 0 {
		s.writeError(w, r, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidWidth, "width must be positive, got %d", req.Width))
		return
	}

	var buf sink.Buffer
	if err := align.Run(req.Text, &buf, req.Width, mode); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errors.ErrCodeWordTooLong) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, r, status, err)
		return
	}

	writeJSON(w, http.StatusOK, formatResponse{Text: buf.String()})
}

// writeError renders err as a JSON error response and logs it with the
// request ID at debug level (client errors) so normal operation stays quiet.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.logger.Debugf("Request %s failed: %v", requestIDFromContext(r.Context()), err)
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
