// Package server exposes the compiler over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/dnalang/dnalang/compile"
)

// MaxRequestBytes bounds the size of a compile request body.
const MaxRequestBytes = 1 << 20

const shutdownTimeout = 5 * time.Second

// ErrorTypeServer labels failures of the HTTP layer itself.
const ErrorTypeServer compile.ErrorType = "ServerError"

type compileRequest struct {
	Code string `json:"code"`
}

type errorResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error"`
	ErrorType compile.ErrorType `json:"error_type,omitempty"`
}

type Server struct {
	Addr string
}

func New(addr string) *Server {
	return &Server{Addr: addr}
}

// Handler returns the routes served by the compile endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/compile", handleCompile)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func handleCompile(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic: %v\n%s", rec, debug.Stack())
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:     fmt.Sprintf("%v", rec),
				ErrorType: ErrorTypeServer,
			})
		}
	}()

	var req compileRequest
	body := http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		status := http.StatusInternalServerError
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		log.Printf("compile request: %v", err)
		writeJSON(w, status, errorResponse{Error: err.Error(), ErrorType: ErrorTypeServer})
		return
	}

	if req.Code == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No code provided"})
		return
	}

	writeJSON(w, http.StatusOK, compile.Compile(req.Code))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
