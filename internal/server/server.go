// Package server provides the HTTP surface of the X12 translation
// daemon.
//
// # Translation API
//
//   - POST /api/v1/translate - Translate one payload. The request
//     envelope names the transaction type, sender, and receiver; the
//     payload is either a business document (outbound) or raw X12 text
//     (inbound). Outbound translations return the interchange as
//     text/plain, inbound translations return the parsed document as
//     JSON. The content type follows the result's runtime shape.
//
// # Transaction Log API
//
//   - GET /api/v1/transactions      - List logged translations
//     (filters: type, direction, partner, limit)
//   - GET /api/v1/transactions/{id} - Get one logged translation
//
// # Health
//
//   - GET /health - Liveness probe
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirosfoundation/go-x12/internal/config"
	"github.com/sirosfoundation/go-x12/internal/storage"
	"github.com/sirosfoundation/go-x12/pkg/document"
	"github.com/sirosfoundation/go-x12/pkg/translate"
)

// Server is the translation daemon's HTTP server
type Server struct {
	config     *config.Config
	logger     *slog.Logger
	httpSrv    *http.Server
	store      storage.TransactionStore
	translator *translate.Service
}

// New creates a new server around a translation service and its log
func New(cfg *config.Config, translator *translate.Service, store storage.TransactionStore, logger *slog.Logger) *Server {
	s := &Server{
		config:     cfg,
		logger:     logger,
		store:      store,
		translator: translator,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Start begins listening on the specified address
func (s *Server) Start(addr string) error {
	s.httpSrv.Addr = addr
	s.logger.Info("starting server", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the server, draining in-flight log writes
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return err
	}
	s.translator.Flush()
	if s.store != nil {
		return s.store.Close(ctx)
	}
	return nil
}

// Handler exposes the route table for tests
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	basePath := strings.TrimSuffix(s.config.Server.BasePath, "/")
	if basePath == "" {
		basePath = "/api/v1"
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST "+basePath+"/translate", s.handleTranslate)
	mux.HandleFunc("GET "+basePath+"/transactions", s.handleListTransactions)
	mux.HandleFunc("GET "+basePath+"/transactions/{transactionID}", s.handleGetTransaction)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.logger.Error("store ping failed", "error", err)
			s.jsonResponse(w, map[string]string{"status": "degraded"}, http.StatusServiceUnavailable)
			return
		}
	}
	s.jsonResponse(w, status, http.StatusOK)
}

// translateRequest is the POST /translate envelope
type translateRequest struct {
	Type     document.TransactionType `json:"type"`
	Sender   string                   `json:"sender"`
	Receiver string                   `json:"receiver"`
	Payload  json.RawMessage          `json:"payload"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Type == "" {
		s.jsonError(w, "type is required", http.StatusBadRequest)
		return
	}
	sender := req.Sender
	if sender == "" {
		sender = s.config.Translation.SenderID
	}
	receiver := req.Receiver
	if receiver == "" {
		receiver = s.config.Translation.ReceiverID
	}

	result, err := s.translator.ProcessTransaction(r.Context(), req.Type, sender, receiver, req.Payload)
	if err != nil {
		s.translateError(w, err)
		return
	}

	// Outbound results are wire text, inbound results are documents.
	// The content type follows the shape.
	switch out := result.(type) {
	case string:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(out))
	default:
		s.jsonResponse(w, out, http.StatusOK)
	}
}

func (s *Server) translateError(w http.ResponseWriter, err error) {
	var verr *document.ValidationError
	switch {
	case errors.As(err, &verr):
		s.jsonResponse(w, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		}, http.StatusBadRequest)
	case errors.Is(err, translate.ErrUnsupportedTransaction):
		s.jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.Error("translation failed", "error", err)
		s.jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.jsonError(w, "transaction log disabled", http.StatusNotFound)
		return
	}

	filter := &storage.TransactionFilter{
		Type:      document.TransactionType(r.URL.Query().Get("type")),
		Direction: document.Direction(r.URL.Query().Get("direction")),
		Partner:   r.URL.Query().Get("partner"),
		Limit:     100,
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			s.jsonError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	records, err := s.store.ListTransactions(r.Context(), filter)
	if err != nil {
		s.logger.Error("listing transactions", "error", err)
		s.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*storage.TransactionRecord{}
	}
	s.jsonResponse(w, map[string]any{"transactions": records}, http.StatusOK)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.jsonError(w, "transaction log disabled", http.StatusNotFound)
		return
	}

	id := r.PathValue("transactionID")
	rec, err := s.store.GetTransaction(r.Context(), id)
	if err != nil {
		s.logger.Error("getting transaction", "id", id, "error", err)
		s.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		s.jsonError(w, "transaction not found", http.StatusNotFound)
		return
	}
	s.jsonResponse(w, rec, http.StatusOK)
}

// Helper functions

func (s *Server) jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) jsonError(w http.ResponseWriter, message string, status int) {
	s.jsonResponse(w, map[string]string{"error": message}, status)
}
