// Package napihttp provides the REST transport binding for the node
// API.
//
// Each route delegates to the shared Format Adapter and service
// implementation, so REST clients observe exactly the same semantics
// as every other transport. Query operations take their input from
// path and query parameters (decoded with the canonical conversion
// rules from types); submission takes a JSON body. Responses use
// data/error envelopes.
package napihttp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/adapter"
	"github.com/tanglekit/napi/codec"
	"github.com/tanglekit/napi/types"
)

// Server is the REST binding over a service implementation.
type Server struct {
	cfg     Config
	log     *slog.Logger
	adapter *adapter.Adapter
	limiter *rate.Limiter
	metrics *metrics
	handler http.Handler
}

// NewServer creates the REST binding. A nil logger falls back to
// slog.Default.
func NewServer(cfg Config, svc napi.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		log:     log,
		adapter: adapter.New(svc, codec.Lookup("json")),
		metrics: newMetrics(),
	}
	if cfg.RateLimit.PerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.PerSecond), max(cfg.RateLimit.Burst, 1))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/node-info", s.handleNodeInfo)
	mux.HandleFunc("GET /v1/transactions/{hash}", s.handleTransactionByHash)
	mux.HandleFunc("GET /v1/bundles/{bundle}/transactions", s.handleTransactionsByBundle)
	mux.HandleFunc("GET /v1/addresses/{address}/transactions", s.handleTransactionsByAddress)
	if cfg.EnableSubmit {
		mux.HandleFunc("POST /v1/transactions", s.handleSubmit)
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	s.handler = s.instrument(mux)
	return s
}

// Handler returns the binding's handler, for embedding into an
// existing server.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.log.Info("rest binding listening", "addr", s.cfg.ListenAddr)
	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errc:
		return err
	}
}

// Serve serves on an existing listener until it fails or is closed.
func (s *Server) Serve(lis net.Listener) error {
	srv := &http.Server{Handler: s.handler, ReadHeaderTimeout: 5 * time.Second}
	return srv.Serve(lis)
}

// respond writes a success or error envelope for an adapter result.
func (s *Server) respond(w http.ResponseWriter, payload []byte, err error) {
	if err != nil {
		writeError(w, statusFor(err), s.adapter.EncodeError(err))
		return
	}
	writeData(w, payload)
}

// --- Route handlers ---

func (s *Server) handleNodeInfo(w http.ResponseWriter, r *http.Request) {
	payload, err := s.adapter.NodeInfo(r.Context())
	s.respond(w, payload, err)
}

func (s *Server) handleTransactionByHash(w http.ResponseWriter, r *http.Request) {
	hash, convErr := s.parseHashParam("hash", r.PathValue("hash"))
	if convErr != nil {
		s.respond(w, nil, convErr)
		return
	}
	resp, err := s.adapter.Service().TransactionByHash(r.Context(), types.TransactionByHashRequest{Hash: hash})
	s.encodeAndRespond(w, resp, err)
}

func (s *Server) handleTransactionsByBundle(w http.ResponseWriter, r *http.Request) {
	bundle, convErr := s.parseHashParam("bundle", r.PathValue("bundle"))
	if convErr != nil {
		s.respond(w, nil, convErr)
		return
	}
	entry, convErr := s.parseHashParam("entry", r.URL.Query().Get("entry"))
	if convErr != nil {
		s.respond(w, nil, convErr)
		return
	}
	resp, err := s.adapter.Service().TransactionsByBundle(r.Context(), types.TransactionsByBundleRequest{
		Entry:  entry,
		Bundle: bundle,
	})
	s.encodeAndRespond(w, resp, err)
}

func (s *Server) handleTransactionsByAddress(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("address")
	if raw == "" {
		s.respond(w, nil, s.missingParam("address"))
		return
	}
	addr, err := types.ParseAddress(raw)
	if err != nil {
		s.respond(w, nil, s.convErr("address", "malformed value", err))
		return
	}
	resp, svcErr := s.adapter.Service().TransactionsByAddress(r.Context(), types.TransactionsByAddressRequest{Address: addr})
	s.encodeAndRespond(w, resp, svcErr)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSubmitBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respond(w, nil, s.convErr("", "payload too large", err))
			return
		}
		s.respond(w, nil, s.convErr("", "unreadable body", err))
		return
	}
	payload, submitErr := s.adapter.SubmitTransaction(r.Context(), body)
	s.respond(w, payload, submitErr)
}

// maxSubmitBody bounds transaction submissions; tangle transactions
// are small.
const maxSubmitBody = 1 << 20

// encodeAndRespond encodes a typed response through the adapter's
// format and writes the envelope.
func (s *Server) encodeAndRespond(w http.ResponseWriter, resp any, err error) {
	if err != nil {
		s.respond(w, nil, err)
		return
	}
	payload, encErr := s.adapter.Encode(resp)
	s.respond(w, payload, encErr)
}

// convErr builds a conversion error attributed to this binding's wire
// format, so the error text tracks the format the adapter was built
// with.
func (s *Server) convErr(field, reason string, err error) error {
	return &codec.ConversionError{
		Format: s.adapter.Format().Name(), Field: field, Reason: reason, Err: err,
	}
}

// parseHashParam decodes a hash path/query parameter with the
// canonical hash rule, reporting failures as conversion errors
// attributed to the parameter name.
func (s *Server) parseHashParam(name, raw string) (types.Hash, error) {
	if raw == "" {
		return types.Hash{}, s.missingParam(name)
	}
	h, err := types.ParseHash(raw)
	if err != nil {
		return types.Hash{}, s.convErr(name, "malformed value", err)
	}
	return h, nil
}

func (s *Server) missingParam(name string) error {
	return s.convErr(name, "missing required parameter", nil)
}
