// Package gateway serves token metadata as JSON over HTTP
package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token"
)

// HandlerConfig holds dependencies for the gateway
type HandlerConfig struct {
	MetadataService token.Service

	// Gatherer backs /metrics when set
	Gatherer prometheus.Gatherer
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.MetadataService == nil {
		return errors.InvalidArgument("metadata service is required")
	}
	return nil
}

// Handler wires the HTTP endpoints to the metadata service
type Handler struct {
	metadataService token.Service
	gatherer        prometheus.Gatherer
}

// NewHandler creates a gateway handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		metadataService: cfg.MetadataService,
		gatherer:        cfg.Gatherer,
	}, nil
}

// Router returns a chi router with every endpoint mounted
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// Register mounts the endpoints on r
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.HandleHealth)
	r.Get("/v1/tokens/random", h.HandleRandomToken)
	r.Get("/v1/tokens/{tokenID}", h.HandleGetMetadata)
	if h.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
}

// HandleHealth reports liveness
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleGetMetadata handles GET /v1/tokens/{tokenID}?contract=v0
func (h *Handler) HandleGetMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := chi.URLParam(r, "tokenID")
	tokenID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, errors.InvalidArgumentf("token id must be an integer, got %q", raw))
		return
	}

	output, err := h.metadataService.GetMetadata(ctx, &token.GetMetadataInput{
		TokenID:  tokenID,
		Contract: r.URL.Query().Get("contract"),
	})
	if err != nil {
		slog.WarnContext(ctx, "metadata lookup failed",
			"token_id", tokenID,
			"error", err,
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Record)
}

// HandleRandomToken handles GET /v1/tokens/random?contract=v0
func (h *Handler) HandleRandomToken(w http.ResponseWriter, r *http.Request) {
	output, err := h.metadataService.RandomToken(r.Context(), &token.RandomTokenInput{
		Contract: r.URL.Query().Get("contract"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"token_id":     output.TokenID,
		"total_supply": output.TotalSupply,
	})
}

type errorResponse struct {
	Code    errors.Code    `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), errorResponse{
		Code:    code,
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
