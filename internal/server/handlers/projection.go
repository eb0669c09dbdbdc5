package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpgo/savings-projector/internal/cache"
	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/rpgo/savings-projector/internal/output"
	"github.com/rs/zerolog"
)

const (
	// MaxRequestBytes bounds the size of a projection request body.
	MaxRequestBytes = 1 << 20
	// MaxYears bounds the horizon the API will compute; the cost grows linearly with it.
	MaxYears = 100
)

// Projector runs a projection for validated inputs.
type Projector interface {
	Project(ctx context.Context, inputs domain.ProjectionInputs) (*domain.ProjectionResult, error)
}

// ProjectionResponse is returned by the create and get endpoints.
type ProjectionResponse struct {
	Key    string                 `json:"key"`
	Cached bool                   `json:"cached"`
	View   *output.ProjectionView `json:"view"`
}

// CompoundingModeResponse describes one supported compounding identifier.
type CompoundingModeResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	engine Projector
	cache  cache.ResultCache
	parser *config.InputParser
}

func NewHandler(engine Projector, resultCache cache.ResultCache) *Handler {
	return &Handler{
		engine: engine,
		cache:  resultCache,
		parser: config.NewInputParser(),
	}
}

// CreateProjection computes (or fetches from cache) the projection for the posted inputs.
func (h *Handler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var inputs domain.ProjectionInputs
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&inputs); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", MaxRequestBytes))
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.parser.ValidateInputs(&inputs); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if inputs.Years > MaxYears {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("years must be at most %d", MaxYears))
		return
	}

	key := cache.Key(inputs)
	result, cached := h.cache.Get(ctx, key)
	if !cached {
		var err error
		result, err = h.engine.Project(ctx, inputs)
		if err != nil {
			logger.Error().Err(err).Str("key", key).Msg("projection failed")
			writeError(w, r, http.StatusInternalServerError, "projection failed")
			return
		}
		if err := h.cache.Set(ctx, key, result); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("failed to cache projection")
		}
	}

	logger.Debug().Str("key", key).Bool("cached", cached).Msg("projection served")
	writeJSON(w, r, http.StatusCreated, ProjectionResponse{
		Key:    key,
		Cached: cached,
		View:   buildView(r, result),
	})
}

// GetProjection re-renders a cached projection for the requested view and display mode.
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	result, ok := h.cache.Get(r.Context(), key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "projection not found or expired")
		return
	}
	writeJSON(w, r, http.StatusOK, ProjectionResponse{
		Key:    key,
		Cached: true,
		View:   buildView(r, result),
	})
}

// GetReport renders a cached projection with one of the output formatters.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	key := chi.URLParam(r, "key")

	result, ok := h.cache.Get(r.Context(), key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "projection not found or expired")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	f, err := output.LookupFormatter(format)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, output.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		}
		writeError(w, r, status, err.Error())
		return
	}

	body, err := f.Format(buildView(r, result))
	if err != nil {
		logger.Error().Err(err).Str("format", f.Name()).Msg("failed to format report")
		writeError(w, r, http.StatusInternalServerError, "failed to format report")
		return
	}

	w.Header().Set("Content-Type", output.ContentType(f))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
	}
}

// ListCompoundingModes returns the supported compounding identifiers.
func (h *Handler) ListCompoundingModes(w http.ResponseWriter, r *http.Request) {
	modes := domain.CompoundingModes()
	response := make([]CompoundingModeResponse, 0, len(modes))
	for _, m := range modes {
		response = append(response, CompoundingModeResponse{ID: m.String(), Label: m.Label()})
	}
	writeJSON(w, r, http.StatusOK, response)
}

func buildView(r *http.Request, result *domain.ProjectionResult) *output.ProjectionView {
	q := r.URL.Query()
	return output.BuildView(result, domain.ParseView(q.Get("view")), domain.ParseDisplayMode(q.Get("display")))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}
