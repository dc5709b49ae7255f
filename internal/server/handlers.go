package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/buildinfo"
	"github.com/matzehuels/cardlayout/pkg/catalog"
	apperr "github.com/matzehuels/cardlayout/pkg/errors"
	"github.com/matzehuels/cardlayout/pkg/layout"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// PlanRequest is the body of POST /v1/plan.
//
// Cards holds either one card object or an array of cards, in the card file
// format. Behaviors plans a bare behavior list as an anonymous card; exactly
// one of the two must be set.
type PlanRequest struct {
	Cards     json.RawMessage     `json:"cards,omitempty"`
	Behaviors []behavior.Behavior `json:"behaviors,omitempty"`
	Budget    *layout.Budget      `json:"budget,omitempty"`
	Refresh   bool                `json:"refresh,omitempty"`
}

// PlanResponse is the body of a successful POST /v1/plan.
type PlanResponse struct {
	BatchID string                    `json:"batchId"`
	Plans   []pipeline.CardLayoutPlan `json:"plans"`
	Stats   pipeline.BatchStats       `json:"stats"`
}

// CatalogResponse is the body of GET /v1/catalog.
type CatalogResponse struct {
	Kinds []catalog.Descriptor `json:"kinds"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorBody struct {
	Error struct {
		Code    apperr.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{Kinds: s.catalog.Descriptors()})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodePlanRequest(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	cards, err := requestCards(req)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(cards) > s.cfg.MaxBatch {
		writeError(w, apperr.New(apperr.ErrCodeInvalidInput,
			"batch of %d cards exceeds the limit of %d", len(cards), s.cfg.MaxBatch))
		return
	}

	opts := s.opts
	opts.Refresh = req.Refresh
	if req.Budget != nil {
		opts.Budget = *req.Budget
	}

	plans, stats, err := s.runner.PlanCards(r.Context(), cards, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PlanResponse{
		BatchID: uuid.NewString(),
		Plans:   plans,
		Stats:   stats,
	})
}

func (s *Server) decodePlanRequest(w http.ResponseWriter, r *http.Request) (PlanRequest, error) {
	var req PlanRequest
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, apperr.New(apperr.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return req, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read request body")
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "malformed request body")
	}
	return req, nil
}

// requestCards extracts the cards to plan from req.
func requestCards(req PlanRequest) ([]behavior.Card, error) {
	hasCards := len(req.Cards) > 0 && string(req.Cards) != "null"
	switch {
	case hasCards && len(req.Behaviors) > 0:
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "set either cards or behaviors, not both")
	case hasCards:
		return behavior.DecodeCards(req.Cards)
	case len(req.Behaviors) > 0:
		return []behavior.Card{{Behaviors: req.Behaviors}}, nil
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "request has no cards or behaviors")
	}
}

// =============================================================================
// Response Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = apperr.GetCode(err)
	body.Error.Message = apperr.UserMessage(err)
	if body.Error.Code == "" {
		body.Error.Code = apperr.ErrCodeInternal
		body.Error.Message = "internal error"
	}
	writeJSON(w, statusFor(body.Error.Code), body)
}

// statusFor maps an error code to an HTTP status.
func statusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeInvalidInput, apperr.ErrCodeInvalidCard, apperr.ErrCodeInvalidKind,
		apperr.ErrCodeInvalidBudget, apperr.ErrCodeInvalidPath, apperr.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case apperr.ErrCodeNotFound, apperr.ErrCodeCardNotFound, apperr.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperr.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	case apperr.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperr.ErrCodeCache:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errNotFound(path string) error {
	return apperr.New(apperr.ErrCodeNotFound, "no route for %s", path)
}
