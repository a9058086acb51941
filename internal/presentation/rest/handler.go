package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/openfinedu/carfin/internal/application/dto"
	"github.com/openfinedu/carfin/internal/application/usecase"
	"github.com/openfinedu/carfin/internal/domain/model"
	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/scenario"
	"github.com/openfinedu/carfin/internal/observability"
)

// Handler exposes the calculator and scenario runner over HTTP. It decodes
// input, invokes use cases and renders their output; no domain logic lives
// here.
type Handler struct {
	calculateQuote *usecase.CalculateQuoteUseCase
	startSim       *usecase.StartSimulationUseCase
	applyChoice    *usecase.ApplyChoiceUseCase
	restartSim     *usecase.RestartSimulationUseCase
	getSim         *usecase.GetSimulationUseCase
	graph          *scenario.Graph
	metrics        *observability.Metrics
	logger         *slog.Logger
}

// NewHandler wires dependencies.
func NewHandler(
	calculateQuote *usecase.CalculateQuoteUseCase,
	startSim *usecase.StartSimulationUseCase,
	applyChoice *usecase.ApplyChoiceUseCase,
	restartSim *usecase.RestartSimulationUseCase,
	getSim *usecase.GetSimulationUseCase,
	graph *scenario.Graph,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		calculateQuote: calculateQuote,
		startSim:       startSim,
		applyChoice:    applyChoice,
		restartSim:     restartSim,
		getSim:         getSim,
		graph:          graph,
		metrics:        metrics,
		logger:         logger,
	}
}

// RegisterRoutes attaches the API routes to the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/quotes", h.handleCalculateQuote)
	mux.HandleFunc("GET /v1/scenario", h.handleGetScenario)
	mux.HandleFunc("POST /v1/simulations", h.handleStartSimulation)
	mux.HandleFunc("GET /v1/simulations/{id}", h.handleGetSimulation)
	mux.HandleFunc("POST /v1/simulations/{id}/choices", h.handleApplyChoice)
	mux.HandleFunc("POST /v1/simulations/{id}/restart", h.handleRestartSimulation)
}

func (h *Handler) handleCalculateQuote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	resp, err := h.calculateQuote.Execute(r.Context(), req)
	if err != nil {
		// The rejected counter means rejected by validation, nothing else.
		var validation *model.ValidationError
		if errors.As(err, &validation) {
			h.metrics.QuotesRejected.Inc()
		}
		h.writeUseCaseError(w, r, err)
		return
	}
	h.metrics.CalcDuration.Observe(time.Since(start).Seconds())
	h.metrics.QuotesCalculated.Inc()

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetScenario(w http.ResponseWriter, _ *http.Request) {
	nodes := h.graph.Nodes()
	out := make([]dto.NodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, dto.FromNode(n))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleStartSimulation(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.startSim.Execute(r.Context(), req)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.metrics.SimulationsStarted.Inc()

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleGetSimulation(w http.ResponseWriter, r *http.Request) {
	resp, err := h.getSim.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleApplyChoice(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.SimulationID = r.PathValue("id")

	resp, err := h.applyChoice.Execute(r.Context(), req)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.metrics.ChoicesApplied.Inc()

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleRestartSimulation(w http.ResponseWriter, r *http.Request) {
	resp, err := h.restartSim.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeUseCaseError maps domain failures onto HTTP statuses: rejected input
// is 400, unknown runs 404, choices against a finished run 409, anything
// else 500.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *model.ValidationError

	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Reason)
	case errors.Is(err, port.ErrSimulationNotFound):
		writeError(w, http.StatusNotFound, "simulation not found")
	case errors.Is(err, scenario.ErrRunComplete):
		writeError(w, http.StatusConflict, "simulation already complete; restart to continue")
	case errors.Is(err, scenario.ErrUnknownChoice):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: status, Message: message})
}
