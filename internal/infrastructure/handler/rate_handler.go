// Package handler exposes enriched rates over HTTP
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/damon-houk/rate-enrichment/internal/application/service"
	"github.com/damon-houk/rate-enrichment/internal/domain/enrich"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/logger"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// RateHandler handles HTTP requests for currencies and enriched rates
type RateHandler struct {
	service         *service.EnrichmentService
	defaultStrategy enrich.Strategy
	logger          logger.Logger
}

// NewRateHandler creates a new rate handler
func NewRateHandler(service *service.EnrichmentService, defaultStrategy enrich.Strategy, log logger.Logger) *RateHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}
	if defaultStrategy == "" {
		defaultStrategy = enrich.StrategyCombined
	}

	return &RateHandler{
		service:         service,
		defaultStrategy: defaultStrategy,
		logger:          log,
	}
}

// ListCurrencies handles listing all currencies
func (h *RateHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	currencies, err := h.service.ListCurrencies(r.Context())
	if err != nil {
		h.logger.Error("Unexpected error listing currencies", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Internal server error",
			"An unexpected error occurred while listing currencies", http.StatusInternalServerError, requestID)
		return
	}

	resp := CurrencyListResponse{
		Count:      len(currencies),
		Currencies: make([]CurrencyResponse, 0, len(currencies)),
	}
	for _, c := range currencies {
		resp.Currencies = append(resp.Currencies, toCurrencyResponse(c))
	}

	sendJSON(w, h.logger, http.StatusOK, resp)
}

// ListRates handles listing enriched rates
func (h *RateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	strategy := h.defaultStrategy
	if name := r.URL.Query().Get("strategy"); name != "" {
		parsed, err := enrich.ParseStrategy(name)
		if err != nil {
			h.logger.Warn("Invalid strategy parameter", map[string]interface{}{
				"request_id": requestID,
				"strategy":   name,
			})
			sendErrorResponse(w, h.logger, "Invalid strategy",
				"The 'strategy' query parameter must be 'combined' or 'sequential'", http.StatusBadRequest, requestID)
			return
		}
		strategy = parsed
	}

	rates, err := h.service.ListEnrichedRates(r.Context(), strategy)
	if err != nil {
		h.logger.Error("Unexpected error listing rates", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Internal server error",
			"An unexpected error occurred while listing rates", http.StatusInternalServerError, requestID)
		return
	}

	resp := RateListResponse{
		Strategy: string(strategy),
		Count:    len(rates),
		Rates:    make([]RateResponse, 0, len(rates)),
	}
	for _, rate := range rates {
		resp.Rates = append(resp.Rates, toRateResponse(rate))
	}

	sendJSON(w, h.logger, http.StatusOK, resp)
}

// GetRate handles retrieving one enriched rate by ID
func (h *RateHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendErrorResponse(w, h.logger, "Invalid rate ID",
			"Rate ID must be an integer", http.StatusBadRequest, requestID)
		return
	}

	rate, err := h.service.GetEnrichedRate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnresolvedRate):
			sendErrorResponse(w, h.logger, "Rate cannot be resolved",
				err.Error(), http.StatusUnprocessableEntity, requestID)
		case errors.Is(err, repository.ErrNotFound):
			sendErrorResponse(w, h.logger, "Rate not found",
				"The requested rate could not be found", http.StatusNotFound, requestID)
		default:
			h.logger.Error("Unexpected error in get rate", map[string]interface{}{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Internal server error",
				"An unexpected error occurred while retrieving the rate", http.StatusInternalServerError, requestID)
		}
		return
	}

	sendJSON(w, h.logger, http.StatusOK, toRateResponse(*rate))
}

// RegisterRoutes registers the rate handler routes
func (h *RateHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/currencies", h.ListCurrencies).Methods("GET")
	router.HandleFunc("/rates", h.ListRates).Methods("GET")
	router.HandleFunc("/rates/{id}", h.GetRate).Methods("GET")

	h.logger.Info("Rate routes registered", map[string]interface{}{
		"routes": []string{
			"GET /currencies",
			"GET /rates",
			"GET /rates/{id}",
		},
	})
}

// sendJSON writes v as the JSON response body. Headers are already sent when
// encoding fails, so the failure can only be logged.
func sendJSON(w http.ResponseWriter, log logger.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", map[string]interface{}{
			"status": status,
			"error":  err.Error(),
		})
	}
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	sendJSON(w, log, statusCode, ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	})
}
