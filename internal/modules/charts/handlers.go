package charts

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aristath/gordonloeb/pkg/formulas"
)

// Handlers provides HTTP handlers for the charts module
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new charts handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "charts_handlers").Logger(),
	}
}

// HandleInvestmentChart handles GET /api/charts/investment?v=&loss=
// Returns the Figure 1 chart description for the given inputs.
func (h *Handlers) HandleInvestmentChart(w http.ResponseWriter, r *http.Request) {
	v, err := parseFloatParam(r, "v")
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	loss, err := parseFloatParam(r, "loss")
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	zUser := formulas.OptimalInvestment(v, loss)
	chart := h.service.BuildInvestmentChart(v, loss, zUser)

	h.writeJSON(w, chart)
}

// parseFloatParam reads a required float64 query parameter
func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for parameter %q: %s", name, raw)
	}

	return value, nil
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	h.writeJSON(w, map[string]string{"error": message})
}
