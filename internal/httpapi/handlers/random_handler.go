package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// NumberGenerator describes the generation capability used by HTTP handlers.
type NumberGenerator interface {
	Generate() float64
}

// RandomNumberResponse is the body returned by the random-number endpoint.
type RandomNumberResponse struct {
	Number  float64 `json:"number"`
	Message string  `json:"message"`
}

// RandomHandler exposes the random-number endpoint.
type RandomHandler struct {
	generator NumberGenerator
	generated prometheus.Counter
	logger    *zap.Logger
}

// NewRandomHandler constructs a handler.
func NewRandomHandler(generator NumberGenerator, generated prometheus.Counter, logger *zap.Logger) *RandomHandler {
	return &RandomHandler{
		generator: generator,
		generated: generated,
		logger:    logger,
	}
}

// Get generates one random number and returns it with a success message.
func (h *RandomHandler) Get(w http.ResponseWriter, r *http.Request) {
	number := h.generator.Generate()
	h.generated.Inc()
	h.logger.Debug("random number generated", zap.Float64("number", number))

	writeJSON(w, http.StatusOK, RandomNumberResponse{
		Number:  number,
		Message: "Random number generated successfully",
	})
}
