package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/internal/application/query"
)

// PointsHandler serves the /api/points endpoints.
type PointsHandler struct {
	getSummary *query.GetPointsSummaryHandler
	logger     *zap.Logger
}

// NewPointsHandler creates a new PointsHandler.
func NewPointsHandler(getSummary *query.GetPointsSummaryHandler, logger *zap.Logger) *PointsHandler {
	return &PointsHandler{getSummary: getSummary, logger: logger}
}

// Summary returns the calling student's merit point aggregate.
// GET /api/points/summary
func (h *PointsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	summary, err := h.getSummary.Handle(r.Context(), query.GetPointsSummaryQuery{Actor: actor})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
