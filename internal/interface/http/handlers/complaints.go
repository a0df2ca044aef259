package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/internal/application/command"
	"github.com/activity-hub/student-activity-hub/internal/application/query"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMPLAINT HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// ComplaintHandler serves the /api/complaints endpoints.
type ComplaintHandler struct {
	createComplaint  *command.CreateComplaintHandler
	respondComplaint *command.RespondComplaintHandler
	listComplaints   *query.ListComplaintsHandler

	logger *zap.Logger
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(
	createComplaint *command.CreateComplaintHandler,
	respondComplaint *command.RespondComplaintHandler,
	listComplaints *query.ListComplaintsHandler,
	logger *zap.Logger,
) *ComplaintHandler {
	return &ComplaintHandler{
		createComplaint:  createComplaint,
		respondComplaint: respondComplaint,
		listComplaints:   listComplaints,
		logger:           logger,
	}
}

// List returns complaints visible to the caller. Students see their own
// filings; organizations see complaints about their activities.
// GET /api/complaints
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	complaints, err := h.listComplaints.Handle(r.Context(), query.ListComplaintsQuery{Actor: actor})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toComplaintResponses(complaints))
}

type createComplaintRequest struct {
	ActivityID  int64  `json:"activityId" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

// Create files a complaint about an activity.
// POST /api/complaints
func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	var req createComplaintRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.createComplaint.Handle(r.Context(), command.CreateComplaintCommand{
		Actor:       actor,
		ActivityID:  req.ActivityID,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if result.NotificationErr != nil {
		h.logger.Warn("complaint notification write failed",
			zap.Int64("complaint_id", result.Complaint.ID),
			zap.Error(result.NotificationErr),
		)
	}
	writeJSON(w, http.StatusCreated, toComplaintResponse(result.Complaint))
}

type respondComplaintRequest struct {
	Status   string `json:"status" validate:"required,oneof=pending resolved rejected"`
	Response string `json:"response" validate:"required"`
}

// Respond records the organization's answer to a complaint.
// PUT /api/complaints/{id}
func (h *ComplaintHandler) Respond(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req respondComplaintRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.respondComplaint.Handle(r.Context(), command.RespondComplaintCommand{
		Actor:       actor,
		ComplaintID: id,
		Status:      complaint.Status(req.Status),
		Response:    req.Response,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if result.NotificationErr != nil {
		h.logger.Warn("complaint response notification write failed",
			zap.Int64("complaint_id", id),
			zap.Error(result.NotificationErr),
		)
	}
	writeJSON(w, http.StatusOK, toComplaintResponse(result.Complaint))
}
