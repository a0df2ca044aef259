package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/internal/application/command"
	"github.com/activity-hub/student-activity-hub/internal/application/query"
	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTRATION HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RegistrationHandler serves the /api/registrations endpoints.
type RegistrationHandler struct {
	createRegistration *command.CreateRegistrationHandler
	reviewRegistration *command.ReviewRegistrationHandler
	listRegistrations  *query.ListRegistrationsHandler

	logger *zap.Logger
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(
	createRegistration *command.CreateRegistrationHandler,
	reviewRegistration *command.ReviewRegistrationHandler,
	listRegistrations *query.ListRegistrationsHandler,
	logger *zap.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		createRegistration: createRegistration,
		reviewRegistration: reviewRegistration,
		listRegistrations:  listRegistrations,
		logger:             logger,
	}
}

// List returns registrations visible to the caller. Students see their own;
// organizations see registrations for their activities, optionally narrowed
// with ?activityId=.
// GET /api/registrations
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	q := query.ListRegistrationsQuery{Actor: actor}
	if raw := r.URL.Query().Get("activityId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeBadRequest(w, "invalid activityId")
			return
		}
		q.ActivityID = &id
	}

	regs, err := h.listRegistrations.Handle(r.Context(), q)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegistrationResponses(regs))
}

type createRegistrationRequest struct {
	ActivityID int64 `json:"activityId" validate:"required,gt=0"`
}

// Create registers the calling student for an activity.
// POST /api/registrations
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	var req createRegistrationRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.createRegistration.Handle(r.Context(), command.CreateRegistrationCommand{
		Actor:      actor,
		ActivityID: req.ActivityID,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if result.NotificationErr != nil {
		h.logger.Warn("registration notification write failed",
			zap.Int64("registration_id", result.Registration.ID),
			zap.Error(result.NotificationErr),
		)
	}
	writeJSON(w, http.StatusCreated, toRegistrationResponse(result.Registration))
}

type reviewRegistrationRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending approved rejected completed"`
	PointsAwarded *int   `json:"pointsAwarded" validate:"omitempty,gte=0"`
}

// Review updates a registration's status, on behalf of the owning
// organization.
// PUT /api/registrations/{id}
func (h *RegistrationHandler) Review(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req reviewRegistrationRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.reviewRegistration.Handle(r.Context(), command.ReviewRegistrationCommand{
		Actor:          actor,
		RegistrationID: id,
		Status:         registration.Status(req.Status),
		PointsAwarded:  req.PointsAwarded,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if result.NotificationErr != nil {
		h.logger.Warn("registration review notification write failed",
			zap.Int64("registration_id", id),
			zap.Error(result.NotificationErr),
		)
	}
	writeJSON(w, http.StatusOK, toRegistrationResponse(result.Registration))
}
