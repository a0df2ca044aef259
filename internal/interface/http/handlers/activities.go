package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/internal/application/command"
	"github.com/activity-hub/student-activity-hub/internal/application/query"
	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACTIVITY HANDLER
// Listing and detail are public; create, update, and delete require an
// organization session.
// ══════════════════════════════════════════════════════════════════════════════

// ActivityHandler serves the /api/activities endpoints.
type ActivityHandler struct {
	createActivity *command.CreateActivityHandler
	updateActivity *command.UpdateActivityHandler
	deleteActivity *command.DeleteActivityHandler
	listActivities *query.ListActivitiesHandler
	getActivity    *query.GetActivityHandler

	logger *zap.Logger
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(
	createActivity *command.CreateActivityHandler,
	updateActivity *command.UpdateActivityHandler,
	deleteActivity *command.DeleteActivityHandler,
	listActivities *query.ListActivitiesHandler,
	getActivity *query.GetActivityHandler,
	logger *zap.Logger,
) *ActivityHandler {
	return &ActivityHandler{
		createActivity: createActivity,
		updateActivity: updateActivity,
		deleteActivity: deleteActivity,
		listActivities: listActivities,
		getActivity:    getActivity,
		logger:         logger,
	}
}

// List returns all activities, optionally filtered by status.
// GET /api/activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	var q query.ListActivitiesQuery
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := activity.Status(raw)
		if !status.IsValid() {
			writeBadRequest(w, "unknown activity status")
			return
		}
		q.Status = &status
	}

	activities, err := h.listActivities.Handle(r.Context(), q)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponses(activities))
}

// Get returns one activity.
// GET /api/activities/{id}
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	act, err := h.getActivity.Handle(r.Context(), query.GetActivityQuery{ActivityID: id})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(act))
}

type createActivityRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	Location        string    `json:"location" validate:"required"`
	StartDate       time.Time `json:"startDate" validate:"required"`
	EndDate         time.Time `json:"endDate" validate:"required"`
	Points          int       `json:"points" validate:"required,gt=0"`
	MaxParticipants *int      `json:"maxParticipants" validate:"omitempty,gt=0"`
	Status          string    `json:"status" validate:"omitempty,oneof=draft open closed completed"`
}

// Create creates an activity owned by the calling organization.
// POST /api/activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	var req createActivityRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	act, err := h.createActivity.Handle(r.Context(), command.CreateActivityCommand{
		Actor:           actor,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Points:          req.Points,
		MaxParticipants: req.MaxParticipants,
		Status:          activity.Status(req.Status),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityResponse(act))
}

type updateActivityRequest struct {
	Title           *string    `json:"title" validate:"omitempty,min=1"`
	Description     *string    `json:"description" validate:"omitempty,min=1"`
	Location        *string    `json:"location" validate:"omitempty,min=1"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Points          *int       `json:"points" validate:"omitempty,gt=0"`
	MaxParticipants *int       `json:"maxParticipants" validate:"omitempty,gt=0"`
	Status          *string    `json:"status" validate:"omitempty,oneof=draft open closed completed"`
}

// Update applies a partial update to an owned activity.
// PUT /api/activities/{id}
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req updateActivityRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	patch := activity.Patch{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Points:          req.Points,
		MaxParticipants: req.MaxParticipants,
	}
	if req.Status != nil {
		status := activity.Status(*req.Status)
		patch.Status = &status
	}

	act, err := h.updateActivity.Handle(r.Context(), command.UpdateActivityCommand{
		Actor:      actor,
		ActivityID: id,
		Patch:      patch,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(act))
}

// Delete removes an owned activity.
// DELETE /api/activities/{id}
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	err = h.deleteActivity.Handle(r.Context(), command.DeleteActivityCommand{
		Actor:      actor,
		ActivityID: id,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
