package handlers

import (
	"time"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESPONSE DTOs
// Domain entities carry no serialization tags; the wire shape lives here.
// Field names follow the client API contract (camelCase).
// ══════════════════════════════════════════════════════════════════════════════

// UserResponse is the wire form of a user, never including the credential hash.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	StudentID string `json:"studentId,omitempty"`
	OrgName   string `json:"orgName,omitempty"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		StudentID: u.StudentID,
		OrgName:   u.OrgName,
	}
}

// ActivityResponse is the wire form of an activity.
type ActivityResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Points          int       `json:"points"`
	MaxParticipants *int      `json:"maxParticipants"`
	Status          string    `json:"status"`
	CreatedByID     int64     `json:"createdById"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toActivityResponse(a *activity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Location:        a.Location,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		Points:          a.Points,
		MaxParticipants: a.MaxParticipants,
		Status:          string(a.Status),
		CreatedByID:     a.CreatedByID,
		CreatedAt:       a.CreatedAt,
	}
}

func toActivityResponses(activities []*activity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}

// RegistrationResponse is the wire form of a registration.
type RegistrationResponse struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	ActivityID    int64      `json:"activityId"`
	Status        string     `json:"status"`
	PointsAwarded *int       `json:"pointsAwarded"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

func toRegistrationResponse(reg *registration.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:            reg.ID,
		UserID:        reg.UserID,
		ActivityID:    reg.ActivityID,
		Status:        string(reg.Status),
		PointsAwarded: reg.PointsAwarded,
		CreatedAt:     reg.CreatedAt,
		UpdatedAt:     reg.UpdatedAt,
	}
}

func toRegistrationResponses(regs []*registration.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, toRegistrationResponse(reg))
	}
	return out
}

// ComplaintResponse is the wire form of a complaint.
type ComplaintResponse struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	ActivityID  int64      `json:"activityId"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Response    *string    `json:"response"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func toComplaintResponse(c *complaint.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		ActivityID:  c.ActivityID,
		Description: c.Description,
		Status:      string(c.Status),
		Response:    c.Response,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toComplaintResponses(complaints []*complaint.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, toComplaintResponse(c))
	}
	return out
}

// NotificationResponse is the wire form of a notification.
type NotificationResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	ReferenceID *int64    `json:"referenceId"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Title:       n.Title,
		Message:     n.Message,
		Type:        string(n.Type),
		ReferenceID: n.ReferenceID,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}

func toNotificationResponses(notifications []*notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationResponse(n))
	}
	return out
}
