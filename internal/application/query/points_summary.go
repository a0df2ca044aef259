// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"fmt"
	"sort"

	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
	"github.com/activity-hub/student-activity-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// POINTS SUMMARY QUERY
// Aggregates a student's completed registrations into a total, a rank tier,
// and ascending monthly buckets. Pure read path; results are cacheable and
// invalidated whenever one of the student's registrations is reviewed.
// ══════════════════════════════════════════════════════════════════════════════

// Rank tier labels, assigned by fixed thresholds on the points total.
const (
	RankExcellent = "Xuất sắc"   // >= 90
	RankGood      = "Tốt"        // >= 80
	RankFair      = "Khá"        // >= 65
	RankAverage   = "Trung bình" // >= 50
	RankWeak      = "Yếu"        // below 50
)

// RankFor maps a points total to its tier label.
func RankFor(totalPoints int) string {
	switch {
	case totalPoints >= 90:
		return RankExcellent
	case totalPoints >= 80:
		return RankGood
	case totalPoints >= 65:
		return RankFair
	case totalPoints >= 50:
		return RankAverage
	default:
		return RankWeak
	}
}

// MonthPoints is one monthly bucket of awarded points.
type MonthPoints struct {
	// Month is the ISO "YYYY-MM" bucket key.
	Month string `json:"month"`

	// Points is the sum awarded in that month.
	Points int `json:"points"`
}

// PointsSummary is the aggregate result for one student.
type PointsSummary struct {
	TotalPoints int `json:"totalPoints"`

	// Rank is the tier label for TotalPoints.
	Rank string `json:"rank"`

	// MonthlyPoints holds the buckets in ascending month order.
	MonthlyPoints []MonthPoints `json:"monthlyPoints"`

	// CompletedActivities counts every completed registration, including
	// those with no points awarded yet.
	CompletedActivities int `json:"completedActivities"`
}

// SummaryCache caches computed summaries per student. Implemented by the
// redis cache; a nil cache disables caching entirely.
type SummaryCache interface {
	Get(ctx context.Context, userID int64) (*PointsSummary, error)
	Set(ctx context.Context, userID int64, summary *PointsSummary) error
	Invalidate(ctx context.Context, userID int64) error
}

// GetPointsSummaryQuery requests the aggregate for the acting student.
type GetPointsSummaryQuery struct {
	Actor user.Actor
}

// GetPointsSummaryHandler handles GetPointsSummaryQuery.
type GetPointsSummaryHandler struct {
	registrationRepo registration.Repository
	cache            SummaryCache
}

// NewGetPointsSummaryHandler creates a new GetPointsSummaryHandler.
// cache may be nil when caching is disabled.
func NewGetPointsSummaryHandler(registrationRepo registration.Repository, cache SummaryCache) *GetPointsSummaryHandler {
	return &GetPointsSummaryHandler{registrationRepo: registrationRepo, cache: cache}
}

// Handle executes the points summary query.
func (h *GetPointsSummaryHandler) Handle(ctx context.Context, q GetPointsSummaryQuery) (*PointsSummary, error) {
	if !q.Actor.IsStudent() {
		return nil, shared.NewDomainError("points", "Summary", shared.ErrForbidden, "only students have a points summary")
	}

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, q.Actor.ID); err == nil && cached != nil {
			return cached, nil
		}
	}

	completed := registration.StatusCompleted
	regs, err := h.registrationRepo.List(ctx, registration.Filter{
		UserID: &q.Actor.ID,
		Status: &completed,
	})
	if err != nil {
		return nil, fmt.Errorf("points_summary: failed to list registrations: %w", err)
	}

	summary := Aggregate(regs)

	if h.cache != nil {
		_ = h.cache.Set(ctx, q.Actor.ID, summary)
	}
	return summary, nil
}

// Aggregate folds completed registrations into a summary.
//
// A completed registration without awarded points still counts toward
// CompletedActivities but contributes nothing to the total or the buckets.
// A registration that has points but no update timestamp contributes to the
// total only - it cannot be placed in a month. Both asymmetries mirror the
// reference computation and are pinned by tests.
func Aggregate(regs []*registration.Registration) *PointsSummary {
	total := 0
	buckets := make(map[string]int)

	for _, reg := range regs {
		if reg.PointsAwarded == nil {
			continue
		}
		total += *reg.PointsAwarded
		if reg.UpdatedAt != nil {
			key := timeutil.MonthKey(*reg.UpdatedAt)
			buckets[key] += *reg.PointsAwarded
		}
	}

	monthly := make([]MonthPoints, 0, len(buckets))
	for month, points := range buckets {
		monthly = append(monthly, MonthPoints{Month: month, Points: points})
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })

	return &PointsSummary{
		TotalPoints:         total,
		Rank:                RankFor(total),
		MonthlyPoints:       monthly,
		CompletedActivities: len(regs),
	}
}
