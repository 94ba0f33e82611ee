package admin

import (
	"context"
	"fmt"
	"sort"
	"time"

	"themesjet/internal/auth"
	"themesjet/internal/config"
	"themesjet/internal/domain"
)

type Repository interface {
	SumCompletedTotals(ctx context.Context) (float64, error)
	SumCompletedTotalsSince(ctx context.Context, since time.Time) (float64, error)
	FindRecentCompleted(ctx context.Context, limit int) ([]domain.Order, error)
	FindRecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
	FindRecentUsersByRole(ctx context.Context, role string, limit int) ([]domain.User, error)
}

// chartFloor keeps bar scaling sane when every bucket is tiny (and avoids a
// divide by zero when there are no completed orders at all).
const chartFloor = 100

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type Service struct {
	repo       Repository
	authorizer auth.Authorizer
	cfg        config.DashboardConfig
	now        func() time.Time
}

func NewService(repo Repository, authorizer auth.Authorizer, cfg config.DashboardConfig) *Service {
	return &Service{
		repo:       repo,
		authorizer: authorizer,
		cfg:        cfg,
		now:        time.Now,
	}
}

// RevenueStats aggregates completed-order revenue: lifetime sum, the portion
// still inside the clearance window, the payout floored at zero, and the
// twelve-month chart.
func (s *Service) RevenueStats(ctx context.Context, identity auth.Identity) (*RevenueStatsResponse, error) {
	if err := s.authorizer.Require(identity, auth.CapViewDashboard); err != nil {
		return nil, err
	}

	lifetime, err := s.repo.SumCompletedTotals(ctx)
	if err != nil {
		return nil, err
	}

	since := s.now().Add(-s.cfg.ClearanceWindow)
	pending, err := s.repo.SumCompletedTotalsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	available := lifetime - pending
	if available < 0 {
		available = 0
	}

	recent, err := s.repo.FindRecentCompleted(ctx, s.cfg.ChartOrderLimit)
	if err != nil {
		return nil, err
	}

	return &RevenueStatsResponse{
		Lifetime:         lifetime,
		PendingClearance: pending,
		AvailablePayout:  available,
		Chart:            buildMonthlyChart(recent),
	}, nil
}

// buildMonthlyChart buckets orders by calendar month name, so the same month
// of different years merges into one bucket. All twelve labels are always
// present, in calendar order.
func buildMonthlyChart(orders []domain.Order) []MonthBucket {
	totals := make(map[string]float64, len(monthLabels))
	for _, order := range orders {
		totals[order.CreatedAt.Month().String()[:3]] += order.Total
	}

	maxTotal := 0.0
	for _, total := range totals {
		if total > maxTotal {
			maxTotal = total
		}
	}

	denominator := maxTotal
	if denominator < chartFloor {
		denominator = chartFloor
	}

	chart := make([]MonthBucket, 0, len(monthLabels))
	for _, label := range monthLabels {
		total := totals[label]
		chart = append(chart, MonthBucket{
			Month:  label,
			Total:  total,
			Height: total / denominator * 100,
		})
	}

	return chart
}

// Notifications merges the most recent orders and USER signups into one
// feed, newest first, truncated to the configured limit. On equal timestamps
// the sort is stable, so orders keep their place ahead of users.
func (s *Service) Notifications(ctx context.Context, identity auth.Identity) ([]Notification, error) {
	if err := s.authorizer.Require(identity, auth.CapViewDashboard); err != nil {
		return nil, err
	}

	limit := s.cfg.NotificationLimit

	orders, err := s.repo.FindRecentOrders(ctx, limit)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.FindRecentUsersByRole(ctx, domain.RoleUser, limit)
	if err != nil {
		return nil, err
	}

	notifications := make([]Notification, 0, len(orders)+len(users))
	for _, order := range orders {
		notifications = append(notifications, Notification{
			ID:    fmt.Sprintf("order-%d", order.ID),
			Title: "New order",
			Desc:  fmt.Sprintf("Order #%d for %.2f", order.ID, order.Total),
			Date:  order.CreatedAt,
			Type:  "order",
		})
	}
	for _, user := range users {
		notifications = append(notifications, Notification{
			ID:    fmt.Sprintf("user-%d", user.ID),
			Title: "New member",
			Desc:  fmt.Sprintf("%s joined", user.Name),
			Date:  user.CreatedAt,
			Type:  "user",
		})
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Date.After(notifications[j].Date)
	})

	if len(notifications) > limit {
		notifications = notifications[:limit]
	}

	return notifications, nil
}
