package report

import (
	"context"
	"fmt"
	"time"

	"food-delivery/internal/entities"
)

const (
	recentLimit      = 5
	topLimit         = 10
	defaultRangeDays = 30
	maxRange         = 366 * 24 * time.Hour
)

type Service struct {
	bookings BookingRepository
	users    UserRepository
	unread   UnreadCounter
	now      func() time.Time
}

func New(bookings BookingRepository, users UserRepository, unread UnreadCounter) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		unread:   unread,
		now:      time.Now,
	}
}

// WithClock подменяет источник времени.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Dashboard собирает сводку для главной страницы в зависимости от роли.
func (s *Service) Dashboard(ctx context.Context, actor entities.Actor) (*entities.Dashboard, error) {
	var filter entities.BookingFilter
	switch actor.Role {
	case entities.RoleCustomer:
		filter.CustomerID = &actor.UserID
	case entities.RoleDeliveryPartner:
		filter.DeliveryPartnerID = &actor.UserID
	case entities.RoleAdmin:
	default:
		return nil, ErrAccessDenied
	}

	stats, err := s.bookings.Stats(ctx, filter, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	filter.Limit = recentLimit
	recent, _, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}

	dashboard := &entities.Dashboard{
		Role:           actor.Role,
		Stats:          *stats,
		RecentBookings: recent,
	}

	if actor.IsAdmin() {
		dashboard.Users, err = s.users.CountByRole(ctx)
		if err != nil {
			return nil, fmt.Errorf("count users: %w", err)
		}
		return dashboard, nil
	}

	dashboard.UnreadMessages, err = s.unread.CountUnread(ctx, actor.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("count unread messages: %w", err)
	}
	return dashboard, nil
}

// Report - отчет администратора за период [from, to] по датам включительно.
// Без дат берутся последние 30 дней.
func (s *Service) Report(ctx context.Context, actor entities.Actor, from, to *time.Time) (*entities.Report, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	end := startOfDay(s.now()).AddDate(0, 0, 1)
	if to != nil {
		end = startOfDay(*to).AddDate(0, 0, 1)
	}
	start := end.AddDate(0, 0, -defaultRangeDays)
	if from != nil {
		start = startOfDay(*from)
	}

	if !start.Before(end) || end.Sub(start) > maxRange {
		return nil, ErrInvalidDateRange
	}

	stats, err := s.bookings.Stats(ctx, entities.BookingFilter{CreatedFrom: &start, CreatedTo: &end}, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	partners, err := s.bookings.TopPartners(ctx, start, end, topLimit)
	if err != nil {
		return nil, fmt.Errorf("top partners: %w", err)
	}

	customers, err := s.bookings.TopCustomers(ctx, start, end, topLimit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}

	return &entities.Report{
		From:         start,
		To:           end.AddDate(0, 0, -1),
		Stats:        *stats,
		TopPartners:  partners,
		TopCustomers: customers,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
