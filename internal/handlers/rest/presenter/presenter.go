// Package presenter переводит доменные сущности в DTO ответов API.
package presenter

import (
	"time"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
)

const dateLayout = "2006-01-02"

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func User(u entities.User) dto.User {
	return dto.User{
		ID:        u.ID,
		Mobile:    u.Mobile,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Address:   optional(u.Address),
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func Users(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for _, u := range users {
		res = append(res, User(u))
	}
	return res
}

func userSummary(u *entities.User) *dto.UserSummary {
	if u == nil {
		return nil
	}
	return &dto.UserSummary{
		ID:       u.ID,
		FullName: u.FullName(),
		Mobile:   u.Mobile,
	}
}

func Booking(b entities.Booking) dto.Booking {
	return dto.Booking{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		Customer:           userSummary(b.Customer),
		DeliveryPartnerID:  b.DeliveryPartnerID,
		DeliveryPartner:    userSummary(b.DeliveryPartner),
		PickupAddress:      b.PickupAddress,
		DeliveryAddress:    b.DeliveryAddress,
		CustomerNotes:      optional(b.CustomerNotes),
		Status:             b.Status.String(),
		StatusDisplay:      b.Status.Display(),
		CancellationReason: optional(b.CancellationReason),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		AssignedAt:         b.AssignedAt,
		StartedAt:          b.StartedAt,
		ReachedAt:          b.ReachedAt,
		CollectedAt:        b.CollectedAt,
		DeliveredAt:        b.DeliveredAt,
		CancelledAt:        b.CancelledAt,
	}
}

func Bookings(bookings []entities.Booking) []dto.Booking {
	res := make([]dto.Booking, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, Booking(b))
	}
	return res
}

func BookingPage(p *entities.BookingPage) dto.BookingPage {
	return dto.BookingPage{
		Bookings: Bookings(p.Bookings),
		Total:    p.Total,
		Page:     int(p.Page),     //nolint:gosec // номер страницы ограничен размером выборки
		PageSize: int(p.PageSize), //nolint:gosec // из конфига
	}
}

func StatusLogs(logs []entities.BookingStatusLog) []dto.BookingStatusLog {
	res := make([]dto.BookingStatusLog, 0, len(logs))
	for _, l := range logs {
		res = append(res, dto.BookingStatusLog{
			Status:        l.Status.String(),
			StatusDisplay: l.Status.Display(),
			ChangedBy:     optional(l.ChangedBy),
			Notes:         optional(l.Notes),
			CreatedAt:     l.CreatedAt,
		})
	}
	return res
}

func Capabilities(c entities.Capabilities) dto.BookingCapabilities {
	return dto.BookingCapabilities{
		CanView:    c.CanView,
		CanCancel:  c.CanCancel,
		CanAdvance: c.CanAdvance,
		CanAssign:  c.CanAssign,
		CanChat:    c.CanChat,
	}
}

func BookingDetail(d *entities.BookingDetail) dto.BookingDetail {
	return dto.BookingDetail{
		Booking:      Booking(d.Booking),
		StatusLogs:   StatusLogs(d.Logs),
		Capabilities: Capabilities(d.Capabilities),
	}
}

func ChatMessage(m entities.ChatMessage) dto.ChatMessage {
	return dto.ChatMessage{
		ID:         m.ID,
		BookingID:  m.BookingID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		SenderName: m.SenderName,
		Message:    m.Message,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}

func ChatMessages(messages []entities.ChatMessage) []dto.ChatMessage {
	res := make([]dto.ChatMessage, 0, len(messages))
	for _, m := range messages {
		res = append(res, ChatMessage(m))
	}
	return res
}

func ChatEvent(e entities.ChatEvent) dto.ChatEvent {
	return dto.ChatEvent{
		Message:    e.Message,
		SenderID:   e.SenderID,
		SenderName: e.SenderName,
		MessageID:  e.MessageID,
		Timestamp:  e.Timestamp,
	}
}

func Session(s *entities.Session) dto.Session {
	return dto.Session{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      User(s.User),
	}
}

func Stats(s entities.BookingStats) dto.BookingStats {
	return dto.BookingStats{
		Total:     s.Total,
		Pending:   s.Pending,
		Assigned:  s.Assigned,
		Active:    s.Active,
		Delivered: s.Delivered,
		Cancelled: s.Cancelled,
		Today:     s.Today,
	}
}

func Dashboard(d *entities.Dashboard) dto.Dashboard {
	res := dto.Dashboard{
		Role:           d.Role.String(),
		Stats:          Stats(d.Stats),
		RecentBookings: Bookings(d.RecentBookings),
	}
	if d.Role == entities.RoleAdmin {
		users := make(map[string]int64, len(d.Users))
		for role, count := range d.Users {
			users[role.String()] = count
		}
		res.Users = &users
	} else {
		unread := d.UnreadMessages
		res.UnreadMessages = &unread
	}
	return res
}

func reportRows(rows []entities.ReportRow) []dto.ReportRow {
	res := make([]dto.ReportRow, 0, len(rows))
	for _, r := range rows {
		res = append(res, dto.ReportRow{
			UserID: r.UserID,
			Name:   r.Name,
			Mobile: r.Mobile,
			Count:  r.Count,
		})
	}
	return res
}

func Report(r *entities.Report) dto.Report {
	return dto.Report{
		From:         r.From.Format(dateLayout),
		To:           r.To.Format(dateLayout),
		Stats:        Stats(r.Stats),
		TopPartners:  reportRows(r.TopPartners),
		TopCustomers: reportRows(r.TopCustomers),
	}
}

// ParseDate разбирает дату вида 2026-01-31; пустая строка дает nil.
func ParseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil // параметр необязателен
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Activities(activities []entities.Activity) []dto.Activity {
	res := make([]dto.Activity, 0, len(activities))
	for _, a := range activities {
		res = append(res, dto.Activity{
			ID:          a.ID,
			Action:      a.Action.String(),
			Description: a.Description,
			IPAddress:   optional(a.IPAddress),
			CreatedAt:   a.CreatedAt,
		})
	}
	return res
}
