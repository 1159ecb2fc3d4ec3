package booking

import (
	"food-delivery/internal/entities"

	"github.com/AlekSi/pointer"
)

func ToDomain(b *BookingDB) *entities.Booking {
	if b == nil {
		return nil
	}
	return &entities.Booking{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		DeliveryPartnerID:  b.DeliveryPartnerID,
		PickupAddress:      b.PickupAddress,
		DeliveryAddress:    b.DeliveryAddress,
		CustomerNotes:      b.CustomerNotes,
		Status:             entities.BookingStatus(b.Status),
		CancellationReason: b.CancellationReason,
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

// ToDomainWithParticipants дополняет заказ краткими данными заказчика и курьера.
func ToDomainWithParticipants(b *BookingDB, p *ParticipantsDB) *entities.Booking {
	booking := ToDomain(b)
	if booking == nil || p == nil {
		return booking
	}

	if p.CustomerMobile != nil {
		booking.Customer = &entities.User{
			ID:        b.CustomerID,
			Mobile:    *p.CustomerMobile,
			FirstName: pointer.GetString(p.CustomerFirstName),
			LastName:  pointer.GetString(p.CustomerLastName),
			Role:      entities.RoleCustomer,
		}
	}
	if b.DeliveryPartnerID != nil && p.PartnerMobile != nil {
		booking.DeliveryPartner = &entities.User{
			ID:        *b.DeliveryPartnerID,
			Mobile:    *p.PartnerMobile,
			FirstName: pointer.GetString(p.PartnerFirstName),
			LastName:  pointer.GetString(p.PartnerLastName),
			Role:      entities.RoleDeliveryPartner,
		}
	}
	return booking
}

func ToLogDomain(l *BookingStatusLogDB) *entities.BookingStatusLog {
	if l == nil {
		return nil
	}
	return &entities.BookingStatusLog{
		ID:          l.ID,
		BookingID:   l.BookingID,
		Status:      entities.BookingStatus(l.Status),
		ChangedByID: l.ChangedByID,
		ChangedBy:   pointer.GetString(l.ChangedBy),
		Notes:       l.Notes,
		CreatedAt:   l.CreatedAt,
	}
}

func ToStatsDomain(s *BookingStatsDB) *entities.BookingStats {
	if s == nil {
		return nil
	}
	return &entities.BookingStats{
		Total:     s.Total,
		Pending:   s.Pending,
		Assigned:  s.Assigned,
		Active:    s.Active,
		Delivered: s.Delivered,
		Cancelled: s.Cancelled,
		Today:     s.Today,
	}
}

func ToReportRowDomain(r *ReportRowDB) entities.ReportRow {
	u := entities.User{
		Mobile:    r.Mobile,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
	return entities.ReportRow{
		UserID: r.UserID,
		Name:   u.FullName(),
		Mobile: r.Mobile,
		Count:  r.Count,
	}
}
