package notification

import (
	"context"
	"errors"
	"fmt"

	"food-delivery/internal/entities"
)

type Service struct {
	bookings BookingRepository
	sms      SMSSender
}

func New(bookings BookingRepository, sms SMSSender) *Service {
	return &Service{
		bookings: bookings,
		sms:      sms,
	}
}

// Notify рассылает SMS участникам заказа по событию жизненного цикла.
// Возвращает отправленные уведомления; ошибки отдельных отправок объединяются.
func (s *Service) Notify(ctx context.Context, event entities.BookingEvent) ([]entities.Notification, error) {
	booking, err := s.bookings.GetByID(ctx, event.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	notifications, err := compose(event, booking)
	if err != nil {
		return nil, err
	}

	sent := make([]entities.Notification, 0, len(notifications))
	var errs []error
	for _, n := range notifications {
		if err := s.sms.Send(ctx, n); err != nil {
			errs = append(errs, fmt.Errorf("send sms to %s: %w", n.Mobile, err))
			continue
		}
		sent = append(sent, n)
	}
	return sent, errors.Join(errs...)
}

func compose(event entities.BookingEvent, b *entities.Booking) ([]entities.Notification, error) {
	var result []entities.Notification
	toCustomer := func(text string) {
		if b.Customer != nil {
			result = append(result, entities.Notification{Mobile: b.Customer.Mobile, Text: text})
		}
	}
	toPartner := func(text string) {
		if b.DeliveryPartner != nil {
			result = append(result, entities.Notification{Mobile: b.DeliveryPartner.Mobile, Text: text})
		}
	}

	switch event.Type {
	case entities.BookingEventCreated:
		toCustomer(fmt.Sprintf("Your booking #%d has been created successfully.", b.ID))
	case entities.BookingEventAssigned:
		toPartner(fmt.Sprintf("New booking #%d assigned to you. Pickup: %s", b.ID, b.PickupAddress))
		toCustomer(fmt.Sprintf("Your booking #%d has been assigned to a delivery partner.", b.ID))
	case entities.BookingEventStatus:
		toCustomer(fmt.Sprintf("Your booking #%d status: %s", b.ID, event.Status.Display()))
	case entities.BookingEventDelivered:
		toCustomer(fmt.Sprintf("Your booking #%d has been delivered successfully.", b.ID))
	case entities.BookingEventCancelled:
		toPartner(fmt.Sprintf("Booking #%d has been cancelled by the customer.", b.ID))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, event.Type)
	}
	return result, nil
}
