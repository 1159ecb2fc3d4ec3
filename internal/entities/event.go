package entities

import "time"

type BookingEventType string

const (
	BookingEventCreated   BookingEventType = "booking_created"
	BookingEventAssigned  BookingEventType = "booking_assigned"
	BookingEventStatus    BookingEventType = "booking_status_updated"
	BookingEventDelivered BookingEventType = "booking_delivered"
	BookingEventCancelled BookingEventType = "booking_cancelled"
)

func (t BookingEventType) String() string {
	return string(t)
}

// BookingEvent публикуется после фиксации транзакции перехода статуса.
type BookingEvent struct {
	ID                string           `json:"id"`
	Type              BookingEventType `json:"type"`
	BookingID         int64            `json:"booking_id"`
	Status            BookingStatus    `json:"status"`
	CustomerID        int64            `json:"customer_id"`
	DeliveryPartnerID *int64           `json:"delivery_partner_id,omitempty"`
	ActorID           *int64           `json:"actor_id,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	OccurredAt        time.Time        `json:"occurred_at"`
}

// Notification - готовое к отправке SMS.
type Notification struct {
	Mobile string
	Text   string
}
