package booking

import "time"

type BookingDB struct {
	ID                 int64
	CustomerID         int64
	DeliveryPartnerID  *int64
	PickupAddress      string
	DeliveryAddress    string
	CustomerNotes      string
	Status             string
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	AssignedAt         *time.Time
	StartedAt          *time.Time
	ReachedAt          *time.Time
	CollectedAt        *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
}

// ParticipantsDB - данные участников из LEFT JOIN users, поэтому все поля nullable.
type ParticipantsDB struct {
	CustomerMobile    *string
	CustomerFirstName *string
	CustomerLastName  *string
	PartnerMobile     *string
	PartnerFirstName  *string
	PartnerLastName   *string
}

type BookingStatusLogDB struct {
	ID          int64
	BookingID   int64
	Status      string
	ChangedByID *int64
	ChangedBy   *string
	Notes       string
	CreatedAt   time.Time
}

type BookingStatsDB struct {
	Total     int64
	Pending   int64
	Assigned  int64
	Active    int64
	Delivered int64
	Cancelled int64
	Today     int64
}

type ReportRowDB struct {
	UserID    int64
	FirstName string
	LastName  string
	Mobile    string
	Count     int64
}
