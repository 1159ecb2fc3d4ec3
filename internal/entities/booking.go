package entities

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAssigned  BookingStatus = "assigned"
	BookingStarted   BookingStatus = "started"
	BookingReached   BookingStatus = "reached"
	BookingCollected BookingStatus = "collected"
	BookingDelivered BookingStatus = "delivered"
	BookingCancelled BookingStatus = "cancelled"
)

// pipeline - линейная последовательность статусов без отмены.
var pipeline = []BookingStatus{
	BookingPending,
	BookingAssigned,
	BookingStarted,
	BookingReached,
	BookingCollected,
	BookingDelivered,
}

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) Display() string {
	switch s {
	case BookingPending:
		return "Pending"
	case BookingAssigned:
		return "Assigned"
	case BookingStarted:
		return "Started"
	case BookingReached:
		return "Reached"
	case BookingCollected:
		return "Collected"
	case BookingDelivered:
		return "Delivered"
	case BookingCancelled:
		return "Cancelled"
	}
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	return s == BookingCancelled || s.position() >= 0
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingDelivered || s == BookingCancelled
}

// IsAdvanceTarget - статусы, которые выставляет курьер (или администратор) через AdvanceStatus.
func (s BookingStatus) IsAdvanceTarget() bool {
	switch s {
	case BookingStarted, BookingReached, BookingCollected, BookingDelivered:
		return true
	}
	return false
}

// Next возвращает следующий статус конвейера. Для терминальных статусов ok = false.
func (s BookingStatus) Next() (BookingStatus, bool) {
	pos := s.position()
	if pos < 0 || pos+1 >= len(pipeline) {
		return "", false
	}
	return pipeline[pos+1], true
}

func (s BookingStatus) position() int {
	for i, st := range pipeline {
		if st == s {
			return i
		}
	}
	return -1
}

func BookingStatuses() []BookingStatus {
	return append(append([]BookingStatus(nil), pipeline...), BookingCancelled)
}

type Booking struct {
	ID                 int64
	CustomerID         int64
	DeliveryPartnerID  *int64
	PickupAddress      string
	DeliveryAddress    string
	CustomerNotes      string
	Status             BookingStatus
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	AssignedAt         *time.Time
	StartedAt          *time.Time
	ReachedAt          *time.Time
	CollectedAt        *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time

	Customer        *User
	DeliveryPartner *User
}

func (b *Booking) HasPartner() bool {
	return b.DeliveryPartnerID != nil
}

func (b *Booking) IsAssignedTo(userID int64) bool {
	return b.DeliveryPartnerID != nil && *b.DeliveryPartnerID == userID
}

// CanChat: курьер назначен и заказ в работе.
func (b *Booking) CanChat() bool {
	if !b.HasPartner() {
		return false
	}
	switch b.Status {
	case BookingAssigned, BookingStarted, BookingReached, BookingCollected:
		return true
	}
	return false
}

// Counterpart возвращает второго участника переписки. ok = false, если собеседника нет.
func (b *Booking) Counterpart(userID int64) (int64, bool) {
	if userID == b.CustomerID {
		if b.DeliveryPartnerID == nil {
			return 0, false
		}
		return *b.DeliveryPartnerID, true
	}
	return b.CustomerID, true
}

// StampFor возвращает указатель на временную метку, которую выставляет переход в status.
func (b *Booking) StampFor(status BookingStatus) **time.Time {
	switch status {
	case BookingAssigned:
		return &b.AssignedAt
	case BookingStarted:
		return &b.StartedAt
	case BookingReached:
		return &b.ReachedAt
	case BookingCollected:
		return &b.CollectedAt
	case BookingDelivered:
		return &b.DeliveredAt
	case BookingCancelled:
		return &b.CancelledAt
	}
	return nil
}

type BookingCreate struct {
	CustomerID      int64
	PickupAddress   string
	DeliveryAddress string
	CustomerNotes   string
}

// BookingModify - изменение записи при переходе статуса. nil поля не обновляются.
type BookingModify struct {
	ID                 *int64
	DeliveryPartnerID  *int64
	Status             *BookingStatus
	CancellationReason *string
	AssignedAt         *time.Time
	StartedAt          *time.Time
	ReachedAt          *time.Time
	CollectedAt        *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
}

type BookingFilter struct {
	CustomerID        *int64
	DeliveryPartnerID *int64
	Status            *BookingStatus
	Search            string
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
	Limit             uint64
	Offset            uint64
}

type BookingStatusLog struct {
	ID          int64
	BookingID   int64
	Status      BookingStatus
	ChangedByID *int64
	ChangedBy   string
	Notes       string
	CreatedAt   time.Time
}

// Capabilities - права пользователя на конкретный заказ, вычисляются один раз на запрос.
type Capabilities struct {
	CanView    bool
	CanCancel  bool
	CanAdvance bool
	CanAssign  bool
	CanChat    bool
}

func CapabilitiesFor(actor Actor, b *Booking) Capabilities {
	isCustomer := actor.Role == RoleCustomer && b.CustomerID == actor.UserID
	isPartner := actor.Role == RoleDeliveryPartner && b.IsAssignedTo(actor.UserID)
	isAdmin := actor.IsAdmin()

	caps := Capabilities{
		CanView: isAdmin || isCustomer || isPartner,
	}
	caps.CanCancel = isCustomer && !b.Status.IsTerminal()
	caps.CanAdvance = (isAdmin || isPartner) && b.HasPartner() && !b.Status.IsTerminal() && b.Status != BookingPending
	caps.CanAssign = isAdmin && b.Status == BookingPending
	caps.CanChat = caps.CanView && b.CanChat()
	return caps
}

type BookingDetail struct {
	Booking      Booking
	Logs         []BookingStatusLog
	Capabilities Capabilities
}

type BookingPage struct {
	Bookings []Booking
	Total    int64
	Page     uint64
	PageSize uint64
}

type BookingStats struct {
	Total     int64
	Pending   int64
	Assigned  int64
	Active    int64
	Delivered int64
	Cancelled int64
	Today     int64
}

type ReportRow struct {
	UserID int64
	Name   string
	Mobile string
	Count  int64
}

type Report struct {
	From         time.Time
	To           time.Time
	Stats        BookingStats
	TopPartners  []ReportRow
	TopCustomers []ReportRow
}

type Dashboard struct {
	Role           Role
	Stats          BookingStats
	RecentBookings []Booking
	UnreadMessages int64
	Users          map[Role]int64
}

// BookingQuery - параметры списка заказов со стороны клиента API.
type BookingQuery struct {
	Status *BookingStatus
	Search string
	Page   uint64
}
