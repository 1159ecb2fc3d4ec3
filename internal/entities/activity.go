package entities

import "time"

type ActivityAction string

const (
	ActivityLogin         ActivityAction = "login"
	ActivitySignup        ActivityAction = "signup"
	ActivityProfileUpdate ActivityAction = "profile_update"
	ActivityBookingCreate ActivityAction = "booking_create"
	ActivityBookingAssign ActivityAction = "booking_assign"
	ActivityBookingStatus ActivityAction = "booking_status"
	ActivityBookingCancel ActivityAction = "booking_cancel"
)

func (a ActivityAction) String() string {
	return string(a)
}

type Activity struct {
	ID          int64
	UserID      *int64
	Action      ActivityAction
	Description string
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}

// RequestMeta - данные клиента для журнала действий.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
