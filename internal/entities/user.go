package entities

import (
	"strings"
	"time"
)

type Role string

const (
	RoleCustomer        Role = "customer"
	RoleDeliveryPartner Role = "delivery_partner"
	RoleAdmin           Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDeliveryPartner, RoleAdmin:
		return true
	}
	return false
}

func (r Role) Display() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleDeliveryPartner:
		return "Delivery Partner"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}

type User struct {
	ID           int64
	Mobile       string
	Email        *string
	PasswordHash string
	FirstName    string
	LastName     string
	Address      string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName возвращает имя для отображения, при пустом имени - номер телефона.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Mobile
	}
	return name
}

func (u *User) Actor() Actor {
	return Actor{
		UserID: u.ID,
		Role:   u.Role,
		Name:   u.FullName(),
	}
}

type UserModify struct {
	ID           *int64
	Mobile       *string
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	Address      *string
	Role         *Role
	IsActive     *bool
}

type UserFilter struct {
	Role   *Role
	Search string
	Limit  uint64
	Offset uint64
}

// Actor - аутентифицированный пользователь, от имени которого выполняется операция.
type Actor struct {
	UserID int64
	Role   Role
	Name   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type UserDetail struct {
	User           User
	RecentBookings []Booking
	BookingsCount  int64
}

// ProfileUpdate - изменения профиля. Пустой Email удаляет адрес.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Email     string
	Address   string
}

type UserQuery struct {
	Role   *Role
	Search string
	Page   uint64
}

type UserPage struct {
	Users    []User
	Total    int64
	Page     uint64
	PageSize uint64
}
