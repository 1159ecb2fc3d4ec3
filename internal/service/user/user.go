package user

import (
	"context"
	"fmt"
	"strings"

	"food-delivery/internal/entities"
)

const (
	defaultPageSize    = 20
	recentBookingLimit = 10
)

type User struct {
	repository Repository
	bookings   BookingRepository
	activity   ActivityRecorder
	pageSize   uint64
}

func New(repository Repository, bookings BookingRepository, activity ActivityRecorder, pageSize uint64) *User {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return &User{
		repository: repository,
		bookings:   bookings,
		activity:   activity,
		pageSize:   pageSize,
	}
}

func (u *User) Profile(ctx context.Context, actor entities.Actor) (*entities.User, error) {
	return u.repository.GetByID(ctx, actor.UserID)
}

// UpdateProfile меняет имя, email и адрес текущего пользователя. Роль и телефон не меняются.
func (u *User) UpdateProfile(ctx context.Context, actor entities.Actor, update entities.ProfileUpdate) (*entities.User, error) {
	update.FirstName = strings.TrimSpace(update.FirstName)
	update.LastName = strings.TrimSpace(update.LastName)
	update.Email = strings.ToLower(strings.TrimSpace(update.Email))
	update.Address = strings.TrimSpace(update.Address)

	if !isValidName(update.FirstName) || !isValidName(update.LastName) {
		return nil, ErrInvalidName
	}
	if update.Email != "" && !isValidEmail(update.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidAddress(update.Address) {
		return nil, ErrInvalidAddress
	}

	updated, err := u.repository.Update(ctx, entities.UserModify{
		ID:        &actor.UserID,
		FirstName: &update.FirstName,
		LastName:  &update.LastName,
		Email:     &update.Email,
		Address:   &update.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	u.activity.Record(ctx, actor.UserID, entities.ActivityProfileUpdate, "Profile updated")
	return updated, nil
}

func (u *User) List(ctx context.Context, actor entities.Actor, query entities.UserQuery) (*entities.UserPage, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	if query.Role != nil && !query.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	page := max(query.Page, 1)
	users, total, err := u.repository.List(ctx, entities.UserFilter{
		Role:   query.Role,
		Search: strings.TrimSpace(query.Search),
		Limit:  u.pageSize,
		Offset: (page - 1) * u.pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &entities.UserPage{
		Users:    users,
		Total:    total,
		Page:     page,
		PageSize: u.pageSize,
	}, nil
}

// Detail возвращает пользователя с последними заказами: для заказчика - созданные, для курьера - назначенные.
func (u *User) Detail(ctx context.Context, actor entities.Actor, userID int64) (*entities.UserDetail, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}

	found, err := u.repository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	detail := &entities.UserDetail{User: *found}

	filter := entities.BookingFilter{Limit: recentBookingLimit}
	switch found.Role {
	case entities.RoleCustomer:
		filter.CustomerID = &found.ID
	case entities.RoleDeliveryPartner:
		filter.DeliveryPartnerID = &found.ID
	default:
		return detail, nil
	}

	detail.RecentBookings, detail.BookingsCount, err = u.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return detail, nil
}

func (u *User) Partners(ctx context.Context, actor entities.Actor) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	partners, err := u.repository.ListActivePartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return partners, nil
}
