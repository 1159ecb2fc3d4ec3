package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/internal/service/user"
	"food-delivery/pkg/logger"

	"github.com/google/uuid"
)

const pendingBatchLimit = 500

type Booking struct {
	repository Repository
	users      UserRepository
	publisher  EventPublisher
	activity   ActivityRecorder
	txManager  TxManager
	log        serviceLogger
	policy     TransitionPolicy
	pageSize   uint64
}

func New(
	repository Repository,
	users UserRepository,
	publisher EventPublisher,
	activity ActivityRecorder,
	txManager TxManager,
	log serviceLogger,
	policy TransitionPolicy,
	pageSize uint64,
) *Booking {
	return &Booking{
		repository: repository,
		users:      users,
		publisher:  publisher,
		activity:   activity,
		txManager:  txManager,
		log:        log,
		policy:     policy,
		pageSize:   pageSize,
	}
}

func (b *Booking) Create(ctx context.Context, actor entities.Actor, bookingCreate entities.BookingCreate) (*entities.Booking, error) {
	if actor.Role != entities.RoleCustomer {
		return nil, ErrAccessDenied
	}

	bookingCreate.CustomerID = actor.UserID
	bookingCreate.PickupAddress = strings.TrimSpace(bookingCreate.PickupAddress)
	bookingCreate.DeliveryAddress = strings.TrimSpace(bookingCreate.DeliveryAddress)
	bookingCreate.CustomerNotes = strings.TrimSpace(bookingCreate.CustomerNotes)
	if isBlank(bookingCreate.PickupAddress) || isBlank(bookingCreate.DeliveryAddress) {
		return nil, ErrMissingRequiredFields
	}

	var created *entities.Booking
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := b.repository.Create(ctx, bookingCreate)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		err = b.appendLog(ctx, booking, &actor.UserID, "Booking created", booking.CreatedAt)
		if err != nil {
			return err
		}

		created = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	transitionsTotal.WithLabelValues(created.Status.String()).Inc()
	b.publish(ctx, entities.BookingEventCreated, created, &actor.UserID, "")
	b.activity.Record(ctx, actor.UserID, entities.ActivityBookingCreate, fmt.Sprintf("Created booking #%d", created.ID))
	return created, nil
}

// Get возвращает заказ с журналом статусов и правами пользователя на него.
func (b *Booking) Get(ctx context.Context, actor entities.Actor, bookingID int64) (*entities.BookingDetail, error) {
	booking, caps, err := b.getForActor(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}

	logs, err := b.repository.ListLogs(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking logs: %w", err)
	}

	return &entities.BookingDetail{
		Booking:      *booking,
		Logs:         logs,
		Capabilities: caps,
	}, nil
}

// GetForActor проверяет право просмотра по актуальной записи заказа.
func (b *Booking) GetForActor(ctx context.Context, actor entities.Actor, bookingID int64) (*entities.Booking, entities.Capabilities, error) {
	return b.getForActor(ctx, actor, bookingID)
}

// History - журнал статусов, последние изменения первыми.
func (b *Booking) History(ctx context.Context, actor entities.Actor, bookingID int64) ([]entities.BookingStatusLog, error) {
	if _, _, err := b.getForActor(ctx, actor, bookingID); err != nil {
		return nil, err
	}

	logs, err := b.repository.ListLogs(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking logs: %w", err)
	}

	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

// List возвращает заказы в зоне видимости пользователя: заказчик - свои, курьер - назначенные, администратор - все.
func (b *Booking) List(ctx context.Context, actor entities.Actor, query entities.BookingQuery) (*entities.BookingPage, error) {
	if query.Status != nil && !query.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	page := max(query.Page, 1)
	filter := entities.BookingFilter{
		Status: query.Status,
		Limit:  b.pageSize,
		Offset: (page - 1) * b.pageSize,
	}

	switch actor.Role {
	case entities.RoleCustomer:
		filter.CustomerID = &actor.UserID
	case entities.RoleDeliveryPartner:
		filter.DeliveryPartnerID = &actor.UserID
	case entities.RoleAdmin:
		filter.Search = strings.TrimSpace(query.Search)
	default:
		return nil, ErrAccessDenied
	}

	bookings, total, err := b.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return &entities.BookingPage{
		Bookings: bookings,
		Total:    total,
		Page:     page,
		PageSize: b.pageSize,
	}, nil
}

// Assign назначает курьера на заказ в статусе pending.
func (b *Booking) Assign(ctx context.Context, actor entities.Actor, bookingID, partnerID int64) (*entities.Booking, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}
	if !isValidID(partnerID) {
		return nil, ErrInvalidPartner
	}

	partner, err := b.users.GetByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidPartner
		}
		return nil, fmt.Errorf("get delivery partner: %w", err)
	}
	if partner.Role != entities.RoleDeliveryPartner || !partner.IsActive {
		return nil, ErrInvalidPartner
	}

	var updated *entities.Booking
	err = b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}

		if current.Status.IsTerminal() {
			return ErrBookingTerminal
		}
		if current.Status != entities.BookingPending {
			return ErrBookingNotPending
		}

		now := time.Now().UTC()
		status := entities.BookingAssigned
		modify := entities.BookingModify{
			ID:                &bookingID,
			DeliveryPartnerID: &partner.ID,
			Status:            &status,
		}
		stampOnce(current, &modify, status, now)

		updated, err = b.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		return b.appendLog(ctx, updated, &actor.UserID, "Assigned to "+partner.FullName(), now)
	})
	if err != nil {
		return nil, err
	}

	transitionsTotal.WithLabelValues(updated.Status.String()).Inc()
	b.publish(ctx, entities.BookingEventAssigned, updated, &actor.UserID, "")
	b.activity.Record(ctx, actor.UserID, entities.ActivityBookingAssign,
		fmt.Sprintf("Assigned booking #%d to %s", updated.ID, partner.FullName()))
	return updated, nil
}

// AdvanceStatus переводит заказ по конвейеру доставки от имени курьера или администратора.
func (b *Booking) AdvanceStatus(
	ctx context.Context,
	actor entities.Actor,
	bookingID int64,
	target entities.BookingStatus,
	notes string,
) (*entities.Booking, error) {
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}
	if !target.IsAdvanceTarget() {
		return nil, ErrInvalidStatus
	}
	notes = strings.TrimSpace(notes)

	var updated *entities.Booking
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}

		if !actor.IsAdmin() && !(actor.Role == entities.RoleDeliveryPartner && current.IsAssignedTo(actor.UserID)) {
			return ErrAccessDenied
		}
		if current.Status.IsTerminal() {
			return ErrBookingTerminal
		}
		if current.Status == entities.BookingPending || !current.HasPartner() {
			return ErrPartnerNotAssigned
		}
		if !b.policy.allows(current.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}

		now := time.Now().UTC()
		modify := entities.BookingModify{
			ID:     &bookingID,
			Status: &target,
		}
		stampOnce(current, &modify, target, now)

		updated, err = b.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		return b.appendLog(ctx, updated, &actor.UserID, notes, now)
	})
	if err != nil {
		return nil, err
	}

	eventType := entities.BookingEventStatus
	if updated.Status == entities.BookingDelivered {
		eventType = entities.BookingEventDelivered
	}

	transitionsTotal.WithLabelValues(updated.Status.String()).Inc()
	b.publish(ctx, eventType, updated, &actor.UserID, notes)
	b.activity.Record(ctx, actor.UserID, entities.ActivityBookingStatus,
		fmt.Sprintf("Booking #%d status changed to %s", updated.ID, updated.Status.Display()))
	return updated, nil
}

// Cancel отменяет заказ по запросу заказчика-владельца.
func (b *Booking) Cancel(ctx context.Context, actor entities.Actor, bookingID int64, reason string) (*entities.Booking, error) {
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}
	reason = strings.TrimSpace(reason)

	var updated *entities.Booking
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}

		if actor.Role != entities.RoleCustomer || current.CustomerID != actor.UserID {
			return ErrAccessDenied
		}
		if current.Status.IsTerminal() {
			return ErrBookingTerminal
		}

		now := time.Now().UTC()
		status := entities.BookingCancelled
		modify := entities.BookingModify{
			ID:                 &bookingID,
			Status:             &status,
			CancellationReason: &reason,
		}
		stampOnce(current, &modify, status, now)

		updated, err = b.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		return b.appendLog(ctx, updated, &actor.UserID, reason, now)
	})
	if err != nil {
		return nil, err
	}

	transitionsTotal.WithLabelValues(updated.Status.String()).Inc()
	b.publish(ctx, entities.BookingEventCancelled, updated, &actor.UserID, reason)
	b.activity.Record(ctx, actor.UserID, entities.ActivityBookingCancel, fmt.Sprintf("Cancelled booking #%d", updated.ID))
	return updated, nil
}

// PendingOlderThan возвращает заказы, ожидающие назначения дольше age.
func (b *Booking) PendingOlderThan(ctx context.Context, age time.Duration) ([]entities.Booking, error) {
	bookings, err := b.repository.ListPendingSince(ctx, time.Now().UTC().Add(-age), pendingBatchLimit)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("list pending bookings timed out: %w", err)
		}
		return nil, fmt.Errorf("list pending bookings: %w", err)
	}
	return bookings, nil
}

func (b *Booking) getForActor(ctx context.Context, actor entities.Actor, bookingID int64) (*entities.Booking, entities.Capabilities, error) {
	if !isValidID(bookingID) {
		return nil, entities.Capabilities{}, ErrInvalidBookingID
	}

	booking, err := b.repository.GetByID(ctx, bookingID)
	if err != nil {
		return nil, entities.Capabilities{}, fmt.Errorf("get booking: %w", err)
	}

	caps := entities.CapabilitiesFor(actor, booking)
	if !caps.CanView {
		return nil, entities.Capabilities{}, ErrAccessDenied
	}
	return booking, caps, nil
}

func (b *Booking) appendLog(ctx context.Context, booking *entities.Booking, actorID *int64, notes string, at time.Time) error {
	_, err := b.repository.AppendLog(ctx, entities.BookingStatusLog{
		BookingID:   booking.ID,
		Status:      booking.Status,
		ChangedByID: actorID,
		Notes:       notes,
		CreatedAt:   at,
	})
	if err != nil {
		return fmt.Errorf("append booking log: %w", err)
	}
	return nil
}

// publish отправляет событие после фиксации транзакции. Ошибка доставки не откатывает переход.
func (b *Booking) publish(
	ctx context.Context,
	eventType entities.BookingEventType,
	booking *entities.Booking,
	actorID *int64,
	notes string,
) {
	event := entities.BookingEvent{
		ID:                uuid.NewString(),
		Type:              eventType,
		BookingID:         booking.ID,
		Status:            booking.Status,
		CustomerID:        booking.CustomerID,
		DeliveryPartnerID: booking.DeliveryPartnerID,
		ActorID:           actorID,
		Notes:             notes,
		OccurredAt:        time.Now().UTC(),
	}

	if err := b.publisher.Publish(ctx, event); err != nil {
		b.log.Warn("publish booking event",
			logger.NewField("booking_id", booking.ID),
			logger.NewField("event_type", eventType.String()),
			logger.NewField("error", err),
		)
	}
}

// stampOnce выставляет временную метку перехода, только если она еще не задана.
func stampOnce(current *entities.Booking, modify *entities.BookingModify, status entities.BookingStatus, now time.Time) {
	stamp := current.StampFor(status)
	if stamp == nil || *stamp != nil {
		return
	}

	switch status {
	case entities.BookingAssigned:
		modify.AssignedAt = &now
	case entities.BookingStarted:
		modify.StartedAt = &now
	case entities.BookingReached:
		modify.ReachedAt = &now
	case entities.BookingCollected:
		modify.CollectedAt = &now
	case entities.BookingDelivered:
		modify.DeliveredAt = &now
	case entities.BookingCancelled:
		modify.CancelledAt = &now
	}
}
