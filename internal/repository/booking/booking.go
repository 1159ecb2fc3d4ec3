package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/internal/repository"
	"food-delivery/internal/service/booking"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var bookingColumns = []string{
	"b.id", "b.customer_id", "b.delivery_partner_id", "b.pickup_address", "b.delivery_address",
	"b.customer_notes", "b.status", "b.cancellation_reason", "b.created_at", "b.updated_at",
	"b.assigned_at", "b.started_at", "b.reached_at", "b.collected_at", "b.delivered_at", "b.cancelled_at",
}

var participantColumns = []string{
	"c.mobile_number", "c.first_name", "c.last_name",
	"p.mobile_number", "p.first_name", "p.last_name",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bookingCreate entities.BookingCreate) (*entities.Booking, error) {
	query := `
		INSERT INTO bookings AS b (customer_id, pickup_address, delivery_address, customer_notes, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + strings.Join(bookingColumns, ", ")

	model, err := scanBooking(r.querier.QueryRow(
		ctx,
		query,
		bookingCreate.CustomerID,
		bookingCreate.PickupAddress,
		bookingCreate.DeliveryAddress,
		bookingCreate.CustomerNotes,
		entities.BookingPending.String(),
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository create error: %w", err)
	}
	return ToDomain(model), nil
}

// GetByID возвращает заказ вместе с краткими данными участников.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Booking, error) {
	builder := selectWithParticipants().Where(sq.Eq{"b.id": id})

	b, err := scanBookingWithParticipants(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository get error: %w", err)
	}
	return b, nil
}

// GetByIDForUpdate блокирует строку заказа до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Booking, error) {
	query := `SELECT ` + strings.Join(bookingColumns, ", ") + `
		FROM bookings b
		WHERE b.id = $1
		FOR UPDATE`

	model, err := scanBooking(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository get for update error: %w", err)
	}
	return ToDomain(model), nil
}

func (r *Repository) Update(ctx context.Context, bookingModify entities.BookingModify) (*entities.Booking, error) {
	if bookingModify.ID == nil {
		return nil, booking.ErrInvalidBookingID
	}

	builder := repository.QB.Update("bookings AS b")

	// опциональные поля
	if bookingModify.DeliveryPartnerID != nil {
		builder = builder.Set("delivery_partner_id", *bookingModify.DeliveryPartnerID)
	}
	if bookingModify.Status != nil {
		builder = builder.Set("status", bookingModify.Status.String())
	}
	if bookingModify.CancellationReason != nil {
		builder = builder.Set("cancellation_reason", *bookingModify.CancellationReason)
	}
	if bookingModify.AssignedAt != nil {
		builder = builder.Set("assigned_at", *bookingModify.AssignedAt)
	}
	if bookingModify.StartedAt != nil {
		builder = builder.Set("started_at", *bookingModify.StartedAt)
	}
	if bookingModify.ReachedAt != nil {
		builder = builder.Set("reached_at", *bookingModify.ReachedAt)
	}
	if bookingModify.CollectedAt != nil {
		builder = builder.Set("collected_at", *bookingModify.CollectedAt)
	}
	if bookingModify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *bookingModify.DeliveredAt)
	}
	if bookingModify.CancelledAt != nil {
		builder = builder.Set("cancelled_at", *bookingModify.CancelledAt)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"b.id": *bookingModify.ID}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", "))

	model, err := scanBooking(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}
	return ToDomain(model), nil
}

// AppendLog добавляет запись в журнал статусов. Записи журнала не изменяются и не удаляются.
func (r *Repository) AppendLog(ctx context.Context, logEntry entities.BookingStatusLog) (*entities.BookingStatusLog, error) {
	query := `
		INSERT INTO booking_status_logs (booking_id, status, changed_by_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.querier.QueryRow(
		ctx,
		query,
		logEntry.BookingID,
		logEntry.Status.String(),
		logEntry.ChangedByID,
		logEntry.Notes,
		logEntry.CreatedAt,
	).Scan(&logEntry.ID, &logEntry.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository append log error: %w", err)
	}
	return &logEntry, nil
}

// ListLogs возвращает журнал статусов в порядке добавления.
func (r *Repository) ListLogs(ctx context.Context, bookingID int64) ([]entities.BookingStatusLog, error) {
	query := `
		SELECT l.id, l.booking_id, l.status, l.changed_by_id,
			NULLIF(TRIM(COALESCE(u.first_name, '') || ' ' || COALESCE(u.last_name, '')), ''),
			l.notes, l.created_at
		FROM booking_status_logs l
		LEFT JOIN users u ON u.id = l.changed_by_id
		WHERE l.booking_id = $1
		ORDER BY l.created_at, l.id`

	rows, err := r.querier.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list logs error: %w", err)
	}
	defer rows.Close()

	logs := make([]entities.BookingStatusLog, 0, 6)
	for rows.Next() {
		var model BookingStatusLogDB
		err := rows.Scan(
			&model.ID,
			&model.BookingID,
			&model.Status,
			&model.ChangedByID,
			&model.ChangedBy,
			&model.Notes,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository list logs error: %w", err)
		}
		logs = append(logs, *ToLogDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository list logs error: %w", err)
	}
	return logs, nil
}

// List возвращает страницу заказов и общее количество по фильтру, новые сначала.
func (r *Repository) List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, int64, error) {
	where := filterCondition(filter)

	var total int64
	countBuilder := repository.QB.
		Select("COUNT(*)").
		From("bookings b").
		Join("users c ON c.id = b.customer_id").
		LeftJoin("users p ON p.id = b.delivery_partner_id").
		Where(where)
	if err := r.querier.QueryRowBuilder(ctx, countBuilder).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected booking repository count error: %w", err)
	}

	builder := selectWithParticipants().
		Where(where).
		OrderBy("b.created_at DESC", "b.id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	bookings, err := r.queryBookings(ctx, builder)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// ListPendingSince - заказы без курьера, созданные не позже before.
func (r *Repository) ListPendingSince(ctx context.Context, before time.Time, limit uint64) ([]entities.Booking, error) {
	builder := selectWithParticipants().
		Where(sq.Eq{"b.status": entities.BookingPending.String()}).
		Where(sq.LtOrEq{"b.created_at": before}).
		OrderBy("b.created_at").
		Limit(limit)

	return r.queryBookings(ctx, builder)
}

// Stats считает заказы по статусам в рамках фильтра. Today - созданные начиная с todayStart.
func (r *Repository) Stats(ctx context.Context, filter entities.BookingFilter, todayStart time.Time) (*entities.BookingStats, error) {
	builder := repository.QB.
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE b.status = 'pending')",
			"COUNT(*) FILTER (WHERE b.status = 'assigned')",
			"COUNT(*) FILTER (WHERE b.status IN ('started', 'reached', 'collected'))",
			"COUNT(*) FILTER (WHERE b.status = 'delivered')",
			"COUNT(*) FILTER (WHERE b.status = 'cancelled')",
		).
		Column(sq.Expr("COUNT(*) FILTER (WHERE b.created_at >= ?)", todayStart)).
		From("bookings b").
		Where(filterCondition(filter))

	var model BookingStatsDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(
		&model.Total,
		&model.Pending,
		&model.Assigned,
		&model.Active,
		&model.Delivered,
		&model.Cancelled,
		&model.Today,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository stats error: %w", err)
	}
	return ToStatsDomain(&model), nil
}

// TopPartners - курьеры с наибольшим числом доставленных заказов за период.
func (r *Repository) TopPartners(ctx context.Context, from, to time.Time, limit uint64) ([]entities.ReportRow, error) {
	builder := repository.QB.
		Select("u.id", "u.first_name", "u.last_name", "u.mobile_number", "COUNT(b.id) AS cnt").
		From("bookings b").
		Join("users u ON u.id = b.delivery_partner_id").
		Where(sq.Eq{"b.status": entities.BookingDelivered.String()}).
		Where(sq.GtOrEq{"b.created_at": from}).
		Where(sq.Lt{"b.created_at": to}).
		GroupBy("u.id").
		OrderBy("cnt DESC", "u.id").
		Limit(limit)

	return r.queryReportRows(ctx, builder)
}

// TopCustomers - заказчики с наибольшим числом заказов за период.
func (r *Repository) TopCustomers(ctx context.Context, from, to time.Time, limit uint64) ([]entities.ReportRow, error) {
	builder := repository.QB.
		Select("u.id", "u.first_name", "u.last_name", "u.mobile_number", "COUNT(b.id) AS cnt").
		From("bookings b").
		Join("users u ON u.id = b.customer_id").
		Where(sq.GtOrEq{"b.created_at": from}).
		Where(sq.Lt{"b.created_at": to}).
		GroupBy("u.id").
		OrderBy("cnt DESC", "u.id").
		Limit(limit)

	return r.queryReportRows(ctx, builder)
}

func (r *Repository) queryReportRows(ctx context.Context, builder sq.SelectBuilder) ([]entities.ReportRow, error) {
	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository report error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.ReportRow, 0, 10)
	for rows.Next() {
		var model ReportRowDB
		if err := rows.Scan(&model.UserID, &model.FirstName, &model.LastName, &model.Mobile, &model.Count); err != nil {
			return nil, fmt.Errorf("unexpected booking repository report error: %w", err)
		}
		result = append(result, ToReportRowDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository report error: %w", err)
	}
	return result, nil
}

func (r *Repository) queryBookings(ctx context.Context, builder sq.SelectBuilder) ([]entities.Booking, error) {
	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}
	defer rows.Close()

	bookings := make([]entities.Booking, 0, 20)
	for rows.Next() {
		b, err := scanBookingWithParticipants(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}
	return bookings, nil
}

func selectWithParticipants() sq.SelectBuilder {
	return repository.QB.
		Select(bookingColumns...).
		Columns(participantColumns...).
		From("bookings b").
		Join("users c ON c.id = b.customer_id").
		LeftJoin("users p ON p.id = b.delivery_partner_id")
}

func filterCondition(filter entities.BookingFilter) sq.And {
	where := sq.And{}
	if filter.CustomerID != nil {
		where = append(where, sq.Eq{"b.customer_id": *filter.CustomerID})
	}
	if filter.DeliveryPartnerID != nil {
		where = append(where, sq.Eq{"b.delivery_partner_id": *filter.DeliveryPartnerID})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"b.status": filter.Status.String()})
	}
	if filter.CreatedFrom != nil {
		where = append(where, sq.GtOrEq{"b.created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		where = append(where, sq.Lt{"b.created_at": *filter.CreatedTo})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		// поиск по номеру заказа или телефону участников
		pattern := "%" + repository.EscapeLike(search) + "%"
		or := sq.Or{
			sq.ILike{"c.mobile_number": pattern},
			sq.ILike{"p.mobile_number": pattern},
		}
		if id, err := strconv.ParseInt(strings.TrimPrefix(search, "#"), 10, 64); err == nil {
			or = append(or, sq.Eq{"b.id": id})
		}
		where = append(where, or)
	}
	return where
}

func scanBooking(row pgx.Row) (*BookingDB, error) {
	var model BookingDB
	err := row.Scan(bookingDest(&model)...)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func scanBookingWithParticipants(row pgx.Row) (*entities.Booking, error) {
	var model BookingDB
	var participants ParticipantsDB

	dest := append(bookingDest(&model),
		&participants.CustomerMobile,
		&participants.CustomerFirstName,
		&participants.CustomerLastName,
		&participants.PartnerMobile,
		&participants.PartnerFirstName,
		&participants.PartnerLastName,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return ToDomainWithParticipants(&model, &participants), nil
}

func bookingDest(model *BookingDB) []any {
	return []any{
		&model.ID,
		&model.CustomerID,
		&model.DeliveryPartnerID,
		&model.PickupAddress,
		&model.DeliveryAddress,
		&model.CustomerNotes,
		&model.Status,
		&model.CancellationReason,
		&model.CreatedAt,
		&model.UpdatedAt,
		&model.AssignedAt,
		&model.StartedAt,
		&model.ReachedAt,
		&model.CollectedAt,
		&model.DeliveredAt,
		&model.CancelledAt,
	}
}
