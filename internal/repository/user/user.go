package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"food-delivery/internal/entities"
	"food-delivery/internal/repository"
	"food-delivery/internal/service/user"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var userColumns = []string{
	"id", "mobile_number", "email", "password_hash", "first_name", "last_name",
	"address", "role", "is_active", "created_at", "updated_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.Mobile == nil || userModify.Role == nil {
		return nil, errors.New("user repository create: mobile and role are required")
	}

	builder := repository.QB.
		Insert("users").
		SetMap(insertValues(userModify)).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	u, err := scanUser(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrConflict
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}
	return u, nil
}

func (r *Repository) Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil {
		return nil, user.ErrInvalidUserID
	}

	builder := repository.QB.Update("users")

	// опциональные поля
	if userModify.Mobile != nil {
		builder = builder.Set("mobile_number", *userModify.Mobile)
	}
	if userModify.Email != nil {
		builder = builder.Set("email", nullIfEmpty(*userModify.Email))
	}
	if userModify.PasswordHash != nil {
		builder = builder.Set("password_hash", *userModify.PasswordHash)
	}
	if userModify.FirstName != nil {
		builder = builder.Set("first_name", *userModify.FirstName)
	}
	if userModify.LastName != nil {
		builder = builder.Set("last_name", *userModify.LastName)
	}
	if userModify.Address != nil {
		builder = builder.Set("address", *userModify.Address)
	}
	if userModify.Role != nil {
		builder = builder.Set("role", userModify.Role.String())
	}
	if userModify.IsActive != nil {
		builder = builder.Set("is_active", *userModify.IsActive)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *userModify.ID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	u, err := scanUser(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrConflict
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}
	return u, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetByMobile(ctx context.Context, mobile string) (*entities.User, error) {
	return r.getBy(ctx, sq.Eq{"mobile_number": mobile})
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getBy(ctx, sq.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *Repository) getBy(ctx context.Context, where sq.Sqlizer) (*entities.User, error) {
	builder := repository.QB.
		Select(userColumns...).
		From("users").
		Where(where)

	u, err := scanUser(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}
	return u, nil
}

// List возвращает страницу пользователей и общее количество по фильтру.
func (r *Repository) List(ctx context.Context, filter entities.UserFilter) ([]entities.User, int64, error) {
	where := sq.And{}
	if filter.Role != nil {
		where = append(where, sq.Eq{"role": filter.Role.String()})
	}
	if filter.Search != "" {
		pattern := "%" + repository.EscapeLike(filter.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"mobile_number": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
		})
	}

	var total int64
	err := r.querier.QueryRowBuilder(ctx,
		repository.QB.Select("COUNT(*)").From("users").Where(where),
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected user repository count error: %w", err)
	}

	builder := repository.QB.
		Select(userColumns...).
		From("users").
		Where(where).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	users, err := r.queryUsers(ctx, builder)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListActivePartners - активные курьеры по имени, для назначения на заказ.
func (r *Repository) ListActivePartners(ctx context.Context) ([]entities.User, error) {
	builder := repository.QB.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"role": entities.RoleDeliveryPartner.String(), "is_active": true}).
		OrderBy("first_name", "last_name", "id")

	return r.queryUsers(ctx, builder)
}

func (r *Repository) CountByRole(ctx context.Context) (map[entities.Role]int64, error) {
	rows, err := r.querier.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository count by role error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.Role]int64, 3)
	for rows.Next() {
		var rc RoleCountDB
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, fmt.Errorf("unexpected user repository count by role error: %w", err)
		}
		counts[entities.Role(rc.Role)] = rc.Count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository count by role error: %w", err)
	}
	return counts, nil
}

func (r *Repository) queryUsers(ctx context.Context, builder sq.SelectBuilder) ([]entities.User, error) {
	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]UserDB, 0, 16)
	for rows.Next() {
		var model UserDB
		if err := scanInto(rows, &model); err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	return ToDomainList(models), nil
}

func insertValues(userModify entities.UserModify) map[string]any {
	values := map[string]any{
		"mobile_number": *userModify.Mobile,
		"role":          userModify.Role.String(),
	}

	if userModify.Email != nil {
		values["email"] = nullIfEmpty(*userModify.Email)
	}
	if userModify.PasswordHash != nil {
		values["password_hash"] = *userModify.PasswordHash
	}
	if userModify.FirstName != nil {
		values["first_name"] = *userModify.FirstName
	}
	if userModify.LastName != nil {
		values["last_name"] = *userModify.LastName
	}
	if userModify.Address != nil {
		values["address"] = *userModify.Address
	}
	if userModify.IsActive != nil {
		values["is_active"] = *userModify.IsActive
	}
	return values
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var model UserDB
	if err := scanInto(row, &model); err != nil {
		return nil, err
	}
	return ToDomain(&model), nil
}

func scanInto(row pgx.Row, model *UserDB) error {
	return row.Scan(
		&model.ID,
		&model.Mobile,
		&model.Email,
		&model.PasswordHash,
		&model.FirstName,
		&model.LastName,
		&model.Address,
		&model.Role,
		&model.IsActive,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
