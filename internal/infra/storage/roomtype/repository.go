package roomtype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/pkg/dbmetrics"
	"github.com/travelhub/hotel-booking-service/pkg/psqlbuilder"
)

// pq error code for unique_violation
const pqUniqueViolation = "23505"

var roomTypeColumns = []string{
	"id",
	"hotel_id",
	"name",
	"description",
	"base_price_per_night",
	"max_guests",
	"total_rooms",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository persists room types in PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a room type repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new room type.
func (r *Repository) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_types").
		Columns(
			"hotel_id",
			"name",
			"description",
			"base_price_per_night",
			"max_guests",
			"total_rooms",
			"is_active",
		).
		Values(
			rt.HotelID,
			rt.Name,
			rt.Description,
			rt.BasePricePerNight,
			rt.MaxGuests,
			rt.TotalRooms,
			rt.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rt.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rt.CreatedAt = createdAt.Time
	rt.UpdatedAt = updatedAt.Time

	return rt, nil
}

// GetByID fetches a room type by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomTypeColumns...).
		From("room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rt, err := scanRoomType(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room type: %v", ErrScanRow, err)
	}

	return rt, nil
}

// GetByHotelAndName fetches a hotel's room type by its display name.
// Bookings reference room types by name, matching the original schema.
func (r *Repository) GetByHotelAndName(ctx context.Context, hotelID int64, name string) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomTypeColumns...).
		From("room_types").
		Where(squirrel.Eq{"hotel_id": hotelID, "name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelAndName - build select query: %v", ErrBuildQuery, err)
	}

	rt, err := scanRoomType(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelAndName - scan room type: %v", ErrScanRow, err)
	}

	return rt, nil
}

// GetByHotelID lists a hotel's active room types.
func (r *Repository) GetByHotelID(ctx context.Context, hotelID int64) ([]*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomTypeColumns...).
		From("room_types").
		Where(squirrel.Eq{"hotel_id": hotelID, "is_active": true}).
		OrderBy("base_price_per_night ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roomTypes := make([]*domain.RoomType, 0)
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByHotelID - scan row: %v", ErrScanRow, err)
		}
		roomTypes = append(roomTypes, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - rows error: %v", ErrScanRow, err)
	}

	return roomTypes, nil
}

// Update overwrites the mutable fields of a room type and bumps updated_at.
func (r *Repository) Update(ctx context.Context, rt *domain.RoomType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("room_types").
		Set("name", rt.Name).
		Set("description", rt.Description).
		Set("base_price_per_night", rt.BasePricePerNight).
		Set("max_guests", rt.MaxGuests).
		Set("total_rooms", rt.TotalRooms).
		Set("is_active", rt.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rt.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomTypeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoomType(row rowScanner) (*domain.RoomType, error) {
	var rt domain.RoomType
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rt.ID,
		&rt.HotelID,
		&rt.Name,
		&rt.Description,
		&rt.BasePricePerNight,
		&rt.MaxGuests,
		&rt.TotalRooms,
		&rt.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rt.CreatedAt = createdAt.Time
	rt.UpdatedAt = updatedAt.Time

	return &rt, nil
}
