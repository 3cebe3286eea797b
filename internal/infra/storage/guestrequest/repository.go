package guestrequest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/pkg/dbmetrics"
	"github.com/travelhub/hotel-booking-service/pkg/psqlbuilder"
)

var requestColumns = []string{
	"id",
	"booking_id",
	"request_type",
	"details",
	"priority",
	"status",
	"assigned_to",
	"created_at",
	"updated_at",
	"completed_at",
}

// Repository persists guest requests in PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a guest request repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new guest request.
func (r *Repository) Create(ctx context.Context, req *domain.GuestRequest) (*domain.GuestRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guest_requests").
		Columns(
			"booking_id",
			"request_type",
			"details",
			"priority",
			"status",
			"assigned_to",
		).
		Values(
			req.BookingID,
			req.Type,
			req.Details,
			req.Priority,
			req.Status,
			req.AssignedTo,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID fetches a guest request by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.GuestRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("guest_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return req, nil
}

// GetByBookingID lists the guest requests attached to one booking.
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.GuestRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("guest_requests").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// GetByHotelID lists all guest requests across a hotel's bookings,
// urgent and fresh first.
func (r *Repository) GetByHotelID(ctx context.Context, hotelID int64) ([]*domain.GuestRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	prefixed := make([]string, len(requestColumns))
	for i, col := range requestColumns {
		prefixed[i] = "gr." + col
	}

	query, args, err := psqlbuilder.Select(prefixed...).
		From("guest_requests gr").
		Join("bookings b ON b.id = gr.booking_id").
		Where(squirrel.Eq{"b.hotel_id": hotelID}).
		OrderBy("CASE gr.priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END, gr.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// Update overwrites the staff-mutable fields of a guest request and bumps
// updated_at. CompletedAt is written as given (set when the request reaches
// completed, nil otherwise).
func (r *Repository) Update(ctx context.Context, req *domain.GuestRequest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guest_requests").
		Set("status", req.Status).
		Set("priority", req.Priority).
		Set("assigned_to", req.AssignedTo).
		Set("completed_at", req.CompletedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.GuestRequest, error) {
	var req domain.GuestRequest
	var createdAt, updatedAt, completedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.BookingID,
		&req.Type,
		&req.Details,
		&req.Priority,
		&req.Status,
		&req.AssignedTo,
		&createdAt,
		&updatedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time
	if completedAt.Valid {
		req.CompletedAt = &completedAt.Time
	}

	return &req, nil
}

func scanRequests(rows *sql.Rows) ([]*domain.GuestRequest, error) {
	requests := make([]*domain.GuestRequest, 0)

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}
