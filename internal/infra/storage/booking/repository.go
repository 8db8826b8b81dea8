package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/outpost-paintball/booking-service/internal/domain"
	"github.com/outpost-paintball/booking-service/pkg/psqlbuilder"
)

const bookingColumns = `id, customer_name, email, phone, service, booking_date, time_slot,
group_size, special_requests, emergency_contact, experience,
total_amount, paid_amount, remaining_balance, payment_method, payment_receipt_url,
status, created_at, updated_at`

// Repository persists bookings in postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in the generated id and
// timestamps. There is no uniqueness constraint on
// (booking_date, time_slot): two racing clients can both book the same
// slot and staff resolve the collision manually.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_name",
			"email",
			"phone",
			"service",
			"booking_date",
			"time_slot",
			"group_size",
			"special_requests",
			"emergency_contact",
			"experience",
			"total_amount",
			"paid_amount",
			"remaining_balance",
			"payment_method",
			"payment_receipt_url",
			"status",
		).
		Values(
			b.CustomerName,
			b.Email,
			b.Phone,
			b.Service,
			b.BookingDate,
			b.TimeSlot,
			b.GroupSize,
			b.SpecialRequests,
			b.EmergencyContact,
			b.Experience,
			b.TotalAmount,
			b.PaidAmount,
			b.RemainingBalance,
			b.PaymentMethod,
			b.PaymentReceiptURL,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches a booking by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListWithFilter fetches bookings with optional date-range and status
// filters, newest first. Without an explicit status, inactive bookings
// (cancelled, no-show) are excluded unless IncludeInactive is set.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date DESC, created_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetOccupancy fetches the (date, time_slot, status) projection of every
// booking. Over-fetching the whole table is the accepted strategy; the
// occupancy index folds and filters the result.
func (r *Repository) GetOccupancy(ctx context.Context) ([]domain.OccupancyRecord, error) {
	query, args, err := psqlbuilder.Select(
		"to_char(booking_date, 'YYYY-MM-DD')",
		"time_slot",
		"status",
	).
		From("bookings").
		OrderBy("booking_date ASC, time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupancy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupancy - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.OccupancyRecord, 0)
	for rows.Next() {
		var rec domain.OccupancyRecord
		if err := rows.Scan(&rec.Date, &rec.TimeSlot, &rec.Status); err != nil {
			return nil, fmt.Errorf("%w: GetOccupancy - scan row: %v", ErrScanRow, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupancy - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// UpdateStatus sets a booking's status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking permanently. Staff normally cancel instead to
// keep history; delete exists for cleaning up junk records.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking scans one row using the bookingColumns order.
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.CustomerName,
		&b.Email,
		&b.Phone,
		&b.Service,
		&b.BookingDate,
		&b.TimeSlot,
		&b.GroupSize,
		&b.SpecialRequests,
		&b.EmergencyContact,
		&b.Experience,
		&b.TotalAmount,
		&b.PaidAmount,
		&b.RemainingBalance,
		&b.PaymentMethod,
		&b.PaymentReceiptURL,
		&b.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
