package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/outpost-paintball/booking-service/internal/domain"
	"github.com/outpost-paintball/booking-service/pkg/dbmetrics"
	"github.com/outpost-paintball/booking-service/pkg/psqlbuilder"
)

// DBExecutor is reused from dbmetrics, same as the booking repository.
type DBExecutor = dbmetrics.DBExecutor

const reviewColumns = "id, customer_name, customer_email, review_text, rating, is_approved, created_at"

// Repository persists customer reviews in postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a review repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a review. New reviews are always unapproved.
func (r *Repository) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	query, args, err := psqlbuilder.Insert("reviews").
		Columns("customer_name", "customer_email", "review_text", "rating", "is_approved").
		Values(rev.CustomerName, rev.CustomerEmail, rev.ReviewText, rev.Rating, false).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&rev.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rev.IsApproved = false
	rev.CreatedAt = createdAt.Time

	return rev, nil
}

// List fetches reviews, newest first. With approvedOnly set, unapproved
// submissions are hidden (the public testimonial feed).
func (r *Repository) List(ctx context.Context, approvedOnly bool) ([]*domain.Review, error) {
	selectBuilder := psqlbuilder.Select(reviewColumns).
		From("reviews").
		OrderBy("created_at DESC")

	if approvedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_approved": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		var createdAt sql.NullTime

		err := rows.Scan(
			&rev.ID,
			&rev.CustomerName,
			&rev.CustomerEmail,
			&rev.ReviewText,
			&rev.Rating,
			&rev.IsApproved,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		rev.CreatedAt = createdAt.Time
		reviews = append(reviews, &rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// ApprovedRatings fetches the rating values of approved reviews, for the
// public rating stats widget.
func (r *Repository) ApprovedRatings(ctx context.Context) ([]int, error) {
	query, args, err := psqlbuilder.Select("rating").
		From("reviews").
		Where(squirrel.Eq{"is_approved": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ApprovedRatings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ApprovedRatings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ratings := make([]int, 0)
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, fmt.Errorf("%w: ApprovedRatings - scan row: %v", ErrScanRow, err)
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ApprovedRatings - rows error: %v", ErrScanRow, err)
	}

	return ratings, nil
}

// SetApproved flips a review's approval flag.
func (r *Repository) SetApproved(ctx context.Context, id int64, approved bool) error {
	query, args, err := psqlbuilder.Update("reviews").
		Set("is_approved", approved).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetApproved - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetApproved - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetApproved - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// Delete removes a review permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("reviews").
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
		return ErrReviewNotFound
	}

	return nil
}
