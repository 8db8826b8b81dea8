package review

import "errors"

var (
	// ErrReviewNotFound is returned when a review does not exist.
	ErrReviewNotFound = errors.New("review.repository: review not found")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("review.repository: failed to scan row")
)
