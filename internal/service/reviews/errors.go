package reviews

import "errors"

var (
	// ErrReviewNotFound is returned when the review does not exist.
	ErrReviewNotFound = errors.New("reviews.service: review not found")

	// ErrInvalidInput is returned for malformed review submissions.
	ErrInvalidInput = errors.New("reviews.service: invalid input")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("reviews.service: internal error")
)
