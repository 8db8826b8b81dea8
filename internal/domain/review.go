package domain

import "time"

// Review is a customer testimonial. Reviews are submitted unapproved and
// only show on the public site after staff approval.
type Review struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	ReviewText    string
	Rating        int // 1..5
	IsApproved    bool
	CreatedAt     time.Time
}

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// RatingStats summarizes approved reviews for the public rating widget.
type RatingStats struct {
	AverageRating float64
	TotalReviews  int
	Distribution  map[int]int // star value -> count, always keyed 1..5
}
