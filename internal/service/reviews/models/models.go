package models

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/domain"
)

// SubmitReviewRequest is a new customer review.
type SubmitReviewRequest struct {
	CustomerName  string
	CustomerEmail string
	ReviewText    string
	Rating        int
}

// ReviewResponse is the service-level review view.
type ReviewResponse struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	ReviewText    string
	Rating        int
	IsApproved    bool
	CreatedAt     time.Time
}

// ReviewListResponse wraps a list of reviews.
type ReviewListResponse struct {
	Reviews []*ReviewResponse
	Total   int
}

// RatingStatsResponse is the public rating summary.
type RatingStatsResponse struct {
	AverageRating float64
	TotalReviews  int
	Distribution  map[int]int
}

// FromDomainReview converts a domain review.
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		ReviewText:    r.ReviewText,
		Rating:        r.Rating,
		IsApproved:    r.IsApproved,
		CreatedAt:     r.CreatedAt,
	}
}

// FromDomainReviewList converts a list of domain reviews.
func FromDomainReviewList(rs []*domain.Review) *ReviewListResponse {
	out := make([]*ReviewResponse, len(rs))
	for i, r := range rs {
		out[i] = FromDomainReview(r)
	}
	return &ReviewListResponse{Reviews: out, Total: len(out)}
}
