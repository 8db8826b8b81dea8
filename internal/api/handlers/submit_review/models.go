package submit_review

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/service/reviews/models"
)

// SubmitReviewRequest HTTP request model
type SubmitReviewRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	ReviewText    string `json:"reviewText"`
	Rating        int    `json:"rating"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID            int64  `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	ReviewText    string `json:"reviewText"`
	Rating        int    `json:"rating"`
	IsApproved    bool   `json:"isApproved"`
	CreatedAt     string `json:"createdAt"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *SubmitReviewRequest) ToServiceRequest() *models.SubmitReviewRequest {
	return &models.SubmitReviewRequest{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		ReviewText:    r.ReviewText,
		Rating:        r.Rating,
	}
}

// FromServiceResponse converts the service response into the HTTP model.
func FromServiceResponse(resp *models.ReviewResponse) *ReviewResponse {
	return &ReviewResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		ReviewText:    resp.ReviewText,
		Rating:        resp.Rating,
		IsApproved:    resp.IsApproved,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
