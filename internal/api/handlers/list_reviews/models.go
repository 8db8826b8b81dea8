package list_reviews

import (
	"time"

	"github.com/outpost-paintball/booking-service/internal/service/reviews/models"
)

// ReviewListResponse HTTP response model
type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
}

// Review is one approved customer review.
type Review struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	ReviewText   string `json:"reviewText"`
	Rating       int    `json:"rating"`
	CreatedAt    string `json:"createdAt"`
}

// FromServiceResponse converts the service response into the HTTP model.
// The customer email stays private on the public feed.
func FromServiceResponse(resp *models.ReviewListResponse) *ReviewListResponse {
	reviews := make([]Review, len(resp.Reviews))
	for i, r := range resp.Reviews {
		reviews[i] = Review{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			ReviewText:   r.ReviewText,
			Rating:       r.Rating,
			CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ReviewListResponse{Reviews: reviews, Total: resp.Total}
}
