package reviews

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/outpost-paintball/booking-service/internal/domain"
	reviewRepo "github.com/outpost-paintball/booking-service/internal/infra/storage/review"
	"github.com/outpost-paintball/booking-service/internal/service/reviews/models"
)

// Service handles customer reviews: public submission and listing, and
// the admin moderation queue. Reviews enter unapproved and only show up
// on the public feed after staff approval.
type Service struct {
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService creates the reviews service.
func NewService(reviewRepo ReviewRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// Submit stores a new, unapproved review.
func (s *Service) Submit(ctx context.Context, req *models.SubmitReviewRequest) (*models.ReviewResponse, error) {
	if err := validateSubmit(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		ReviewText:    strings.TrimSpace(req.ReviewText),
		Rating:        req.Rating,
	})
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: review id=%d stored, rating=%d", created.ID, created.Rating)
	return models.FromDomainReview(created), nil
}

// ListApproved fetches the public testimonial feed.
func (s *Service) ListApproved(ctx context.Context) (*models.ReviewListResponse, error) {
	return s.list(ctx, true)
}

// ListAll fetches every review, including pending ones, for moderation.
func (s *Service) ListAll(ctx context.Context) (*models.ReviewListResponse, error) {
	return s.list(ctx, false)
}

func (s *Service) list(ctx context.Context, approvedOnly bool) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.List(ctx, approvedOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}

// SetApproved flips a review's approval flag.
func (s *Service) SetApproved(ctx context.Context, id int64, approved bool) error {
	if err := s.reviewRepo.SetApproved(ctx, id, approved); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("SetApproved: review id=%d not found", id)
			return ErrReviewNotFound
		}
		s.logger.Error("SetApproved: repository error for review id=%d: %v", id, err)
		return fmt.Errorf("%w: SetApproved - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetApproved: review id=%d approved=%t", id, approved)
	return nil
}

// Delete removes a review permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Delete: review id=%d not found", id)
			return ErrReviewNotFound
		}
		s.logger.Error("Delete: repository error for review id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: review id=%d removed", id)
	return nil
}

// RatingStats computes the public rating summary over approved reviews.
// The average is rounded to one decimal place.
func (s *Service) RatingStats(ctx context.Context) (*models.RatingStatsResponse, error) {
	ratings, err := s.reviewRepo.ApprovedRatings(ctx)
	if err != nil {
		s.logger.Error("RatingStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: RatingStats - repository error: %v", ErrInternal, err)
	}

	stats := &models.RatingStatsResponse{
		TotalReviews: len(ratings),
		Distribution: make(map[int]int, domain.MaxRating),
	}
	for r := domain.MinRating; r <= domain.MaxRating; r++ {
		stats.Distribution[r] = 0
	}

	if len(ratings) == 0 {
		return stats, nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
		if r >= domain.MinRating && r <= domain.MaxRating {
			stats.Distribution[r]++
		}
	}

	stats.AverageRating = math.Round(float64(sum)/float64(len(ratings))*10) / 10

	return stats, nil
}

func validateSubmit(req *models.SubmitReviewRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		return fmt.Errorf("%w: review text is required", ErrInvalidInput)
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	return nil
}
