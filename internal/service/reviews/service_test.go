package reviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outpost-paintball/booking-service/internal/domain"
	reviewRepo "github.com/outpost-paintball/booking-service/internal/infra/storage/review"
	"github.com/outpost-paintball/booking-service/internal/service/reviews/models"
)

type fakeRepo struct {
	created  *domain.Review
	reviews  []*domain.Review
	ratings  []int
	err      error
	approved map[int64]bool
}

func (f *fakeRepo) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = rev
	out := *rev
	out.ID = 7
	out.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return &out, nil
}

func (f *fakeRepo) List(ctx context.Context, approvedOnly bool) ([]*domain.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !approvedOnly {
		return f.reviews, nil
	}
	var out []*domain.Review
	for _, r := range f.reviews {
		if r.IsApproved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ApprovedRatings(ctx context.Context) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ratings, nil
}

func (f *fakeRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	if f.err != nil {
		return f.err
	}
	if f.approved == nil {
		f.approved = map[int64]bool{}
	}
	f.approved[id] = approved
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestSubmit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Submit(context.Background(), &models.SubmitReviewRequest{
		CustomerName: "  Maria  ",
		ReviewText:   "Great field, friendly marshals.",
		Rating:       5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Maria", resp.CustomerName, "whitespace trimmed")
	assert.False(t, resp.IsApproved, "new reviews start unapproved")
}

func TestSubmit_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.SubmitReviewRequest
	}{
		{"empty name", models.SubmitReviewRequest{ReviewText: "ok", Rating: 5}},
		{"empty text", models.SubmitReviewRequest{CustomerName: "Maria", Rating: 5}},
		{"rating zero", models.SubmitReviewRequest{CustomerName: "Maria", ReviewText: "ok"}},
		{"rating six", models.SubmitReviewRequest{CustomerName: "Maria", ReviewText: "ok", Rating: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListApprovedHidesPending(t *testing.T) {
	repo := &fakeRepo{reviews: []*domain.Review{
		{ID: 1, CustomerName: "A", Rating: 5, IsApproved: true},
		{ID: 2, CustomerName: "B", Rating: 1, IsApproved: false},
	}}
	svc := NewService(repo, nopLogger{})

	approved, err := svc.ListApproved(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, approved.Total)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestSetApproved_NotFound(t *testing.T) {
	repo := &fakeRepo{err: reviewRepo.ErrReviewNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.SetApproved(context.Background(), 99, true)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestRatingStats(t *testing.T) {
	repo := &fakeRepo{ratings: []int{5, 5, 4, 3, 5}}
	svc := NewService(repo, nopLogger{})

	stats, err := svc.RatingStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalReviews)
	assert.Equal(t, 4.4, stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 1, 5: 3}, stats.Distribution)
}

func TestRatingStats_Empty(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	stats, err := svc.RatingStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalReviews)
	assert.Equal(t, float64(0), stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.Distribution)
}

func TestRatingStats_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("boom")}, nopLogger{})

	_, err := svc.RatingStats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
