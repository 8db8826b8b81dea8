package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outpost-paintball/booking-service/internal/domain"
	bookingRepo "github.com/outpost-paintball/booking-service/internal/infra/storage/booking"
	"github.com/outpost-paintball/booking-service/internal/service/bookings/models"
	"github.com/outpost-paintball/booking-service/pkg/ptr"
)

type fakeRepo struct {
	bookings      []*domain.Booking
	err           error
	lastFilter    domain.BookingsFilter
	updatedID     int64
	updatedStatus domain.BookingStatus
	deletedID     int64
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	return f.bookings, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if f.err != nil {
		return f.err
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deletedID = id
	return nil
}

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func booking(id int64, date time.Time, status domain.BookingStatus, total float64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BookingDate: date,
		Status:      status,
		TotalAmount: total,
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_FilterParsing(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		StartDate: ptr.Ptr("2026-09-01"),
		EndDate:   ptr.Ptr("2026-09-30"),
		Status:    ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, "2026-09-01", repo.lastFilter.StartDate.Format(domain.DateFormat))
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		StartDate: ptr.Ptr("01/09/2026"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "cancelled"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.updatedID)
	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{err: bookingRepo.ErrBookingNotFound}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 8))
	assert.Equal(t, int64(8), repo.deletedID)
}

func TestStats(t *testing.T) {
	today := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{bookings: []*domain.Booking{
		booking(1, today, domain.StatusConfirmed, 2800),
		booking(2, today, domain.StatusPending, 700),
		booking(3, today.AddDate(0, 0, 1), domain.StatusConfirmed, 18000),
		booking(4, today.AddDate(0, 0, -1), domain.StatusCancelled, 1400),
	}}

	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTime{now: time.Date(2026, 9, 5, 14, 30, 0, 0, time.UTC)}

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 2, stats.TodayBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, 2, stats.ConfirmedBookings)
	assert.Equal(t, float64(2800+18000), stats.ConfirmedRevenue)

	// Stats fold over everything, inactive statuses included.
	assert.True(t, repo.lastFilter.IncludeInactive)
}

func TestStats_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("boom")}, nopLogger{})

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
