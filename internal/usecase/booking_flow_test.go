package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/database/databasetest"
	"movie-booking/pkg/failure"
)

func newService(t *testing.T) *usecase.Service {
	t.Helper()
	log := zaptest.NewLogger(t)
	repo := repository.NewRepository(databasetest.NewSQLite(t), log)
	return usecase.NewService(repo, log)
}

func TestBookingFlow(t *testing.T) {
	svc := newService(t).Booking
	ctx := context.Background()
	const showtime = "Movie@18:00"

	first, err := svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: showtime, Seat: "A1", Phone: "5551234"})
	require.NoError(t, err)

	_, err = svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: showtime, Seat: "A1", Phone: "5559876"})
	assert.ErrorIs(t, err, failure.ErrConflict)

	availability, err := svc.ListAvailability(ctx, showtime)
	require.NoError(t, err)
	assert.Equal(t, entity.SeatBooked, availability["A1"])
	assert.Equal(t, entity.SeatAvailable, availability["A2"])

	mine, err := svc.BookingsForPhone(ctx, "5551234")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	_, err = svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: showtime, Seat: "Z9", Phone: "5551234"})
	assert.ErrorIs(t, err, failure.ErrInvalidSeat)

	_, err = svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: showtime, Seat: "A2", Phone: "abc"})
	assert.ErrorIs(t, err, failure.ErrInvalidPhone)

	// Failed attempts leave no trace.
	availability, err = svc.ListAvailability(ctx, showtime)
	require.NoError(t, err)
	assert.Equal(t, entity.SeatAvailable, availability["A2"])
}

func TestBookingFlow_CancelFreesSeat(t *testing.T) {
	svc := newService(t).Booking
	ctx := context.Background()
	const showtime = "Movie@18:00"

	booking, err := svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: showtime, Seat: "B3", Phone: "5551234"})
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(ctx, booking.ID))
	assert.ErrorIs(t, svc.CancelBooking(ctx, booking.ID), failure.ErrNotFound)

	cancelled, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	availability, err := svc.ListAvailability(ctx, showtime)
	require.NoError(t, err)
	assert.Equal(t, entity.SeatAvailable, availability["B3"])

	_, err = svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: showtime, Seat: "B3", Phone: "5559876"})
	assert.NoError(t, err)
}

func TestBookingFlow_SeatsAreIndependentPerShowtime(t *testing.T) {
	svc := newService(t).Booking
	ctx := context.Background()

	_, err := svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: "Movie@18:00", Seat: "A5", Phone: "5551234"})
	require.NoError(t, err)
	_, err = svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: "Movie@21:00", Seat: "A5", Phone: "5551234"})
	require.NoError(t, err)

	mine, err := svc.BookingsForPhone(ctx, "5551234")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestBookingFlow_BookSeatsAllOrNothing(t *testing.T) {
	svc := newService(t).Booking
	ctx := context.Background()
	const showtime = "Movie@18:00"

	_, err := svc.Book(ctx, &request.BookSeatRequest{ShowtimeID: showtime, Seat: "B7", Phone: "5550000"})
	require.NoError(t, err)

	_, err = svc.BookSeats(ctx, &request.BookSeatsRequest{
		ShowtimeID: showtime,
		Seats:      []string{"B6", "B7", "B8"},
		Phone:      "5551234",
	})
	assert.ErrorIs(t, err, failure.ErrConflict)

	availability, err := svc.ListAvailability(ctx, showtime)
	require.NoError(t, err)
	assert.Equal(t, entity.SeatAvailable, availability["B6"])
	assert.Equal(t, entity.SeatAvailable, availability["B8"])

	bookings, err := svc.BookSeats(ctx, &request.BookSeatsRequest{
		ShowtimeID: showtime,
		Seats:      []string{"B6", "B8"},
		Phone:      "5551234",
	})
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingFlow_ConcurrentBookingsOfOneSeat(t *testing.T) {
	svc := newService(t).Booking
	ctx := context.Background()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(ctx, &request.BookSeatRequest{
				ShowtimeID: "Movie@18:00",
				Seat:       "A9",
				Phone:      "5551234",
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case failure.GetKind(err) == failure.KindConflict:
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
}
