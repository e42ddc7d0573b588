package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/pkg/failure"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	ListAvailability(ctx context.Context, showtimeID string) (map[entity.Seat]entity.SeatState, error)
	Book(ctx context.Context, req *request.BookSeatRequest) (*entity.Booking, error)
	BookSeats(ctx context.Context, req *request.BookSeatsRequest) ([]*entity.Booking, error)
	BookingsForPhone(ctx context.Context, phone string) ([]*entity.Booking, error)
	GetBooking(ctx context.Context, id int64) (*entity.Booking, error)
	CancelBooking(ctx context.Context, id int64) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// ListAvailability reports every catalog seat for the showtime. A seat is
// booked iff it has an active booking.
func (s *bookingService) ListAvailability(ctx context.Context, showtimeID string) (map[entity.Seat]entity.SeatState, error) {
	if strings.TrimSpace(showtimeID) == "" {
		return nil, failure.InvalidShowtime("showtime is required")
	}

	active, err := s.repo.Booking.FindActiveByShowtime(ctx, showtimeID)
	if err != nil {
		s.log.Error("Failed to load bookings for availability",
			zap.Error(err),
			zap.String("showtime", showtimeID),
		)
		return nil, fmt.Errorf("list availability for %s: %w", showtimeID, err)
	}

	seats := entity.AllSeats()
	availability := make(map[entity.Seat]entity.SeatState, len(seats))
	for _, seat := range seats {
		availability[seat] = entity.SeatAvailable
	}
	for _, booking := range active {
		if _, ok := availability[booking.Seat]; ok {
			availability[booking.Seat] = entity.SeatBooked
		}
	}

	return availability, nil
}

func (s *bookingService) Book(ctx context.Context, req *request.BookSeatRequest) (*entity.Booking, error) {
	errs := utils.ValidateStruct(req)
	if err := checkBookingRequest(errs, req.ShowtimeID, []string{req.Seat}); err != nil {
		s.log.Warn("Book seat validation failed",
			zap.Error(err),
			zap.String("kind", failure.GetKind(err).String()),
		)
		return nil, err
	}

	booking := newActiveBooking(req.ShowtimeID, req.Seat, req.Phone, time.Now().UTC())

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, s.createFailed(err, req.ShowtimeID, 1)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("seat", booking.Seat.String()),
		zap.String("showtime", booking.ShowtimeID),
	)

	return booking, nil
}

// BookSeats books several seats for one phone, all or nothing.
func (s *bookingService) BookSeats(ctx context.Context, req *request.BookSeatsRequest) ([]*entity.Booking, error) {
	errs := utils.ValidateStruct(req)
	if err := checkBookingRequest(errs, req.ShowtimeID, req.Seats); err != nil {
		s.log.Warn("Book seats validation failed",
			zap.Error(err),
			zap.String("kind", failure.GetKind(err).String()),
		)
		return nil, err
	}

	now := time.Now().UTC()
	bookings := make([]*entity.Booking, len(req.Seats))
	for i, seat := range req.Seats {
		bookings[i] = newActiveBooking(req.ShowtimeID, seat, req.Phone, now)
	}

	if err := s.repo.Booking.CreateBatch(ctx, bookings); err != nil {
		return nil, s.createFailed(err, req.ShowtimeID, len(bookings))
	}

	s.log.Info("Bookings created",
		zap.String("showtime", req.ShowtimeID),
		zap.Strings("seats", req.Seats),
		zap.Int("seat_count", len(bookings)),
	)

	return bookings, nil
}

func (s *bookingService) BookingsForPhone(ctx context.Context, phone string) ([]*entity.Booking, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return []*entity.Booking{}, nil
	}

	bookings, err := s.repo.Booking.FindByPhone(ctx, phone)
	if err != nil {
		s.log.Error("Failed to get bookings for phone", zap.Error(err))
		return nil, fmt.Errorf("get bookings for phone: %w", err)
	}

	s.log.Info("Bookings for phone retrieved", zap.Int("count", len(bookings)))
	return bookings, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		if failure.IsDomain(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id int64) error {
	if err := s.repo.Booking.Cancel(ctx, id); err != nil {
		if failure.IsDomain(err) {
			s.log.Warn("Cancel booking rejected",
				zap.Error(err),
				zap.Int64("booking_id", id),
			)
			return err
		}
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("cancel booking %d: %w", id, err)
	}

	s.log.Info("Booking cancelled", zap.Int64("booking_id", id))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) createFailed(err error, showtimeID string, seats int) error {
	if failure.IsDomain(err) {
		s.log.Warn("Booking rejected",
			zap.Error(err),
			zap.String("showtime", showtimeID),
		)
		return err
	}

	s.log.Error("Failed to create booking",
		zap.Error(err),
		zap.String("showtime", showtimeID),
		zap.Int("seat_count", seats),
	)
	return fmt.Errorf("create booking: %w", err)
}

func newActiveBooking(showtimeID, seat, phone string, now time.Time) *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Seat:       entity.Seat(seat),
		ShowtimeID: showtimeID,
		Phone:      phone,
		Status:     entity.BookingStatusActive,
	}
}

// checkBookingRequest orders the checks: showtime, then seats, then phone.
func checkBookingRequest(errs map[string]string, showtimeID string, seats []string) error {
	if strings.TrimSpace(showtimeID) == "" {
		return failure.InvalidShowtime("showtime is required")
	}

	if msg, ok := errs["Seats"]; ok {
		return failure.InvalidSeatFromString("seats: " + msg)
	}

	seen := make(map[string]struct{}, len(seats))
	for _, seat := range seats {
		if !entity.IsValidSeat(seat) {
			return failure.InvalidSeat(seat)
		}
		if _, dup := seen[seat]; dup {
			return failure.InvalidSeatFromString(fmt.Sprintf("seat %s is listed more than once", seat))
		}
		seen[seat] = struct{}{}
	}

	if msg, ok := errs["Phone"]; ok {
		return failure.InvalidPhone("invalid phone number: " + msg)
	}

	return nil
}
