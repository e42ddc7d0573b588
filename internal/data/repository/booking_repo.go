package repository

//go:generate go run go.uber.org/mock/mockgen -source=./booking_repo.go -destination=./mocks/booking_repo_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"
	"movie-booking/pkg/failure"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	CreateBatch(ctx context.Context, bookings []*entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindBySeatAndShowtime(ctx context.Context, seat entity.Seat, showtimeID string) (*entity.Booking, error)
	FindByPhone(ctx context.Context, phone string) ([]*entity.Booking, error)
	FindActiveByShowtime(ctx context.Context, showtimeID string) ([]*entity.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

type bookingRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewBookingRepository(db database.SQLIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, seat, showtime, phone, status, created_at, updated_at`

// Create inserts one active booking and fills in its ID.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.CreateBatch(ctx, []*entity.Booking{booking})
}

// CreateBatch inserts all bookings in one transaction. A conflict on any
// seat rolls back the whole batch.
func (r *bookingRepository) CreateBatch(ctx context.Context, bookings []*entity.Booking) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				r.log.Error("Failed to roll back booking transaction", zap.Error(rbErr))
			}
		}
	}()

	for _, booking := range bookings {
		if err = r.insert(ctx, tx, booking); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) insert(ctx context.Context, tx *sqlx.Tx, booking *entity.Booking) error {
	var existingID int64
	err := tx.GetContext(ctx, &existingID,
		tx.Rebind(`SELECT id FROM bookings WHERE showtime = ? AND seat = ? AND status = ?`),
		booking.ShowtimeID,
		string(booking.Seat),
		string(entity.BookingStatusActive),
	)
	if err == nil {
		return seatTaken(booking)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		r.log.Error("Failed to check seat availability",
			zap.Error(err),
			zap.String("seat", booking.Seat.String()),
			zap.String("showtime", booking.ShowtimeID),
		)
		return fmt.Errorf("check seat %s for %s: %w", booking.Seat, booking.ShowtimeID, err)
	}

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	if booking.UpdatedAt.IsZero() {
		booking.UpdatedAt = booking.CreatedAt
	}
	booking.Status = entity.BookingStatusActive

	query := `
		INSERT INTO bookings (seat, showtime, phone, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err = tx.GetContext(ctx, &booking.ID, tx.Rebind(query),
		string(booking.Seat),
		booking.ShowtimeID,
		booking.Phone,
		string(booking.Status),
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return seatTaken(booking)
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("seat", booking.Seat.String()),
			zap.String("showtime", booking.ShowtimeID),
		)
		return fmt.Errorf("create booking for seat %s: %w", booking.Seat, err)
	}

	return nil
}

func seatTaken(booking *entity.Booking) error {
	return failure.Conflict(fmt.Sprintf("seat %s is already booked for %s", booking.Seat, booking.ShowtimeID))
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, r.db.Rebind(query), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, failure.NotFound(fmt.Sprintf("booking %d not found", id))
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindBySeatAndShowtime(ctx context.Context, seat entity.Seat, showtimeID string) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE seat = ? AND showtime = ? AND status = ?
	`

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, r.db.Rebind(query), string(seat), showtimeID, string(entity.BookingStatusActive))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, failure.NotFound(fmt.Sprintf("no active booking for seat %s at %s", seat, showtimeID))
	}
	if err != nil {
		r.log.Error("Failed to find booking by seat",
			zap.Error(err),
			zap.String("seat", seat.String()),
			zap.String("showtime", showtimeID),
		)
		return nil, fmt.Errorf("find booking for seat %s at %s: %w", seat, showtimeID, err)
	}

	return &booking, nil
}

// FindByPhone returns active bookings for phone in creation order.
func (r *bookingRepository) FindByPhone(ctx context.Context, phone string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE phone = ? AND status = ?
		ORDER BY id
	`

	bookings := []*entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, r.db.Rebind(query), phone, string(entity.BookingStatusActive)); err != nil {
		r.log.Error("Failed to find bookings by phone", zap.Error(err))
		return nil, fmt.Errorf("find bookings by phone: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindActiveByShowtime(ctx context.Context, showtimeID string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE showtime = ? AND status = ?
		ORDER BY id
	`

	bookings := []*entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, r.db.Rebind(query), showtimeID, string(entity.BookingStatusActive)); err != nil {
		r.log.Error("Failed to find bookings by showtime",
			zap.Error(err),
			zap.String("showtime", showtimeID),
		)
		return nil, fmt.Errorf("find bookings by showtime %s: %w", showtimeID, err)
	}

	return bookings, nil
}

// Cancel moves an active booking to cancelled. Unknown and already
// cancelled bookings both report NotFound.
func (r *bookingRepository) Cancel(ctx context.Context, id int64) error {
	query := `UPDATE bookings SET status = ?, updated_at = ? WHERE id = ? AND status = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		string(entity.BookingStatusCancelled),
		time.Now().UTC(),
		id,
		string(entity.BookingStatusActive),
	)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("cancel booking %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel booking %d: %w", id, err)
	}
	if affected == 0 {
		return failure.NotFound(fmt.Sprintf("booking %d not found", id))
	}

	r.log.Info("Booking cancelled", zap.Int64("booking_id", id))
	return nil
}
