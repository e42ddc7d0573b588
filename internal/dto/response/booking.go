package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type BookingResponse struct {
	ID         int64
	Seat       entity.Seat
	ShowtimeID string
	Phone      string
	Status     entity.BookingStatus
	CreatedAt  time.Time
	Showtime   *ShowtimeResponse
}

// BookingToResponse pairs a booking with its showtime details when known.
func BookingToResponse(booking *entity.Booking, showtime *ShowtimeResponse) BookingResponse {
	return BookingResponse{
		ID:         booking.ID,
		Seat:       booking.Seat,
		ShowtimeID: booking.ShowtimeID,
		Phone:      booking.Phone,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
		Showtime:   showtime,
	}
}
