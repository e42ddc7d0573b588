package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/pkg/menu"
)

func wireBooking(r *menu.Router, bookingHandler *adaptor.BookingHandler) {
	r.Handle("3", "View Seat Map for a Showtime", bookingHandler.ViewSeatMap)
	r.Handle("4", "Book Seats", bookingHandler.BookSeats)
	r.Handle("5", "View My Bookings", bookingHandler.ViewBookings)
	r.Handle("6", "Cancel a Booking", bookingHandler.CancelBooking)
}
