package entity

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking links a seat and a showtime to a phone number.
// At most one active booking exists per (Seat, ShowtimeID).
type Booking struct {
	Base
	Seat       Seat          `db:"seat"`
	ShowtimeID string        `db:"showtime"`
	Phone      string        `db:"phone"`
	Status     BookingStatus `db:"status"`
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}
