package adaptor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/failure"
	"movie-booking/pkg/menu"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	movies  usecase.MovieService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, movies usecase.MovieService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		movies:  movies,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ViewSeatMap handles option "View seat map".
func (h *BookingHandler) ViewSeatMap(ctx context.Context, c *menu.Console) error {
	showtime, err := h.promptShowtime(ctx, c, "Enter Showtime ID to view seats: ")
	if err != nil || showtime == nil {
		return err
	}

	return h.renderSeatMap(ctx, c, showtime)
}

// BookSeats handles option "Book seats". Seat and conflict errors re-prompt;
// a phone error ends the attempt.
func (h *BookingHandler) BookSeats(ctx context.Context, c *menu.Console) error {
	showtime, err := h.promptShowtime(ctx, c, "Enter Showtime ID to book: ")
	if err != nil || showtime == nil {
		return err
	}

	phone, err := c.Prompt("Your Phone: ")
	if err != nil {
		return err
	}

	c.Println("Enter seats separated by commas (e.g., A1,A2,B5). Type 'map' to view seats.")
	for {
		raw, err := c.Prompt("Seats: ")
		if err != nil {
			return err
		}

		if strings.EqualFold(raw, "map") {
			if err := h.renderSeatMap(ctx, c, showtime); err != nil {
				return err
			}
			continue
		}

		seats := normalizeSeats(raw)
		if len(seats) == 0 {
			utils.ResponseWarning(c.Writer(), "Please enter at least one seat.")
			continue
		}

		bookings, err := h.service.BookSeats(ctx, &request.BookSeatsRequest{
			ShowtimeID: showtime.ID,
			Seats:      seats,
			Phone:      phone,
		})
		if err != nil {
			switch failure.GetKind(err) {
			case failure.KindInvalidSeat, failure.KindConflict:
				if hErr := handleServiceError(ctx, h.log, c, err, "book seats"); hErr != nil {
					return hErr
				}
				c.Println("Try again.")
				continue
			default:
				return handleServiceError(ctx, h.log, c, err, "book seats")
			}
		}

		h.printConfirmation(c, showtime, bookings)
		return nil
	}
}

// ViewBookings handles option "View my bookings".
func (h *BookingHandler) ViewBookings(ctx context.Context, c *menu.Console) error {
	phone, err := c.Prompt("Enter your phone: ")
	if err != nil {
		return err
	}

	bookings, err := h.service.BookingsForPhone(ctx, phone)
	if err != nil {
		return handleServiceError(ctx, h.log, c, err, "view bookings")
	}

	utils.ResponseHeading(c.Writer(), "Your Bookings")
	if len(bookings) == 0 {
		c.Println("No bookings found.")
		return nil
	}

	showtimes := make(map[string]*response.ShowtimeResponse)
	for _, b := range bookings {
		showtime, ok := showtimes[b.ShowtimeID]
		if !ok {
			showtime, err = h.movies.GetShowtime(ctx, b.ShowtimeID)
			if err != nil && !errors.Is(err, failure.ErrNotFound) {
				return handleServiceError(ctx, h.log, c, err, "view bookings")
			}
			showtimes[b.ShowtimeID] = showtime
		}

		c.Println(formatBooking(response.BookingToResponse(b, showtime)))
	}

	return nil
}

// CancelBooking handles option "Cancel a booking".
func (h *BookingHandler) CancelBooking(ctx context.Context, c *menu.Console) error {
	raw, err := c.Prompt("Enter Booking ID to cancel: ")
	if err != nil {
		return err
	}

	id, err := utils.ParseID(raw)
	if err != nil {
		utils.ResponseWarning(c.Writer(), "Invalid number.")
		return nil
	}

	if err := h.service.CancelBooking(ctx, id); err != nil {
		if errors.Is(err, failure.ErrNotFound) {
			h.log.Warn("cancel booking failed - not found", zap.Int64("booking_id", id))
			utils.ResponseError(c.Writer(), "Booking not found.")
			return nil
		}
		return handleServiceError(ctx, h.log, c, err, "cancel booking")
	}

	utils.ResponseSuccess(c.Writer(), "Booking cancelled and seat released.")
	return nil
}

// ==================== HELPER METHODS ====================

// promptShowtime returns nil without error when the showtime was rejected
// and a message already printed.
func (h *BookingHandler) promptShowtime(ctx context.Context, c *menu.Console, label string) (*response.ShowtimeResponse, error) {
	id, err := c.Prompt(label)
	if err != nil {
		return nil, err
	}

	showtime, err := h.movies.GetShowtime(ctx, id)
	if err != nil {
		if errors.Is(err, failure.ErrNotFound) {
			utils.ResponseError(c.Writer(), "Showtime not found.")
			return nil, nil
		}
		return nil, handleServiceError(ctx, h.log, c, err, "find showtime")
	}

	return showtime, nil
}

func (h *BookingHandler) renderSeatMap(ctx context.Context, c *menu.Console, showtime *response.ShowtimeResponse) error {
	availability, err := h.service.ListAvailability(ctx, showtime.ID)
	if err != nil {
		return handleServiceError(ctx, h.log, c, err, "view seat map")
	}

	utils.ResponseHeading(c.Writer(), fmt.Sprintf("Seat Map: %s @ %s", showtime.MovieTitle, showtime.Label()))
	c.Println(RenderSeatMap(availability))
	return nil
}

func (h *BookingHandler) printConfirmation(c *menu.Console, showtime *response.ShowtimeResponse, bookings []*entity.Booking) {
	seats := make([]string, len(bookings))
	ids := make([]string, len(bookings))
	for i, b := range bookings {
		seats[i] = b.Seat.String()
		ids[i] = fmt.Sprintf("%d", b.ID)
	}

	c.Println()
	utils.ResponseSuccess(c.Writer(), "Booking confirmed!")
	c.Printf("Movie: %s\n", showtime.MovieTitle)
	c.Printf("Show:  %s\n", showtime.Label())
	c.Printf("Seats: %s\n", strings.Join(seats, ", "))
	c.Printf("Booking IDs: %s\n", strings.Join(ids, ", "))
}

// RenderSeatMap lays the grid out one row per line, e.g. "A1( ) A2(X) ...".
func RenderSeatMap(availability map[entity.Seat]entity.SeatState) string {
	var b strings.Builder
	current := ""
	for _, seat := range entity.AllSeats() {
		if seat.Row() != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = seat.Row()
		} else {
			b.WriteString(" ")
		}

		if availability[seat] == entity.SeatBooked {
			b.WriteString(utils.BookedStyle.Render(seat.String() + "(X)"))
		} else {
			b.WriteString(utils.FreeStyle.Render(seat.String() + "( )"))
		}
	}
	return b.String()
}

func normalizeSeats(raw string) []string {
	items := utils.SplitList(raw)
	seats := make([]string, len(items))
	for i, item := range items {
		seats[i] = entity.NormalizeSeat(item).String()
	}
	return seats
}

func formatBooking(b response.BookingResponse) string {
	line := fmt.Sprintf("[#%d] ", b.ID)
	if b.Showtime != nil {
		line += fmt.Sprintf("%s • %s", b.Showtime.MovieTitle, b.Showtime.Label())
	} else {
		line += b.ShowtimeID
	}
	line += fmt.Sprintf(" • Seat %s • %s • at %s", b.Seat, b.Status, b.CreatedAt.Format("2006-01-02 15:04"))
	return line
}
