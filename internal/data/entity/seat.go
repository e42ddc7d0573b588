package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Seat is a seat label such as "A1".
type Seat string

type SeatState string

const (
	SeatAvailable SeatState = "available"
	SeatBooked    SeatState = "booked"
)

const SeatsPerRow = 10

var seatRows = []string{"A", "B"}

var seatIndex = buildSeatIndex()

func buildSeatIndex() map[Seat]struct{} {
	index := make(map[Seat]struct{}, len(seatRows)*SeatsPerRow)
	for _, seat := range AllSeats() {
		index[seat] = struct{}{}
	}
	return index
}

// AllSeats returns the grid in display order: A1..A10, B1..B10.
func AllSeats() []Seat {
	seats := make([]Seat, 0, len(seatRows)*SeatsPerRow)
	for _, row := range seatRows {
		for n := 1; n <= SeatsPerRow; n++ {
			seats = append(seats, Seat(fmt.Sprintf("%s%d", row, n)))
		}
	}
	return seats
}

// SeatRows returns the row letters in display order.
func SeatRows() []string {
	rows := make([]string, len(seatRows))
	copy(rows, seatRows)
	return rows
}

// IsValidSeat reports whether id names a seat in the grid. It does not normalize.
func IsValidSeat(id string) bool {
	_, ok := seatIndex[Seat(id)]
	return ok
}

// NormalizeSeat trims and upper-cases raw user input.
func NormalizeSeat(raw string) Seat {
	return Seat(strings.ToUpper(strings.TrimSpace(raw)))
}

func (s Seat) Row() string {
	if len(s) == 0 {
		return ""
	}
	return string(s[0])
}

func (s Seat) Number() int {
	if len(s) < 2 {
		return 0
	}
	n, err := strconv.Atoi(string(s[1:]))
	if err != nil {
		return 0
	}
	return n
}

func (s Seat) String() string {
	return string(s)
}
