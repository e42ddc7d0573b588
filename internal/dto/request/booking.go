package request

type BookSeatRequest struct {
	ShowtimeID string `validate:"required"`
	Seat       string `validate:"required"`
	Phone      string `validate:"required,number,min=7,max=15"`
}

type BookSeatsRequest struct {
	ShowtimeID string   `validate:"required"`
	Seats      []string `validate:"required,min=1"`
	Phone      string   `validate:"required,number,min=7,max=15"`
}
