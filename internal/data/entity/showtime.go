package entity

import (
	"time"
)

// Showtime is a seeded screening. ID is the "title@HH:MM" key.
type Showtime struct {
	ID       string    `db:"id"`
	MovieID  int64     `db:"movie_id"`
	StartsAt time.Time `db:"starts_at"`
	Screen   string    `db:"screen"`
}
