package entity

type Movie struct {
	ID           int64  `db:"id"`
	Title        string `db:"title"`
	Rating       string `db:"rating"`
	DurationMins int    `db:"duration_mins"`
}
