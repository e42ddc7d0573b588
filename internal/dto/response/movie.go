package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type MovieResponse struct {
	ID           int64
	Title        string
	Rating       string
	DurationMins int
}

type ShowtimeResponse struct {
	ID         string
	MovieID    int64
	MovieTitle string
	StartsAt   time.Time
	Screen     string
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		Rating:       movie.Rating,
		DurationMins: movie.DurationMins,
	}
}

func ShowtimeToResponse(showtime *entity.Showtime, movie *entity.Movie) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:       showtime.ID,
		MovieID:  showtime.MovieID,
		StartsAt: showtime.StartsAt,
		Screen:   showtime.Screen,
	}
	if movie != nil {
		resp.MovieTitle = movie.Title
	}
	return resp
}

// Label is the one-line "start • screen" form used in listings.
func (s ShowtimeResponse) Label() string {
	return s.StartsAt.Format("2006-01-02 15:04") + " • " + s.Screen
}
