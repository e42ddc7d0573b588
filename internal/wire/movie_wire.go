package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/pkg/menu"
)

func wireMovie(r *menu.Router, movieHandler *adaptor.MovieHandler) {
	// 1 - List movies
	r.Handle("1", "List Movies", movieHandler.ListMovies)

	// 2 - Showtimes for one movie
	r.Handle("2", "List Showtimes for a Movie", movieHandler.ListShowtimes)
}
