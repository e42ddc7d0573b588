package adaptor

import (
	"context"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/menu"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles option "List movies".
func (h *MovieHandler) ListMovies(ctx context.Context, c *menu.Console) error {
	utils.ResponseHeading(c.Writer(), "Movies")

	movies, err := h.service.ListMovies(ctx)
	if err != nil {
		return handleServiceError(ctx, h.log, c, err, "list movies")
	}

	if len(movies) == 0 {
		c.Println("No movies found.")
		return nil
	}

	for _, m := range movies {
		c.Printf("[%d] %s  (%s, %d mins)\n", m.ID, m.Title, m.Rating, m.DurationMins)
	}

	return nil
}

// ListShowtimes handles option "List showtimes for a movie".
func (h *MovieHandler) ListShowtimes(ctx context.Context, c *menu.Console) error {
	if err := h.ListMovies(ctx, c); err != nil {
		return err
	}

	raw, err := c.Prompt("\nEnter Movie ID to view showtimes: ")
	if err != nil {
		return err
	}

	movieID, err := utils.ParseID(raw)
	if err != nil {
		utils.ResponseWarning(c.Writer(), "Invalid number.")
		return nil
	}

	showtimes, err := h.service.ListShowtimes(ctx, movieID)
	if err != nil {
		return handleServiceError(ctx, h.log, c, err, "list showtimes")
	}

	utils.ResponseHeading(c.Writer(), "Showtimes")
	if len(showtimes) == 0 {
		c.Println("No showtimes for this movie.")
		return nil
	}

	for _, s := range showtimes {
		c.Printf("[%s] %s\n", s.ID, s.Label())
	}

	return nil
}
