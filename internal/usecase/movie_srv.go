package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/failure"

	"go.uber.org/zap"
)

type MovieService interface {
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
	ListShowtimes(ctx context.Context, movieID int64) ([]response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, id string) (*response.ShowtimeResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return movieResponses, nil
}

func (s *movieService) ListShowtimes(ctx context.Context, movieID int64) ([]response.ShowtimeResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		if failure.IsDomain(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}

	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get showtimes",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get showtimes for movie %d: %w", movieID, err)
	}

	showtimeResponses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		showtimeResponses[i] = response.ShowtimeToResponse(showtime, movie)
	}

	return showtimeResponses, nil
}

// GetShowtime resolves a showtime with its movie title. A showtime whose
// movie row is missing is still returned, without a title.
func (s *movieService) GetShowtime(ctx context.Context, id string) (*response.ShowtimeResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, failure.InvalidShowtime("showtime is required")
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		if failure.IsDomain(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get showtime %s: %w", id, err)
	}

	var movie *entity.Movie
	movie, err = s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil && !errors.Is(err, failure.ErrNotFound) {
		return nil, fmt.Errorf("get movie for showtime %s: %w", id, err)
	}

	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}
