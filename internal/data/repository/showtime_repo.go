package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"
	"movie-booking/pkg/failure"

	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Showtime, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Showtime, error)
}

type showtimeRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.SQLIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) FindByID(ctx context.Context, id string) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, starts_at, screen
		FROM showtimes
		WHERE id = ?
	`

	var showtime entity.Showtime
	err := r.db.GetContext(ctx, &showtime, r.db.Rebind(query), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, failure.NotFound(fmt.Sprintf("showtime %s not found", id))
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id, err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, starts_at, screen
		FROM showtimes
		WHERE movie_id = ?
		ORDER BY starts_at
	`

	showtimes := []*entity.Showtime{}
	if err := r.db.SelectContext(ctx, &showtimes, r.db.Rebind(query), movieID); err != nil {
		r.log.Error("Failed to find showtimes by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find showtimes by movie ID %d: %w", movieID, err)
	}

	return showtimes, nil
}
