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

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewMovieRepository(db database.SQLIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT id, title, rating, duration_mins FROM movies ORDER BY title`

	movies := []*entity.Movie{}
	if err := r.db.SelectContext(ctx, &movies, query); err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT id, title, rating, duration_mins FROM movies WHERE id = ?`

	var movie entity.Movie
	err := r.db.GetContext(ctx, &movie, r.db.Rebind(query), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, failure.NotFound(fmt.Sprintf("movie %d not found", id))
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return &movie, nil
}
