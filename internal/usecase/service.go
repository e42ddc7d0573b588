package usecase

import (
	"movie-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Booking BookingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
