package adaptor

import (
	"context"
	"fmt"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/failure"
	"movie-booking/pkg/menu"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Booking: NewBookingHandler(service.Booking, service.Movie, log),
	}
}

// handleServiceError prints domain failures and keeps the menu going.
// Anything else is logged and surfaced as a generic error.
func handleServiceError(ctx context.Context, log *zap.Logger, c *menu.Console, err error, operation string) error {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
	}
	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		fields = append(fields, zap.String("session_id", sessionID))
	}

	switch failure.GetKind(err) {
	case failure.KindNotFound:
		log.Warn(operation+" failed - not found", fields...)
		utils.ResponseError(c.Writer(), err.Error())
		return nil

	case failure.KindConflict:
		log.Warn(operation+" failed - seat already booked", fields...)
		utils.ResponseError(c.Writer(), err.Error())
		return nil

	case failure.KindInvalidSeat, failure.KindInvalidPhone, failure.KindInvalidShowtime:
		log.Warn("Invalid input for "+operation, fields...)
		utils.ResponseError(c.Writer(), err.Error())
		return nil
	}

	log.Error("Unexpected error in "+operation, fields...)
	return fmt.Errorf("could not %s, please try again", operation)
}
