// internal/wire/wire.go
package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/menu"
	"movie-booking/pkg/middleware"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

const menuTitle = "Movie Ticket Booking: Main Menu"

// App holds the wired dependencies.
type App struct {
	Menu *menu.Router
}

// Wiring builds services, handlers and the menu.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Menu: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *menu.Router {
	title := menuTitle
	if config != nil && config.App.Name != "" {
		title = config.App.Name + ": Main Menu"
	}

	r := menu.NewRouter(title)

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireMovie(r, handler.Movie)
	wireBooking(r, handler.Booking)

	return r
}
