package checkin

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/checkin/controller"
	"guestdesk/modules/checkin/repository"
	"guestdesk/modules/checkin/router"
	"guestdesk/modules/checkin/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware) service.CheckInServiceInterface {
	repo := repository.NewCheckInRepository(db)
	checkInService := service.NewCheckInService(repo)
	checkInController := controller.NewCheckInController(checkInService)

	router.NewCheckInRouter(checkInController).Register(g, mw)

	return checkInService
}
