package event

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/event/controller"
	"guestdesk/modules/event/repository"
	"guestdesk/modules/event/router"
	"guestdesk/modules/event/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	eventService := service.NewEventService(repo)
	eventController := controller.NewEventController(eventService)

	router.NewEventRouter(eventController).Register(g, mw)
}
