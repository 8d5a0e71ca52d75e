package guest

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/guest/controller"
	"guestdesk/modules/guest/repository"
	"guestdesk/modules/guest/router"
	"guestdesk/modules/guest/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewGuestRepository(db)
	guestService := service.NewGuestService(repo)
	guestController := controller.NewGuestController(guestService)

	router.NewGuestRouter(guestController).Register(g, mw)
}
