package notification

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/notification/controller"
	"guestdesk/modules/notification/repository"
	"guestdesk/modules/notification/router"
	"guestdesk/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware) service.NotificationServiceInterface {
	repo := repository.NewNotificationRepository(db)
	notificationService := service.NewNotificationService(repo)
	notificationController := controller.NewNotificationController(notificationService)

	router.NewNotificationRouter(notificationController).Register(g, mw)

	return notificationService
}
