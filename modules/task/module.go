package task

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/core/queue"
	notifService "guestdesk/modules/notification/service"
	"guestdesk/modules/task/controller"
	"guestdesk/modules/task/repository"
	"guestdesk/modules/task/router"
	"guestdesk/modules/task/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware, notifier queue.Notifier, notifications notifService.NotificationServiceInterface) service.TaskServiceInterface {
	repo := repository.NewTaskRepository(db)
	taskService := service.NewTaskService(repo, notifier, notifications)
	taskController := controller.NewTaskController(taskService)

	router.NewTaskRouter(taskController).Register(g, mw)

	return taskService
}
