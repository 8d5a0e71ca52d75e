package report

import (
	"guestdesk/core/cache"
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	checkInService "guestdesk/modules/checkin/service"
	"guestdesk/modules/report/controller"
	"guestdesk/modules/report/repository"
	"guestdesk/modules/report/router"
	"guestdesk/modules/report/service"
	taskService "guestdesk/modules/task/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware, checkIns checkInService.CheckInServiceInterface, tasks taskService.TaskServiceInterface, c cache.Cache) {
	reportRepository := repository.NewReportRepository(db)
	reportService := service.NewReportService(reportRepository, checkIns, tasks, c)
	reportController := controller.NewReportController(reportService)

	router.NewReportRouter(reportController).Register(g, mw)
}
