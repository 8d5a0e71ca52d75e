package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/report/controller"

	"github.com/labstack/echo/v4"
)

type ReportRouter struct {
	controller *controller.ReportController
}

func NewReportRouter(controller *controller.ReportController) *ReportRouter {
	return &ReportRouter{
		controller: controller,
	}
}

func (r *ReportRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	reports := g.Group("/reports")
	reports.Use(mw.AuthMiddleware())

	reports.GET("/dashboard", r.controller.GetDashboard)
	reports.GET("/events/:eventId", r.controller.GetEventReport)
	reports.GET("/events/:eventId/attendance", r.controller.GetAttendanceStats)
	reports.GET("/events/:eventId/tasks", r.controller.GetTaskProgress)
}
