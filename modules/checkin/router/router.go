package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/checkin/controller"

	"github.com/labstack/echo/v4"
)

type CheckInRouter struct {
	controller *controller.CheckInController
}

func NewCheckInRouter(controller *controller.CheckInController) *CheckInRouter {
	return &CheckInRouter{
		controller: controller,
	}
}

func (r *CheckInRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	checkIns := g.Group("/check-ins")
	checkIns.Use(mw.AuthMiddleware())

	checkIns.POST("", r.controller.RecordCheckIn)
	checkIns.GET("/recent", r.controller.GetRecentCheckIns)
	checkIns.GET("/guests/:guestId", r.controller.GetCheckInHistory)
}
