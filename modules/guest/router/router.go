package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/guest/controller"

	"github.com/labstack/echo/v4"
)

type GuestRouter struct {
	controller *controller.GuestController
}

func NewGuestRouter(controller *controller.GuestController) *GuestRouter {
	return &GuestRouter{
		controller: controller,
	}
}

func (r *GuestRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	groups := g.Group("/guest-groups")
	groups.Use(mw.AuthMiddleware())
	groups.POST("", r.controller.CreateGuestGroup)
	groups.GET("", r.controller.GetGuestGroupsByEvent)
	groups.DELETE("/:id", r.controller.DeleteGuestGroup)

	guests := g.Group("/guests")
	guests.Use(mw.AuthMiddleware())
	guests.POST("", r.controller.CreateGuest)
	guests.PUT("/:id", r.controller.UpdateGuest)
	guests.DELETE("/:id", r.controller.DeleteGuest)
}
