package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		controller: controller,
	}
}

func (r *AuthRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := g.Group("/auth")
	auth.POST("/signup", r.controller.Signup)
	auth.POST("/login", r.controller.Login)
	auth.GET("/google", r.controller.GoogleAuthURL)
	auth.POST("/google/callback", r.controller.GoogleCallback)

	me := g.Group("/auth", mw.AuthMiddleware())
	me.POST("/logout", r.controller.Logout)
	me.GET("/me", r.controller.Me)

	users := g.Group("/users", mw.AuthMiddleware(), mw.RequireAdmin())
	users.GET("", r.controller.GetUsers)
}
