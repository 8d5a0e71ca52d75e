package auth

import (
	"guestdesk/core/cache"
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/auth/controller"
	"guestdesk/modules/auth/repository"
	"guestdesk/modules/auth/router"
	"guestdesk/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, cache cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	authService := service.NewAuthService(repo, cache)
	authController := controller.NewAuthController(authService)

	router.NewAuthRouter(authController).Register(g, mw)
}
