package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/document/controller"

	"github.com/labstack/echo/v4"
)

type DocumentRouter struct {
	controller *controller.DocumentController
}

func NewDocumentRouter(controller *controller.DocumentController) *DocumentRouter {
	return &DocumentRouter{
		controller: controller,
	}
}

func (r *DocumentRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	documents := g.Group("/documents")
	documents.Use(mw.AuthMiddleware())

	documents.POST("", r.controller.UploadDocument)
	documents.GET("/events/:eventId", r.controller.GetDocumentsByEvent)
	documents.DELETE("/:id", r.controller.DeleteDocument)
}
