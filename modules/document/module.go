package document

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/core/storage"
	"guestdesk/modules/document/controller"
	"guestdesk/modules/document/repository"
	"guestdesk/modules/document/router"
	"guestdesk/modules/document/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewDocumentRepository(db)
	documentService := service.NewDocumentService(repo, store)
	documentController := controller.NewDocumentController(documentService)

	router.NewDocumentRouter(documentController).Register(g, mw)
}
