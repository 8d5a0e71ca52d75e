package controller

import (
	"guestdesk/core/constants"
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/utils"
	"guestdesk/modules/document/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DocumentController struct {
	controller.BaseController
	DocumentService service.DocumentServiceInterface
}

func NewDocumentController(documentService service.DocumentServiceInterface) *DocumentController {
	return &DocumentController{
		BaseController:  controller.NewBaseController(),
		DocumentService: documentService,
	}
}

func (ctrl *DocumentController) getUserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func (ctrl *DocumentController) UploadDocument(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	eventId, ok := utils.TryParseUUID(c.FormValue("event_id"))
	if !ok {
		return ctrl.BadRequest(errors.ErrInvalidInput, "event_id is required", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "file is required", nil)
	}

	document, errUpload := ctrl.DocumentService.UploadDocument(ctx, fileHeader, eventId, userID)
	if errUpload != nil {
		return ctrl.ErrorResponse(c, errUpload)
	}

	return ctrl.CreatedResponse(c, document, "upload document success")
}

func (ctrl *DocumentController) GetDocumentsByEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.Param("eventId"))

	documents, errGet := ctrl.DocumentService.GetDocumentsByEventId(ctx, eventId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, documents, "get documents success")
}

func (ctrl *DocumentController) DeleteDocument(c echo.Context) error {
	ctx := c.Request().Context()

	documentId := utils.ToUUID(c.Param("id"))

	errDelete := ctrl.DocumentService.DeleteDocument(ctx, documentId)
	if errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete document success")
}
