package controller

import (
	"guestdesk/core/constants"
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/params"
	"guestdesk/core/utils"
	"guestdesk/modules/notification/dto"
	"guestdesk/modules/notification/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	NotificationService service.NotificationServiceInterface
}

func NewNotificationController(notificationService service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: notificationService,
	}
}

func (ctrl *NotificationController) getUserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func (ctrl *NotificationController) GetMyNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	queryParams := params.NewQueryParams(c)

	notifications, errGet := ctrl.NotificationService.GetMyNotifications(ctx, userID, *queryParams)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, notifications, "get notifications success")
}

func (ctrl *NotificationController) MarkAsRead(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	requestData := new(dto.MarkAsReadRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	errMark := ctrl.NotificationService.MarkAsRead(ctx, userID, requestData.IDs)
	if errMark != nil {
		return ctrl.ErrorResponse(c, errMark)
	}

	return ctrl.SuccessResponse(c, nil, "mark notifications as read success")
}

func (ctrl *NotificationController) MarkAllAsRead(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	errMark := ctrl.NotificationService.MarkAllAsRead(ctx, userID)
	if errMark != nil {
		return ctrl.ErrorResponse(c, errMark)
	}

	return ctrl.SuccessResponse(c, nil, "mark all notifications as read success")
}

func (ctrl *NotificationController) CountUnread(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	count, errCount := ctrl.NotificationService.CountUnread(ctx, userID)
	if errCount != nil {
		return ctrl.ErrorResponse(c, errCount)
	}

	return ctrl.SuccessResponse(c, dto.UnreadCountResponse{Count: count}, "count unread notifications success")
}
