package controller

import (
	"strconv"

	"guestdesk/core/constants"
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/utils"
	"guestdesk/modules/checkin/dto"
	"guestdesk/modules/checkin/service"
	"guestdesk/modules/checkin/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CheckInController struct {
	controller.BaseController
	CheckInService service.CheckInServiceInterface
}

func NewCheckInController(checkInService service.CheckInServiceInterface) *CheckInController {
	return &CheckInController{
		BaseController: controller.NewBaseController(),
		CheckInService: checkInService,
	}
}

func (ctrl *CheckInController) getUserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func (ctrl *CheckInController) RecordCheckIn(c echo.Context) error {
	ctx := c.Request().Context()

	staffID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	requestData := new(dto.CheckInRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCheckInRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	checkIn, errRecord := ctrl.CheckInService.RecordCheckIn(ctx, requestData, staffID)
	if errRecord != nil {
		return ctrl.ErrorResponse(c, errRecord)
	}

	return ctrl.CreatedResponse(c, checkIn, "record check-in success")
}

func (ctrl *CheckInController) GetCheckInHistory(c echo.Context) error {
	ctx := c.Request().Context()

	guestId := utils.ToUUID(c.Param("guestId"))

	history, errGet := ctrl.CheckInService.GetCheckInHistory(ctx, guestId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, history, "get check-in history success")
}

func (ctrl *CheckInController) GetRecentCheckIns(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	recent, errGet := ctrl.CheckInService.GetRecentCheckIns(ctx, limit)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, recent, "get recent check-ins success")
}
