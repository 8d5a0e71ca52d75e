package controller

import (
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/utils"
	"guestdesk/modules/guest/dto"
	"guestdesk/modules/guest/service"
	"guestdesk/modules/guest/validator"

	"github.com/labstack/echo/v4"
)

type GuestController struct {
	controller.BaseController
	GuestService service.GuestServiceInterface
}

func NewGuestController(guestService service.GuestServiceInterface) *GuestController {
	return &GuestController{
		BaseController: controller.NewBaseController(),
		GuestService:   guestService,
	}
}

func (ctrl *GuestController) CreateGuestGroup(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.GuestGroupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateGuestGroupRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	group, errCreate := ctrl.GuestService.CreateGuestGroup(ctx, requestData)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.CreatedResponse(c, group, "create guest group success")
}

func (ctrl *GuestController) GetGuestGroupsByEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.QueryParam("event_id"))

	groups, errGet := ctrl.GuestService.GetGuestGroupsByEventId(ctx, eventId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, groups, "get guest groups success")
}

func (ctrl *GuestController) DeleteGuestGroup(c echo.Context) error {
	ctx := c.Request().Context()

	groupId := utils.ToUUID(c.Param("id"))

	errDelete := ctrl.GuestService.DeleteGuestGroup(ctx, groupId)
	if errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete guest group success")
}

func (ctrl *GuestController) CreateGuest(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.GuestRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateGuestRequest(requestData, true)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	guest, errCreate := ctrl.GuestService.CreateGuest(ctx, requestData)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.CreatedResponse(c, guest, "create guest success")
}

func (ctrl *GuestController) UpdateGuest(c echo.Context) error {
	ctx := c.Request().Context()

	guestId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.GuestRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateGuestRequest(requestData, false)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	guest, errUpdate := ctrl.GuestService.UpdateGuest(ctx, requestData, guestId)
	if errUpdate != nil {
		return ctrl.ErrorResponse(c, errUpdate)
	}

	return ctrl.SuccessResponse(c, guest, "update guest success")
}

func (ctrl *GuestController) DeleteGuest(c echo.Context) error {
	ctx := c.Request().Context()

	guestId := utils.ToUUID(c.Param("id"))

	errDelete := ctrl.GuestService.DeleteGuest(ctx, guestId)
	if errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete guest success")
}
