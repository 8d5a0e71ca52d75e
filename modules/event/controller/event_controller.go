package controller

import (
	"guestdesk/core/constants"
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/params"
	"guestdesk/core/utils"
	"guestdesk/modules/event/dto"
	"guestdesk/modules/event/service"
	"guestdesk/modules/event/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(eventService service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   eventService,
	}
}

func (ctrl *EventController) getUserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func (ctrl *EventController) CreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	requestData := new(dto.EventRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateEventRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	event, errCreate := ctrl.EventService.CreateEvent(ctx, requestData, userID)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.CreatedResponse(c, event, "create event success")
}

func (ctrl *EventController) GetEventById(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.Param("id"))

	event, errGet := ctrl.EventService.GetEventById(ctx, eventId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, event, "get event success")
}

func (ctrl *EventController) GetEvents(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	events, errGet := ctrl.EventService.GetEvents(ctx, *queryParams)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, events, "get events success")
}

func (ctrl *EventController) UpdateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.EventRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateEventRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	errUpdate := ctrl.EventService.UpdateEvent(ctx, requestData, eventId)
	if errUpdate != nil {
		return ctrl.ErrorResponse(c, errUpdate)
	}

	return ctrl.SuccessResponse(c, nil, "update event success")
}

func (ctrl *EventController) DeleteEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.Param("id"))

	errDelete := ctrl.EventService.DeleteEvent(ctx, eventId)
	if errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete event success")
}

func (ctrl *EventController) PublicGetEventBySlug(c echo.Context) error {
	ctx := c.Request().Context()

	event, errGet := ctrl.EventService.GetEventBySlug(ctx, c.Param("slug"))
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, event, "get event success")
}
