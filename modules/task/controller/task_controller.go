package controller

import (
	"guestdesk/core/constants"
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/utils"
	"guestdesk/modules/task/dto"
	"guestdesk/modules/task/entity"
	"guestdesk/modules/task/repository"
	"guestdesk/modules/task/service"
	"guestdesk/modules/task/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TaskController struct {
	controller.BaseController
	TaskService service.TaskServiceInterface
}

func NewTaskController(taskService service.TaskServiceInterface) *TaskController {
	return &TaskController{
		BaseController: controller.NewBaseController(),
		TaskService:    taskService,
	}
}

func (ctrl *TaskController) getUserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func (ctrl *TaskController) CreateTaskGroup(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.TaskGroupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateTaskGroupRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	group, errCreate := ctrl.TaskService.CreateTaskGroup(ctx, requestData)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.CreatedResponse(c, group, "create task group success")
}

func (ctrl *TaskController) GetTaskGroupsByEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.Param("eventId"))

	groups, errGet := ctrl.TaskService.GetTaskGroupsByEventId(ctx, eventId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, groups, "get task groups success")
}

func (ctrl *TaskController) UpdateTaskGroup(c echo.Context) error {
	ctx := c.Request().Context()

	groupId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.TaskGroupUpdateRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateTaskGroupUpdateRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	errUpdate := ctrl.TaskService.UpdateTaskGroup(ctx, requestData, groupId)
	if errUpdate != nil {
		return ctrl.ErrorResponse(c, errUpdate)
	}

	return ctrl.SuccessResponse(c, nil, "update task group success")
}

func (ctrl *TaskController) DeleteTaskGroup(c echo.Context) error {
	ctx := c.Request().Context()

	groupId := utils.ToUUID(c.Param("id"))

	errDelete := ctrl.TaskService.DeleteTaskGroup(ctx, groupId)
	if errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete task group success")
}

func (ctrl *TaskController) CreateTask(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	requestData := new(dto.TaskRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateTaskRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	task, errCreate := ctrl.TaskService.CreateTask(ctx, requestData, userID)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.CreatedResponse(c, task, "create task success")
}

func (ctrl *TaskController) GetTaskById(c echo.Context) error {
	ctx := c.Request().Context()

	taskId := utils.ToUUID(c.Param("id"))

	task, errGet := ctrl.TaskService.GetTaskById(ctx, taskId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, task, "get task success")
}

func (ctrl *TaskController) GetTasks(c echo.Context) error {
	ctx := c.Request().Context()

	filter := repository.TaskFilter{}
	if groupID, ok := utils.TryParseUUID(c.QueryParam("task_group_id")); ok {
		filter.TaskGroupID = &groupID
	}
	if assigneeID, ok := utils.TryParseUUID(c.QueryParam("assigned_to_id")); ok {
		filter.AssignedToID = &assigneeID
	}
	if statusParam := c.QueryParam("status"); statusParam != "" {
		status := entity.TaskStatus(statusParam)
		if !status.Valid() {
			return ctrl.BadRequest(errors.ErrInvalidInput, "unknown status filter", nil)
		}
		filter.Status = &status
	}

	tasks, errGet := ctrl.TaskService.GetTasks(ctx, filter)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, tasks, "get tasks success")
}

func (ctrl *TaskController) UpdateTask(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := ctrl.getUserIDFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	taskId := utils.ToUUID(c.Param("id"))

	requestData := new(dto.TaskUpdateRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateTaskUpdateRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	task, errUpdate := ctrl.TaskService.UpdateTask(ctx, requestData, taskId, userID)
	if errUpdate != nil {
		return ctrl.ErrorResponse(c, errUpdate)
	}

	return ctrl.SuccessResponse(c, task, "update task success")
}

func (ctrl *TaskController) DeleteTask(c echo.Context) error {
	ctx := c.Request().Context()

	taskId := utils.ToUUID(c.Param("id"))

	errDelete := ctrl.TaskService.DeleteTask(ctx, taskId)
	if errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete task success")
}
