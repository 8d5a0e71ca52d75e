package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/task/controller"

	"github.com/labstack/echo/v4"
)

type TaskRouter struct {
	controller *controller.TaskController
}

func NewTaskRouter(controller *controller.TaskController) *TaskRouter {
	return &TaskRouter{
		controller: controller,
	}
}

func (r *TaskRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	taskGroups := g.Group("/task-groups")
	taskGroups.Use(mw.AuthMiddleware())

	taskGroups.POST("", r.controller.CreateTaskGroup)
	taskGroups.GET("/events/:eventId", r.controller.GetTaskGroupsByEvent)
	taskGroups.PUT("/:id", r.controller.UpdateTaskGroup)
	taskGroups.DELETE("/:id", r.controller.DeleteTaskGroup)

	tasks := g.Group("/tasks")
	tasks.Use(mw.AuthMiddleware())

	tasks.POST("", r.controller.CreateTask)
	tasks.GET("", r.controller.GetTasks)
	tasks.GET("/:id", r.controller.GetTaskById)
	tasks.PUT("/:id", r.controller.UpdateTask)
	tasks.DELETE("/:id", r.controller.DeleteTask)
}
