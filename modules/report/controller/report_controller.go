package controller

import (
	"strconv"

	"guestdesk/core/controller"
	"guestdesk/core/utils"
	"guestdesk/modules/report/service"

	"github.com/labstack/echo/v4"
)

type ReportController struct {
	controller.BaseController
	ReportService service.ReportServiceInterface
}

func NewReportController(reportService service.ReportServiceInterface) *ReportController {
	return &ReportController{
		BaseController: controller.NewBaseController(),
		ReportService:  reportService,
	}
}

func (ctrl *ReportController) GetAttendanceStats(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.Param("eventId"))

	stats, errGet := ctrl.ReportService.GetAttendanceStats(ctx, eventId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, stats, "get attendance stats success")
}

func (ctrl *ReportController) GetTaskProgress(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.Param("eventId"))

	stats, errGet := ctrl.ReportService.GetTaskProgress(ctx, eventId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, stats, "get task progress success")
}

func (ctrl *ReportController) GetEventReport(c echo.Context) error {
	ctx := c.Request().Context()

	eventId := utils.ToUUID(c.Param("eventId"))

	report, errGet := ctrl.ReportService.GetEventReport(ctx, eventId)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, report, "get event report success")
}

func (ctrl *ReportController) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	dashboard, errGet := ctrl.ReportService.GetDashboard(ctx, limit)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, dashboard, "get dashboard success")
}
