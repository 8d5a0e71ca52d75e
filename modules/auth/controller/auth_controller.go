package controller

import (
	"strings"

	"guestdesk/core/constants"
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/params"
	"guestdesk/core/utils"
	"guestdesk/modules/auth/dto"
	"guestdesk/modules/auth/service"
	"guestdesk/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.SignupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateSignupRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	user, errSignup := ctrl.AuthService.Signup(ctx, requestData)
	if errSignup != nil {
		return ctrl.ErrorResponse(c, errSignup)
	}

	return ctrl.CreatedResponse(c, user, "signup success")
}

func (ctrl *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateLoginRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, errLogin := ctrl.AuthService.Login(ctx, requestData)
	if errLogin != nil {
		return ctrl.ErrorResponse(c, errLogin)
	}

	return ctrl.SuccessResponse(c, result, "login success")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ctrl.Unauthorized(errors.ErrMissingAuthorizationHeader, "missing authorization header")
	}

	if errLogout := ctrl.AuthService.Logout(ctx, parts[1]); errLogout != nil {
		return ctrl.ErrorResponse(c, errLogout)
	}

	return ctrl.SuccessResponse(c, nil, "logout success")
}

func (ctrl *AuthController) Me(c echo.Context) error {
	ctx := c.Request().Context()

	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	user, errGet := ctrl.AuthService.GetUserById(ctx, claims.UserID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, user, "get current user success")
}

func (ctrl *AuthController) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	users, errGet := ctrl.AuthService.GetUsers(ctx, *queryParams)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, users, "get users success")
}

func (ctrl *AuthController) GoogleAuthURL(c echo.Context) error {
	ctx := c.Request().Context()

	result, errURL := ctrl.AuthService.GoogleAuthURL(ctx)
	if errURL != nil {
		return ctrl.ErrorResponse(c, errURL)
	}

	return ctrl.SuccessResponse(c, result, "google auth url")
}

func (ctrl *AuthController) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.GoogleCallbackRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Code == "" {
		requestData.Code = c.QueryParam("code")
	}
	if requestData.Code == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "code is required", nil)
	}

	result, errCb := ctrl.AuthService.GoogleCallback(ctx, requestData.Code)
	if errCb != nil {
		return ctrl.ErrorResponse(c, errCb)
	}

	return ctrl.SuccessResponse(c, result, "google sign-in success")
}
