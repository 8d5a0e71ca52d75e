package middleware

import (
	"net/http"
	"strings"

	"guestdesk/core/cache"
	"guestdesk/core/constants"
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware validates the Bearer token and stores its claims in the
// echo context under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrInvalidTokenFormat, "invalid authorization header format")
			}
			token := parts[1]

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", err)
				}
				if blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "token revoked")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:ValidateAndParseToken", err)
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "invalid or expired token")
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "invalid token scope")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireAdmin must run after AuthMiddleware.
func (m *Middleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "unauthorized")
			}
			if claims.Role != "Admin" {
				return controller.NewErrorResponse(http.StatusForbidden, errors.ErrForbidden, "admin role required")
			}
			return next(c)
		}
	}
}
