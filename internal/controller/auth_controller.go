package controller

import (
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pazarlabs/pazar/internal/dto"
	"github.com/pazarlabs/pazar/internal/middleware"
	"github.com/pazarlabs/pazar/internal/service"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/pazarlabs/pazar/pkg/response"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service service.IdentityService
}

func CreateAuthController(e *echo.Group, service service.IdentityService, gate echo.MiddlewareFunc) {
	uc := AuthController{
		service: service,
	}
	e.POST("/users/register", uc.Register)
	e.POST("/users/login", uc.Login)
	e.POST("/users/logout", uc.Logout, gate)
}

func (c *AuthController) Register(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	err = c.service.Register(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.establishSession(e, respPayload.UserID); err != nil {
		return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *AuthController) Logout(e echo.Context) error {
	sess, err := echosession.Get(middleware.SessionName, e)
	if err == nil {
		sess.Options.MaxAge = -1
		if err := sess.Save(e.Request(), e.Response()); err != nil {
			log.Error().Err(err).Str("component", "Logout").Msg("")
			return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
		}
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *AuthController) establishSession(e echo.Context, userID int64) error {
	sess, err := echosession.Get(middleware.SessionName, e)
	if err != nil {
		log.Error().Err(err).Str("component", "establishSession").Msg("")
		return err
	}

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	sess.Values[middleware.SessionKeyUserID] = userID

	if err := sess.Save(e.Request(), e.Response()); err != nil {
		log.Error().Err(err).Str("component", "establishSession").Msg("")
		return err
	}

	return nil
}
