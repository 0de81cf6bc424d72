// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/delivery/http/response"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLoginResponse(user))
}

// Current handles GET /api/users/current.
func (h *UserHandler) Current(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	user, err = h.userUC.Get(ctx, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Update handles PATCH /api/users/current.
func (h *UserHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	updated, err := h.userUC.Update(ctx, user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(updated))
}

// Logout handles DELETE /api/users/current.
func (h *UserHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	if _, err := h.userUC.Logout(ctx, user); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, true)
}
