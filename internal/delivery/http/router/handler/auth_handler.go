// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"guidematch/internal/delivery/http/response"
	domainerrors "guidematch/internal/domain/errors"
	"guidematch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidBody, "failed to bind registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrFieldsRequired, "missing registration fields")
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.Register{
		Message: "User registered successfully",
		User:    response.NewAccount(output.Account),
	})
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidBody, "failed to bind login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrFieldsRequired, "missing login fields")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Login{
		Message:     "Login successful",
		AccessToken: output.AccessToken,
		User:        response.NewAccount(output.Account),
	})
}
