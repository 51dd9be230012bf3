package handler

import (
	"log/slog"
	"net/http"

	"guidematch/internal/delivery/http/response"
	domainerrors "guidematch/internal/domain/errors"
	"guidematch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuideHandler holds dependencies for the guide directory handlers.
type GuideHandler struct {
	uc     usecase.GuideUsecase
	logger *slog.Logger
}

// NewGuideHandler is the constructor for GuideHandler, injected by Fx.
func NewGuideHandler(uc usecase.GuideUsecase, logger *slog.Logger) *GuideHandler {
	return &GuideHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the guide directory listing with optional filters.
func (h *GuideHandler) List(c echo.Context) error {
	input := usecase.ListGuidesInput{
		Languages: c.QueryParam("languages"),
		Areas:     c.QueryParam("areas"),
		MinRating: c.QueryParam("min_rating"),
	}

	guides, err := h.uc.ListGuides(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewGuides(guides))
}

// Get handles the single guide profile lookup.
func (h *GuideHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparsable identifier cannot name any guide.
		return errors.Wrap(domainerrors.ErrGuideNotFound, "invalid guide id")
	}

	guide, err := h.uc.GetGuide(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewGuide(guide))
}
