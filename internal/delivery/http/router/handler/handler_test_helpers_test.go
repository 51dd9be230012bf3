package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"guidematch/internal/delivery/http/middleware"
	"guidematch/internal/delivery/http/validator"
	"guidematch/internal/domain/entity"
	"guidematch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// fakeAuthUsecase returns canned outputs for the auth handlers.
type fakeAuthUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error

	lastRegister *usecase.RegisterInput
	lastLogin    *usecase.LoginInput
}

func (f *fakeAuthUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.lastRegister = input
	if f.registerErr != nil {
		return nil, f.registerErr
	}

	return f.registerOutput, nil
}

func (f *fakeAuthUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	f.lastLogin = input
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return f.loginOutput, nil
}

// fakeGuideUsecase returns canned outputs for the guide handlers.
type fakeGuideUsecase struct {
	guides  []*entity.Guide
	listErr error
	guide   *entity.Guide
	getErr  error

	lastList  *usecase.ListGuidesInput
	lastGetID uuid.UUID
}

func (f *fakeGuideUsecase) ListGuides(_ context.Context, input *usecase.ListGuidesInput) ([]*entity.Guide, error) {
	f.lastList = input
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.guides, nil
}

func (f *fakeGuideUsecase) GetGuide(_ context.Context, id uuid.UUID) (*entity.Guide, error) {
	f.lastGetID = id
	if f.getErr != nil {
		return nil, f.getErr
	}

	return f.guide, nil
}

// newTestEcho builds an echo instance with the same validator and error
// handler the real server installs.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
