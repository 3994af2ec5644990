package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandlerDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"link not found", domain.ErrLinkNotFound, http.StatusNotFound},
		{"nutritionist not found", domain.ErrNutritionistNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"meal not found", domain.ErrMealNotFound, http.StatusNotFound},
		{"duplicate link", domain.ErrDuplicateLink, http.StatusConflict},
		{"link modified", domain.ErrLinkModified, http.StatusConflict},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handleError(t, tc.err)
			if rec.Code != tc.code {
				t.Errorf("status = %d, want %d", rec.Code, tc.code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body["error"] == "" {
				t.Error("error envelope must carry a message")
			}
		})
	}
}

func TestHTTPErrorHandlerWrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("save link"), domain.ErrDuplicateLink)
	rec := handleError(t, wrapped)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestHTTPErrorHandlerEchoError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "bad input"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHTTPErrorHandlerUnknownError(t *testing.T) {
	rec := handleError(t, errors.New("mongo timeout on primary"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internal details leaked to the client: %q", body["error"])
	}
}
