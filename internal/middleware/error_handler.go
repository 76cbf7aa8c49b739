package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/matsuri-platform/venue-service/internal/dto"
	"github.com/matsuri-platform/venue-service/internal/models"
)

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		_ = c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: "validation failed",
			Errors:  verrs,
		})
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
