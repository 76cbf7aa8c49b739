package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/matsuri-platform/venue-service/internal/service"
)

// mapServiceError translates service sentinel errors into HTTP errors.
// Validation errors pass through untouched so the error handler can
// render the field list.
func mapServiceError(err error) error {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return err
	}

	switch {
	case errors.Is(err, service.ErrVenueNotFound),
		errors.Is(err, service.ErrAreaNotFound),
		errors.Is(err, service.ErrBoothNotFound),
		errors.Is(err, service.ErrElementNotFound),
		errors.Is(err, service.ErrApplicationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrBoothNotAvailable),
		errors.Is(err, service.ErrApplicationNotApproved),
		errors.Is(err, service.ErrBoothNotAssigned),
		errors.Is(err, service.ErrBoothNotOccupiable),
		errors.Is(err, service.ErrBoothHasVendor),
		errors.Is(err, service.ErrStatusViaAssignment),
		errors.Is(err, service.ErrElementLocked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrVenueNotGeocoded):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func actorID(c echo.Context) string {
	return c.Request().Header.Get("X-Actor-ID")
}
