package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/matsuri-platform/venue-service/internal/dto"
	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/matsuri-platform/venue-service/internal/service"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

func (h *VenueHandler) RegisterRoutes(api *echo.Group) {
	venues := api.Group("/venues")
	venues.POST("", h.CreateVenue)
	venues.GET("", h.ListVenues)
	venues.GET("/:id", h.GetVenue)
	venues.PUT("/:id", h.UpdateVenue)
	venues.DELETE("/:id", h.DeleteVenue)
	venues.GET("/:id/capacity", h.GetCapacity)
	venues.GET("/:id/occupancy", h.GetOccupancy)
	venues.GET("/:id/bounds", h.GetLayoutBounds)
	venues.GET("/:id/distance/:other_id", h.GetDistance)
	venues.POST("/:id/booth-numbers", h.GenerateBoothNumbers)
	venues.POST("/:id/areas", h.CreateArea)
	venues.GET("/:id/areas", h.ListAreas)

	areas := api.Group("/areas")
	areas.GET("/:id", h.GetArea)
	areas.PUT("/:id", h.UpdateArea)
	areas.DELETE("/:id", h.DeleteArea)
	areas.GET("/:id/occupancy", h.GetAreaOccupancy)
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var req dto.CreateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FestivalID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "festival_id is required")
	}

	venue := &models.Venue{
		FestivalID:   req.FestivalID,
		Name:         req.Name,
		Capacity:     req.Capacity,
		FacilityType: models.FacilityType(req.FacilityType),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	venue, err := h.svc.CreateVenue(c.Request().Context(), venue)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	festivalID, err := strconv.ParseUint(c.QueryParam("festival_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "festival_id query parameter is required")
	}

	venues, err := h.svc.ListVenues(c.Request().Context(), uint(festivalID))
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]dto.VenueResponse, len(venues))
	for i := range venues {
		resp[i] = dto.ToVenueResponse(&venues[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var venue *models.Venue
	if c.QueryParam("include") == "layout" {
		venue, err = h.svc.GetVenueWithLayout(c.Request().Context(), id)
	} else {
		venue, err = h.svc.GetVenue(c.Request().Context(), id)
	}
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	venue := &models.Venue{
		ID:           id,
		Name:         req.Name,
		Capacity:     req.Capacity,
		FacilityType: models.FacilityType(req.FacilityType),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	venue, err = h.svc.UpdateVenue(c.Request().Context(), venue)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteVenue(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VenueHandler) GetCapacity(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	total, err := h.svc.TotalBoothCapacity(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.CapacityResponse{VenueID: id, TotalBoothCapacity: total})
}

func (h *VenueHandler) GetOccupancy(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	summary, err := h.svc.VenueOccupancy(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *VenueHandler) GetLayoutBounds(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	report, err := h.svc.LayoutBounds(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *VenueHandler) GetDistance(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	otherID, err := parseID(c, "other_id")
	if err != nil {
		return err
	}

	km, err := h.svc.DistanceBetween(c.Request().Context(), id, otherID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.DistanceResponse{FromVenueID: id, ToVenueID: otherID, Kilometers: km})
}

func (h *VenueHandler) GenerateBoothNumbers(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	renumbered, err := h.svc.GenerateBoothNumbers(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.BoothNumbersResponse{Renumbered: renumbered})
}

func (h *VenueHandler) CreateArea(c echo.Context) error {
	venueID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.AreaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	area, err := h.svc.CreateArea(c.Request().Context(), venueID, areaFromRequest(&req))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToAreaResponse(area))
}

func (h *VenueHandler) ListAreas(c echo.Context) error {
	venueID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	areas, err := h.svc.ListAreas(c.Request().Context(), venueID)
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]dto.AreaResponse, len(areas))
	for i := range areas {
		resp[i] = dto.ToAreaResponse(&areas[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *VenueHandler) GetArea(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	area, err := h.svc.GetArea(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToAreaResponse(area))
}

func (h *VenueHandler) UpdateArea(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.AreaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	area := areaFromRequest(&req)
	area.ID = id
	area, err = h.svc.UpdateArea(c.Request().Context(), area)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToAreaResponse(area))
}

func (h *VenueHandler) DeleteArea(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteArea(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VenueHandler) GetAreaOccupancy(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	summary, err := h.svc.AreaOccupancy(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

func areaFromRequest(req *dto.AreaRequest) *models.VenueArea {
	return &models.VenueArea{
		Name:      req.Name,
		AreaType:  models.AreaType(req.AreaType),
		Width:     req.Width,
		Height:    req.Height,
		XPosition: req.XPosition,
		YPosition: req.YPosition,
		Rotation:  req.Rotation,
		Capacity:  req.Capacity,
	}
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
	}
	return uint(id), nil
}
