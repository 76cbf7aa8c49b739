package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/matsuri-platform/venue-service/internal/dto"
	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/matsuri-platform/venue-service/internal/service"
)

type BoothHandler struct {
	svc service.BoothService
}

func NewBoothHandler(svc service.BoothService) *BoothHandler {
	return &BoothHandler{svc: svc}
}

func (h *BoothHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/areas/:id/booths", h.CreateBooth)
	api.GET("/areas/:id/booths", h.ListBooths)

	booths := api.Group("/booths")
	booths.GET("/:id", h.GetBooth)
	booths.PUT("/:id", h.UpdateBooth)
	booths.DELETE("/:id", h.DeleteBooth)
	booths.GET("/:id/placement", h.CheckPlacement)
	booths.POST("/:id/assign", h.AssignToVendor)
	booths.POST("/:id/unassign", h.UnassignFromVendor)
	booths.POST("/:id/occupy", h.MarkOccupied)
	booths.POST("/:id/release", h.MarkAvailable)
}

func (h *BoothHandler) CreateBooth(c echo.Context) error {
	areaID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.BoothRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booth, err := h.svc.CreateBooth(c.Request().Context(), areaID, boothFromRequest(&req))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBoothResponse(booth))
}

func (h *BoothHandler) ListBooths(c echo.Context) error {
	areaID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	booths, err := h.svc.ListBooths(c.Request().Context(), areaID)
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]dto.BoothResponse, len(booths))
	for i := range booths {
		resp[i] = dto.ToBoothResponse(&booths[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BoothHandler) GetBooth(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	booth, err := h.svc.GetBooth(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBoothResponse(booth))
}

func (h *BoothHandler) UpdateBooth(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.BoothRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booth := boothFromRequest(&req)
	booth.ID = id
	booth, err = h.svc.UpdateBooth(c.Request().Context(), booth)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBoothResponse(booth))
}

func (h *BoothHandler) DeleteBooth(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteBooth(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BoothHandler) CheckPlacement(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	report, err := h.svc.CheckPlacement(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *BoothHandler) AssignToVendor(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.AssignBoothRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.VendorApplicationID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "vendor_application_id is required")
	}

	booth, err := h.svc.AssignToVendor(c.Request().Context(), id, req.VendorApplicationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBoothResponse(booth))
}

func (h *BoothHandler) UnassignFromVendor(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	booth, err := h.svc.UnassignFromVendor(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBoothResponse(booth))
}

func (h *BoothHandler) MarkOccupied(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	booth, err := h.svc.MarkOccupied(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBoothResponse(booth))
}

func (h *BoothHandler) MarkAvailable(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	booth, err := h.svc.MarkAvailable(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBoothResponse(booth))
}

func boothFromRequest(req *dto.BoothRequest) *models.Booth {
	return &models.Booth{
		Name:                req.Name,
		BoothNumber:         req.BoothNumber,
		Size:                models.BoothSize(req.Size),
		Width:               req.Width,
		Height:              req.Height,
		XPosition:           req.XPosition,
		YPosition:           req.YPosition,
		Rotation:            req.Rotation,
		Status:              models.BoothStatus(req.Status),
		PowerRequired:       req.PowerRequired,
		WaterRequired:       req.WaterRequired,
		SpecialRequirements: req.SpecialRequirements,
	}
}
