package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/matsuri-platform/venue-service/internal/dto"
	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/matsuri-platform/venue-service/internal/service"
)

type LayoutHandler struct {
	svc service.LayoutService
}

func NewLayoutHandler(svc service.LayoutService) *LayoutHandler {
	return &LayoutHandler{svc: svc}
}

func (h *LayoutHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/venues/:id/elements", h.CreateElement)
	api.GET("/venues/:id/elements", h.ListElements)
	api.POST("/venues/:id/layout/defaults", h.ApplyDefaults)

	elements := api.Group("/elements")
	elements.GET("/:id", h.GetElement)
	elements.DELETE("/:id", h.DeleteElement)
	elements.POST("/:id/move", h.Move)
	elements.POST("/:id/resize", h.Resize)
	elements.POST("/:id/rotate", h.Rotate)
	elements.POST("/:id/visibility", h.ToggleVisibility)
	elements.POST("/:id/lock", h.ToggleLock)
	elements.POST("/:id/front", h.BringToFront)
	elements.POST("/:id/back", h.SendToBack)
	elements.POST("/:id/clone", h.Clone)
	elements.PUT("/:id/properties", h.UpdateProperties)
}

func (h *LayoutHandler) CreateElement(c echo.Context) error {
	venueID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ElementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	element := &models.LayoutElement{
		ElementType: models.ElementType(req.ElementType),
		Name:        req.Name,
		XPosition:   req.XPosition,
		YPosition:   req.YPosition,
		Width:       req.Width,
		Height:      req.Height,
		Rotation:    req.Rotation,
		Color:       req.Color,
		Layer:       req.Layer,
		Locked:      req.Locked,
		Visible:     visible,
	}
	if req.Properties != nil {
		if err := element.SetProperties(req.Properties); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid properties")
		}
	}

	element, err = h.svc.CreateElement(c.Request().Context(), venueID, element)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToElementResponse(element))
}

func (h *LayoutHandler) ListElements(c echo.Context) error {
	venueID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	elements, err := h.svc.ListElements(c.Request().Context(), venueID)
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]dto.ElementResponse, len(elements))
	for i := range elements {
		resp[i] = dto.ToElementResponse(&elements[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *LayoutHandler) ApplyDefaults(c echo.Context) error {
	venueID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	created, err := h.svc.ApplyDefaultLayout(c.Request().Context(), venueID)
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]dto.ElementResponse, len(created))
	for i := range created {
		resp[i] = dto.ToElementResponse(&created[i])
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *LayoutHandler) GetElement(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	element, err := h.svc.GetElement(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

func (h *LayoutHandler) DeleteElement(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteElement(c.Request().Context(), actorID(c), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LayoutHandler) Move(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.MoveElementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	element, err := h.svc.MoveElement(c.Request().Context(), actorID(c), id, req.X, req.Y)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

func (h *LayoutHandler) Resize(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ResizeElementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	element, err := h.svc.ResizeElement(c.Request().Context(), actorID(c), id, req.Width, req.Height)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

func (h *LayoutHandler) Rotate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.RotateElementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	element, err := h.svc.RotateElement(c.Request().Context(), actorID(c), id, req.Degrees)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

func (h *LayoutHandler) ToggleVisibility(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	element, err := h.svc.ToggleVisibility(c.Request().Context(), actorID(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

func (h *LayoutHandler) ToggleLock(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	element, err := h.svc.ToggleLock(c.Request().Context(), actorID(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

func (h *LayoutHandler) BringToFront(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	element, err := h.svc.BringToFront(c.Request().Context(), actorID(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

func (h *LayoutHandler) SendToBack(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	element, err := h.svc.SendToBack(c.Request().Context(), actorID(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

func (h *LayoutHandler) Clone(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CloneElementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	clone, err := h.svc.CloneElement(c.Request().Context(), actorID(c), id, req.Name)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToElementResponse(clone))
}

func (h *LayoutHandler) UpdateProperties(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var props map[string]any
	if err := c.Bind(&props); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	element, err := h.svc.UpdateProperties(c.Request().Context(), actorID(c), id, props)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto.ToElementResponse(element))
}
