package dto

import (
	"time"

	"github.com/matsuri-platform/venue-service/internal/geometry"
	"github.com/matsuri-platform/venue-service/internal/models"
)

type VenueResponse struct {
	ID           uint                `json:"id"`
	FestivalID   uint                `json:"festival_id"`
	Name         string              `json:"name"`
	Capacity     int                 `json:"capacity"`
	FacilityType models.FacilityType `json:"facility_type"`
	Latitude     *float64            `json:"latitude,omitempty"`
	Longitude    *float64            `json:"longitude,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`

	Areas          []AreaResponse    `json:"areas,omitempty"`
	LayoutElements []ElementResponse `json:"layout_elements,omitempty"`
}

type AreaResponse struct {
	ID          uint            `json:"id"`
	VenueID     uint            `json:"venue_id"`
	Name        string          `json:"name"`
	AreaType    models.AreaType `json:"area_type"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	XPosition   float64         `json:"x_position"`
	YPosition   float64         `json:"y_position"`
	Rotation    *float64        `json:"rotation,omitempty"`
	Capacity    *int            `json:"capacity,omitempty"`
	TotalArea   float64         `json:"total_area"`
	CenterPoint geometry.Point  `json:"center_point"`
}

type BoothResponse struct {
	ID                  uint               `json:"id"`
	VenueAreaID         uint               `json:"venue_area_id"`
	FestivalID          uint               `json:"festival_id"`
	VendorApplicationID *uint              `json:"vendor_application_id,omitempty"`
	Name                string             `json:"name"`
	BoothNumber         string             `json:"booth_number"`
	Size                models.BoothSize   `json:"size"`
	Width               float64            `json:"width"`
	Height              float64            `json:"height"`
	XPosition           float64            `json:"x_position"`
	YPosition           float64            `json:"y_position"`
	Rotation            *float64           `json:"rotation,omitempty"`
	Status              models.BoothStatus `json:"status"`
	PowerRequired       bool               `json:"power_required"`
	WaterRequired       bool               `json:"water_required"`
	SpecialRequirements string             `json:"special_requirements,omitempty"`
	RequirementsSummary string             `json:"requirements_summary"`
	TotalArea           float64            `json:"total_area"`
	CenterPoint         geometry.Point     `json:"center_point"`
}

type ElementResponse struct {
	ID          uint               `json:"id"`
	VenueID     uint               `json:"venue_id"`
	ElementType models.ElementType `json:"element_type"`
	Name        string             `json:"name"`
	XPosition   float64            `json:"x_position"`
	YPosition   float64            `json:"y_position"`
	Width       float64            `json:"width"`
	Height      float64            `json:"height"`
	Rotation    *float64           `json:"rotation,omitempty"`
	Color       string             `json:"color"`
	Layer       int                `json:"layer"`
	Locked      bool               `json:"locked"`
	Visible     bool               `json:"visible"`
	Properties  map[string]any     `json:"properties"`
}

type DistanceResponse struct {
	FromVenueID uint    `json:"from_venue_id"`
	ToVenueID   uint    `json:"to_venue_id"`
	Kilometers  float64 `json:"kilometers"`
}

type BoothNumbersResponse struct {
	Renumbered int `json:"renumbered"`
}

type CapacityResponse struct {
	VenueID            uint  `json:"venue_id"`
	TotalBoothCapacity int64 `json:"total_booth_capacity"`
}

type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

func ToVenueResponse(v *models.Venue) VenueResponse {
	resp := VenueResponse{
		ID:           v.ID,
		FestivalID:   v.FestivalID,
		Name:         v.Name,
		Capacity:     v.Capacity,
		FacilityType: v.FacilityType,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		CreatedAt:    v.CreatedAt,
	}
	for i := range v.Areas {
		resp.Areas = append(resp.Areas, ToAreaResponse(&v.Areas[i]))
	}
	for i := range v.LayoutElements {
		resp.LayoutElements = append(resp.LayoutElements, ToElementResponse(&v.LayoutElements[i]))
	}
	return resp
}

func ToAreaResponse(a *models.VenueArea) AreaResponse {
	return AreaResponse{
		ID:          a.ID,
		VenueID:     a.VenueID,
		Name:        a.Name,
		AreaType:    a.AreaType,
		Width:       a.Width,
		Height:      a.Height,
		XPosition:   a.XPosition,
		YPosition:   a.YPosition,
		Rotation:    a.Rotation,
		Capacity:    a.Capacity,
		TotalArea:   a.TotalArea(),
		CenterPoint: a.CenterPoint(),
	}
}

func ToBoothResponse(b *models.Booth) BoothResponse {
	return BoothResponse{
		ID:                  b.ID,
		VenueAreaID:         b.VenueAreaID,
		FestivalID:          b.FestivalID,
		VendorApplicationID: b.VendorApplicationID,
		Name:                b.Name,
		BoothNumber:         b.BoothNumber,
		Size:                b.Size,
		Width:               b.Width,
		Height:              b.Height,
		XPosition:           b.XPosition,
		YPosition:           b.YPosition,
		Rotation:            b.Rotation,
		Status:              b.Status,
		PowerRequired:       b.PowerRequired,
		WaterRequired:       b.WaterRequired,
		SpecialRequirements: b.SpecialRequirements,
		RequirementsSummary: b.RequirementsSummary(),
		TotalArea:           b.TotalArea(),
		CenterPoint:         b.CenterPoint(),
	}
}

func ToElementResponse(e *models.LayoutElement) ElementResponse {
	return ElementResponse{
		ID:          e.ID,
		VenueID:     e.VenueID,
		ElementType: e.ElementType,
		Name:        e.Name,
		XPosition:   e.XPosition,
		YPosition:   e.YPosition,
		Width:       e.Width,
		Height:      e.Height,
		Rotation:    e.Rotation,
		Color:       e.Color,
		Layer:       e.Layer,
		Locked:      e.Locked,
		Visible:     e.Visible,
		Properties:  e.PropertiesMap(),
	}
}
