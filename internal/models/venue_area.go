package models

import (
	"time"

	"github.com/matsuri-platform/venue-service/internal/geometry"
)

type AreaType string

const (
	AreaVendor      AreaType = "vendor_area"
	AreaFoodCourt   AreaType = "food_court"
	AreaStage       AreaType = "stage"
	AreaSeating     AreaType = "seating"
	AreaPerformance AreaType = "performance_area"
	AreaEntrance    AreaType = "entrance"
	AreaParking     AreaType = "parking"
	AreaRestroom    AreaType = "restroom"
	AreaFirstAid    AreaType = "first_aid"
	AreaStorage     AreaType = "storage"
	AreaStaff       AreaType = "staff_area"
	AreaVIP         AreaType = "vip_area"
)

var areaTypes = map[AreaType]bool{
	AreaVendor:      true,
	AreaFoodCourt:   true,
	AreaStage:       true,
	AreaSeating:     true,
	AreaPerformance: true,
	AreaEntrance:    true,
	AreaParking:     true,
	AreaRestroom:    true,
	AreaFirstAid:    true,
	AreaStorage:     true,
	AreaStaff:       true,
	AreaVIP:         true,
}

type VenueArea struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	Name      string    `gorm:"not null" json:"name"`
	AreaType  AreaType  `gorm:"type:varchar(20);not null" json:"area_type"`
	Width     float64   `gorm:"not null" json:"width"`
	Height    float64   `gorm:"not null" json:"height"`
	XPosition float64   `gorm:"not null" json:"x_position"`
	YPosition float64   `gorm:"not null" json:"y_position"`
	Rotation  *float64  `json:"rotation,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Booths []Booth `gorm:"foreignKey:VenueAreaID;constraint:OnDelete:CASCADE" json:"booths,omitempty"`
}

func (a *VenueArea) rect() geometry.Rect {
	rot := 0.0
	if a.Rotation != nil {
		rot = *a.Rotation
	}
	return geometry.Rect{
		X:        a.XPosition,
		Y:        a.YPosition,
		Width:    a.Width,
		Height:   a.Height,
		Rotation: rot,
	}
}

func (a *VenueArea) TotalArea() float64 {
	return a.rect().Area()
}

func (a *VenueArea) CenterPoint() geometry.Point {
	return a.rect().Center()
}

func (a *VenueArea) BoundingBox() geometry.Bounds {
	return a.rect().BoundingBox()
}

// OverlapsWith uses the inclusive test: areas sharing an edge count as
// overlapping. Self-comparison is excluded.
func (a *VenueArea) OverlapsWith(other *VenueArea) bool {
	if other == nil || other.ID == a.ID {
		return false
	}
	return geometry.OverlapsInclusive(a.BoundingBox(), other.BoundingBox())
}

func (a *VenueArea) DistanceTo(other *VenueArea) float64 {
	return geometry.Distance(a.CenterPoint(), other.CenterPoint())
}

func (a *VenueArea) Validate() ValidationErrors {
	var errs ValidationErrors
	if a.Name == "" {
		errs = errs.Add("name", "is required")
	}
	if !areaTypes[a.AreaType] {
		errs = errs.Add("area_type", "is not a valid area type")
	}
	if a.Width <= 0 {
		errs = errs.Add("width", "must be greater than 0")
	}
	if a.Height <= 0 {
		errs = errs.Add("height", "must be greater than 0")
	}
	if a.Rotation != nil && (*a.Rotation < 0 || *a.Rotation > 360) {
		errs = errs.Add("rotation", "must be between 0 and 360")
	}
	if a.Capacity != nil && *a.Capacity < 0 {
		errs = errs.Add("capacity", "must be 0 or greater")
	}
	return errs
}
