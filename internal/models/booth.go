package models

import (
	"strings"
	"time"

	"github.com/matsuri-platform/venue-service/internal/geometry"
)

type BoothStatus string

const (
	BoothAvailable   BoothStatus = "available"
	BoothReserved    BoothStatus = "reserved"
	BoothAssigned    BoothStatus = "assigned"
	BoothOccupied    BoothStatus = "occupied"
	BoothMaintenance BoothStatus = "maintenance"
	BoothUnavailable BoothStatus = "unavailable"
)

var boothStatuses = map[BoothStatus]bool{
	BoothAvailable:   true,
	BoothReserved:    true,
	BoothAssigned:    true,
	BoothOccupied:    true,
	BoothMaintenance: true,
	BoothUnavailable: true,
}

// OccupiedStatuses are the statuses counted against capacity: everything
// that is not available or reserved.
var OccupiedStatuses = []BoothStatus{BoothAssigned, BoothOccupied, BoothMaintenance, BoothUnavailable}

type BoothSize string

const (
	BoothSmall      BoothSize = "small"
	BoothMedium     BoothSize = "medium"
	BoothLarge      BoothSize = "large"
	BoothExtraLarge BoothSize = "extra_large"
	BoothCustom     BoothSize = "custom"
)

var boothSizes = map[BoothSize]bool{
	BoothSmall:      true,
	BoothMedium:     true,
	BoothLarge:      true,
	BoothExtraLarge: true,
	BoothCustom:     true,
}

type Booth struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	VenueAreaID         uint        `gorm:"not null;index" json:"venue_area_id"`
	FestivalID          uint        `gorm:"not null;index:idx_booth_number_per_festival,unique" json:"festival_id"`
	VendorApplicationID *uint       `json:"vendor_application_id,omitempty"`
	Name                string      `gorm:"not null" json:"name"`
	BoothNumber         string      `gorm:"not null;index:idx_booth_number_per_festival,unique" json:"booth_number"`
	Size                BoothSize   `gorm:"type:varchar(20);not null;default:'medium'" json:"size"`
	Width               float64     `gorm:"not null" json:"width"`
	Height              float64     `gorm:"not null" json:"height"`
	XPosition           float64     `gorm:"not null" json:"x_position"`
	YPosition           float64     `gorm:"not null" json:"y_position"`
	Rotation            *float64    `json:"rotation,omitempty"`
	Status              BoothStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	PowerRequired       bool        `gorm:"not null;default:false" json:"power_required"`
	WaterRequired       bool        `gorm:"not null;default:false" json:"water_required"`
	SpecialRequirements string      `gorm:"type:text" json:"special_requirements"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`

	VenueArea         *VenueArea         `gorm:"foreignKey:VenueAreaID" json:"venue_area,omitempty"`
	VendorApplication *VendorApplication `gorm:"foreignKey:VendorApplicationID" json:"vendor_application,omitempty"`
}

// rect deliberately ignores the stored rotation: booth geometry has
// always been axis-aligned even though the column exists. Changing this
// would move existing booth layouts.
func (b *Booth) rect() geometry.Rect {
	return geometry.Rect{
		X:      b.XPosition,
		Y:      b.YPosition,
		Width:  b.Width,
		Height: b.Height,
	}
}

func (b *Booth) TotalArea() float64 {
	return b.rect().Area()
}

func (b *Booth) CenterPoint() geometry.Point {
	return b.rect().Center()
}

func (b *Booth) Corners() [4]geometry.Point {
	return b.rect().Corners()
}

func (b *Booth) BoundingBox() geometry.Bounds {
	return b.rect().BoundingBox()
}

func (b *Booth) IsAvailable() bool {
	return b.Status == BoothAvailable
}

func (b *Booth) IsAssigned() bool {
	return b.Status == BoothAssigned && b.VendorApplicationID != nil
}

// CanBeAssigned: only an available booth can take a vendor.
func (b *Booth) CanBeAssigned() bool {
	return b.Status == BoothAvailable
}

// CanBeOccupied: move-in requires an assigned or reserved booth.
func (b *Booth) CanBeOccupied() bool {
	return b.Status == BoothAssigned || b.Status == BoothReserved
}

// CanBeFreed guards the direct release back to available: a booth still
// linked to a vendor must go through unassignment instead.
func (b *Booth) CanBeFreed() bool {
	return b.VendorApplicationID == nil
}

// OverlapsWith uses the inclusive test: booths sharing an edge count as
// overlapping. Self-comparison is excluded.
func (b *Booth) OverlapsWith(other *Booth) bool {
	if other == nil || other.ID == b.ID {
		return false
	}
	return geometry.OverlapsInclusive(b.BoundingBox(), other.BoundingBox())
}

func (b *Booth) DistanceTo(other *Booth) float64 {
	return geometry.Distance(b.CenterPoint(), other.CenterPoint())
}

// FitsWithinArea reports whether the booth lies entirely inside the given
// area's bounds. Fails closed when the area is unknown.
func (b *Booth) FitsWithinArea(area *VenueArea) bool {
	if area == nil {
		return false
	}
	return area.BoundingBox().ContainsBounds(b.BoundingBox())
}

// RequirementsSummary lists the booth's utility and special requirements
// in a human-readable form.
func (b *Booth) RequirementsSummary() string {
	var parts []string
	if b.PowerRequired {
		parts = append(parts, "power supply")
	}
	if b.WaterRequired {
		parts = append(parts, "water supply")
	}
	if s := strings.TrimSpace(b.SpecialRequirements); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "no special requirements"
	}
	return strings.Join(parts, ", ")
}

func (b *Booth) Validate() ValidationErrors {
	var errs ValidationErrors
	if b.Name == "" {
		errs = errs.Add("name", "is required")
	}
	if !boothSizes[b.Size] {
		errs = errs.Add("size", "is not a valid booth size")
	}
	if !boothStatuses[b.Status] {
		errs = errs.Add("status", "is not a valid booth status")
	}
	if b.Width <= 0 {
		errs = errs.Add("width", "must be greater than 0")
	}
	if b.Height <= 0 {
		errs = errs.Add("height", "must be greater than 0")
	}
	if b.Rotation != nil && (*b.Rotation < 0 || *b.Rotation > 360) {
		errs = errs.Add("rotation", "must be between 0 and 360")
	}
	return errs
}
