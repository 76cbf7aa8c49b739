package models

import (
	"encoding/json"
	"time"

	"github.com/matsuri-platform/venue-service/internal/geometry"
	"gorm.io/datatypes"
)

type ElementType string

const (
	ElementStage          ElementType = "stage"
	ElementEntrance       ElementType = "entrance"
	ElementExit           ElementType = "exit"
	ElementRestroom       ElementType = "restroom"
	ElementFirstAid       ElementType = "first_aid"
	ElementInfoBooth      ElementType = "info_booth"
	ElementFoodStall      ElementType = "food_stall"
	ElementSeatingArea    ElementType = "seating_area"
	ElementParking        ElementType = "parking"
	ElementFence          ElementType = "fence"
	ElementGate           ElementType = "gate"
	ElementPath           ElementType = "path"
	ElementRoad           ElementType = "road"
	ElementTent           ElementType = "tent"
	ElementTable          ElementType = "table"
	ElementChair          ElementType = "chair"
	ElementTrashBin       ElementType = "trash_bin"
	ElementRecyclingBin   ElementType = "recycling_bin"
	ElementSign           ElementType = "sign"
	ElementBanner         ElementType = "banner"
	ElementLighting       ElementType = "lighting"
	ElementSpeaker        ElementType = "speaker"
	ElementGenerator      ElementType = "generator"
	ElementWaterStation   ElementType = "water_station"
	ElementSecurityPost   ElementType = "security_post"
	ElementSmokingArea    ElementType = "smoking_area"
	ElementDecoration     ElementType = "decoration"
	ElementTree           ElementType = "tree"
	ElementCustom         ElementType = "custom"
)

var elementTypes = map[ElementType]bool{
	ElementStage:        true,
	ElementEntrance:     true,
	ElementExit:         true,
	ElementRestroom:     true,
	ElementFirstAid:     true,
	ElementInfoBooth:    true,
	ElementFoodStall:    true,
	ElementSeatingArea:  true,
	ElementParking:      true,
	ElementFence:        true,
	ElementGate:         true,
	ElementPath:         true,
	ElementRoad:         true,
	ElementTent:         true,
	ElementTable:        true,
	ElementChair:        true,
	ElementTrashBin:     true,
	ElementRecyclingBin: true,
	ElementSign:         true,
	ElementBanner:       true,
	ElementLighting:     true,
	ElementSpeaker:      true,
	ElementGenerator:    true,
	ElementWaterStation: true,
	ElementSecurityPost: true,
	ElementSmokingArea:  true,
	ElementDecoration:   true,
	ElementTree:         true,
	ElementCustom:       true,
}

type LayoutElement struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	VenueID     uint           `gorm:"not null;index" json:"venue_id"`
	ElementType ElementType    `gorm:"type:varchar(20);not null" json:"element_type"`
	Name        string         `gorm:"not null" json:"name"`
	XPosition   float64        `gorm:"not null" json:"x_position"`
	YPosition   float64        `gorm:"not null" json:"y_position"`
	Width       float64        `gorm:"not null" json:"width"`
	Height      float64        `gorm:"not null" json:"height"`
	Rotation    *float64       `json:"rotation,omitempty"`
	Color       string         `json:"color"`
	Layer       int            `gorm:"not null;default:0" json:"layer"`
	Locked      bool           `gorm:"not null;default:false" json:"locked"`
	Visible     bool           `gorm:"not null;default:true" json:"visible"`
	Properties  datatypes.JSON `gorm:"type:jsonb" json:"properties,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (e *LayoutElement) rect() geometry.Rect {
	rot := 0.0
	if e.Rotation != nil {
		rot = *e.Rotation
	}
	return geometry.Rect{
		X:        e.XPosition,
		Y:        e.YPosition,
		Width:    e.Width,
		Height:   e.Height,
		Rotation: rot,
	}
}

func (e *LayoutElement) TotalArea() float64 {
	return e.rect().Area()
}

func (e *LayoutElement) CenterPoint() geometry.Point {
	return e.rect().Center()
}

func (e *LayoutElement) Corners() [4]geometry.Point {
	return e.rect().Corners()
}

func (e *LayoutElement) BoundingBox() geometry.Bounds {
	return e.rect().BoundingBox()
}

// OverlapsWith uses the strict test: elements that merely touch edges do
// not overlap. Invisible elements never overlap anything.
func (e *LayoutElement) OverlapsWith(other *LayoutElement) bool {
	if other == nil || other.ID == e.ID {
		return false
	}
	if !e.Visible || !other.Visible {
		return false
	}
	return geometry.OverlapsStrict(e.BoundingBox(), other.BoundingBox())
}

func (e *LayoutElement) DistanceTo(other *LayoutElement) float64 {
	return geometry.Distance(e.CenterPoint(), other.CenterPoint())
}

// PropertiesMap decodes the opaque property bag. Malformed JSON degrades
// to an empty map rather than failing a read of decorative metadata.
func (e *LayoutElement) PropertiesMap() map[string]any {
	if len(e.Properties) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(e.Properties, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

func (e *LayoutElement) SetProperties(props map[string]any) error {
	if props == nil {
		props = map[string]any{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return err
	}
	e.Properties = datatypes.JSON(raw)
	return nil
}

func (e *LayoutElement) Validate() ValidationErrors {
	var errs ValidationErrors
	if e.Name == "" {
		errs = errs.Add("name", "is required")
	}
	if !elementTypes[e.ElementType] {
		errs = errs.Add("element_type", "is not a valid element type")
	}
	if e.Width <= 0 {
		errs = errs.Add("width", "must be greater than 0")
	}
	if e.Height <= 0 {
		errs = errs.Add("height", "must be greater than 0")
	}
	if e.Rotation != nil && (*e.Rotation < 0 || *e.Rotation > 360) {
		errs = errs.Add("rotation", "must be between 0 and 360")
	}
	if e.Layer < 0 {
		errs = errs.Add("layer", "must be 0 or greater")
	}
	return errs
}
