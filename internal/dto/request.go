package dto

type CreateVenueRequest struct {
	FestivalID   uint     `json:"festival_id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Capacity     int      `json:"capacity" validate:"required,gt=0"`
	FacilityType string   `json:"facility_type" validate:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type UpdateVenueRequest struct {
	Name         string   `json:"name" validate:"required"`
	Capacity     int      `json:"capacity" validate:"required,gt=0"`
	FacilityType string   `json:"facility_type" validate:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type AreaRequest struct {
	Name      string   `json:"name" validate:"required"`
	AreaType  string   `json:"area_type" validate:"required"`
	Width     float64  `json:"width" validate:"required,gt=0"`
	Height    float64  `json:"height" validate:"required,gt=0"`
	XPosition float64  `json:"x_position"`
	YPosition float64  `json:"y_position"`
	Rotation  *float64 `json:"rotation"`
	Capacity  *int     `json:"capacity"`
}

type BoothRequest struct {
	Name                string   `json:"name" validate:"required"`
	BoothNumber         string   `json:"booth_number"`
	Size                string   `json:"size"`
	Width               float64  `json:"width" validate:"required,gt=0"`
	Height              float64  `json:"height" validate:"required,gt=0"`
	XPosition           float64  `json:"x_position"`
	YPosition           float64  `json:"y_position"`
	Rotation            *float64 `json:"rotation"`
	Status              string   `json:"status"`
	PowerRequired       bool     `json:"power_required"`
	WaterRequired       bool     `json:"water_required"`
	SpecialRequirements string   `json:"special_requirements"`
}

type AssignBoothRequest struct {
	VendorApplicationID uint `json:"vendor_application_id" validate:"required"`
}

type ElementRequest struct {
	ElementType string         `json:"element_type" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	XPosition   float64        `json:"x_position"`
	YPosition   float64        `json:"y_position"`
	Width       float64        `json:"width" validate:"required,gt=0"`
	Height      float64        `json:"height" validate:"required,gt=0"`
	Rotation    *float64       `json:"rotation"`
	Color       string         `json:"color"`
	Layer       int            `json:"layer"`
	Locked      bool           `json:"locked"`
	Visible     *bool          `json:"visible"`
	Properties  map[string]any `json:"properties"`
}

type MoveElementRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ResizeElementRequest struct {
	Width  float64 `json:"width" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
}

type RotateElementRequest struct {
	Degrees float64 `json:"degrees"`
}

type CloneElementRequest struct {
	Name string `json:"name"`
}
