package models

import (
	"time"

	"github.com/matsuri-platform/venue-service/internal/geometry"
)

type FacilityType string

const (
	FacilityIndoor           FacilityType = "indoor"
	FacilityOutdoor          FacilityType = "outdoor"
	FacilityMixed            FacilityType = "mixed"
	FacilityPavilion         FacilityType = "pavilion"
	FacilityArena            FacilityType = "arena"
	FacilityStadium          FacilityType = "stadium"
	FacilityPark             FacilityType = "park"
	FacilityConventionCenter FacilityType = "convention_center"
)

var facilityTypes = map[FacilityType]bool{
	FacilityIndoor:           true,
	FacilityOutdoor:          true,
	FacilityMixed:            true,
	FacilityPavilion:         true,
	FacilityArena:            true,
	FacilityStadium:          true,
	FacilityPark:             true,
	FacilityConventionCenter: true,
}

type Venue struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	FestivalID   uint         `gorm:"not null;index" json:"festival_id"`
	Name         string       `gorm:"not null" json:"name"`
	Capacity     int          `gorm:"not null" json:"capacity"`
	FacilityType FacilityType `gorm:"type:varchar(20);not null" json:"facility_type"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Areas          []VenueArea     `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"areas,omitempty"`
	LayoutElements []LayoutElement `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"layout_elements,omitempty"`
}

func (v *Venue) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// Coordinates returns (lat, lon, true) when the venue is geocoded.
func (v *Venue) Coordinates() (float64, float64, bool) {
	if !v.HasCoordinates() {
		return 0, 0, false
	}
	return *v.Latitude, *v.Longitude, true
}

// DistanceFrom returns the great-circle distance in kilometers to the
// other venue. Both venues must be geocoded.
func (v *Venue) DistanceFrom(other *Venue) (float64, bool) {
	if other == nil || !v.HasCoordinates() || !other.HasCoordinates() {
		return 0, false
	}
	return geometry.Haversine(*v.Latitude, *v.Longitude, *other.Latitude, *other.Longitude), true
}

// OccupancyRate is occupied/total as a percentage rounded to two decimal
// places. A scope with no booths has a rate of 0, not a division error.
func OccupancyRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	return geometry.Round2(float64(occupied) / float64(total) * 100)
}

func (v *Venue) Validate() ValidationErrors {
	var errs ValidationErrors
	if v.Name == "" {
		errs = errs.Add("name", "is required")
	}
	if v.Capacity <= 0 {
		errs = errs.Add("capacity", "must be greater than 0")
	}
	if !facilityTypes[v.FacilityType] {
		errs = errs.Add("facility_type", "is not a valid facility type")
	}
	if (v.Latitude == nil) != (v.Longitude == nil) {
		errs = errs.Add("coordinates", "latitude and longitude must be set together")
	}
	if v.Latitude != nil && (*v.Latitude < -90 || *v.Latitude > 90) {
		errs = errs.Add("latitude", "must be between -90 and 90")
	}
	if v.Longitude != nil && (*v.Longitude < -180 || *v.Longitude > 180) {
		errs = errs.Add("longitude", "must be between -180 and 180")
	}
	return errs
}
