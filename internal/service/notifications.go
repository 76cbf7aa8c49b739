package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/matsuri-platform/venue-service/internal/models"
)

// Notifier is the outbound notification sink. Satisfied by
// *rabbitmq.Publisher; a nil Notifier skips delivery.
type Notifier interface {
	Publish(routingKey string, payload any) error
}

const (
	RouteBoothAssigned   = "booth.assigned"
	RouteBoothUnassigned = "booth.unassigned"
)

// BoothNotification is the envelope published on booth assignment and
// unassignment. Delivery is fire-and-forget.
type BoothNotification struct {
	MessageID           string    `json:"message_id"`
	VendorApplicationID uint      `json:"vendor_application_id"`
	BoothID             uint      `json:"booth_id"`
	BoothNumber         string    `json:"booth_number"`
	VenueAreaID         uint      `json:"venue_area_id"`
	FestivalID          uint      `json:"festival_id"`
	Type                string    `json:"type"`
	Title               string    `json:"title"`
	Message             string    `json:"message"`
	SentAt              time.Time `json:"sent_at"`
}

func newBoothNotification(booth *models.Booth, vendorApplicationID uint, notifType, title, message string) BoothNotification {
	return BoothNotification{
		MessageID:           uuid.NewString(),
		VendorApplicationID: vendorApplicationID,
		BoothID:             booth.ID,
		BoothNumber:         booth.BoothNumber,
		VenueAreaID:         booth.VenueAreaID,
		FestivalID:          booth.FestivalID,
		Type:                notifType,
		Title:               title,
		Message:             message,
		SentAt:              time.Now().UTC(),
	}
}
