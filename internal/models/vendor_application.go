package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// VendorApplication is owned by the vendor service and replicated here
// over RabbitMQ so booth assignment can check approval locally.
type VendorApplication struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	FestivalID uint              `gorm:"not null;index" json:"festival_id"`
	VendorName string            `gorm:"not null" json:"vendor_name"`
	Status     ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (a *VendorApplication) IsApproved() bool {
	return a.Status == ApplicationApproved
}
