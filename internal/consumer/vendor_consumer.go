package consumer

import (
	"encoding/json"
	"log"

	"github.com/matsuri-platform/venue-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VendorConsumer mirrors vendor applications from the vendor service into
// the local database so booth assignment can check approval without a
// cross-service call.
type VendorConsumer struct {
	db *gorm.DB
}

func NewVendorConsumer(db *gorm.DB) *VendorConsumer {
	return &VendorConsumer{db: db}
}

func (vc *VendorConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			vc.handleMessage(msg)
		}
		log.Println("[VendorConsumer] channel closed, stopping consumer")
	}()
}

func (vc *VendorConsumer) handleMessage(msg amqp.Delivery) {
	var app models.VendorApplication
	if err := json.Unmarshal(msg.Body, &app); err != nil {
		log.Printf("[VendorConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	// Upsert: insert or update on conflict (same ID from the vendor service)
	result := vc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"festival_id", "vendor_name", "status", "updated_at"}),
	}).Create(&app)

	if result.Error != nil {
		log.Printf("[VendorConsumer] failed to upsert application %d: %v", app.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[VendorConsumer] synced application %d: %s (%s)", app.ID, app.VendorName, app.Status)
	msg.Ack(false)
}
