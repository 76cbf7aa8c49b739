package service

import (
	"context"

	"github.com/matsuri-platform/venue-service/internal/models"
	"gorm.io/gorm"
)

// Function-field mocks for the repository interfaces. Methods without a
// configured function fall back to gorm.ErrRecordNotFound / zero values.

type mockVenueRepo struct {
	createFn          func(ctx context.Context, venue *models.Venue) error
	findByIDFn        func(ctx context.Context, id uint) (*models.Venue, error)
	findWithLayoutFn  func(ctx context.Context, id uint) (*models.Venue, error)
	findByFestivalFn  func(ctx context.Context, festivalID uint) ([]models.Venue, error)
	updateFn          func(ctx context.Context, venue *models.Venue) error
	deleteFn          func(ctx context.Context, id uint) error
	sumAreaCapacityFn func(ctx context.Context, venueID uint) (int64, error)
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, venue)
}
func (m *mockVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}
func (m *mockVenueRepo) FindByIDWithLayout(ctx context.Context, id uint) (*models.Venue, error) {
	if m.findWithLayoutFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findWithLayoutFn(ctx, id)
}
func (m *mockVenueRepo) FindByFestival(ctx context.Context, festivalID uint) ([]models.Venue, error) {
	if m.findByFestivalFn == nil {
		return nil, nil
	}
	return m.findByFestivalFn(ctx, festivalID)
}
func (m *mockVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, venue)
}
func (m *mockVenueRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}
func (m *mockVenueRepo) SumAreaCapacity(ctx context.Context, venueID uint) (int64, error) {
	if m.sumAreaCapacityFn == nil {
		return 0, nil
	}
	return m.sumAreaCapacityFn(ctx, venueID)
}
func (m *mockVenueRepo) GetDB() *gorm.DB { return nil }

type mockAreaRepo struct {
	createFn        func(ctx context.Context, area *models.VenueArea) error
	findByIDFn      func(ctx context.Context, id uint) (*models.VenueArea, error)
	findByVenueFn   func(ctx context.Context, venueID uint) ([]models.VenueArea, error)
	updateFn        func(ctx context.Context, area *models.VenueArea) error
	deleteFn        func(ctx context.Context, id uint) error
	countBoothsFn   func(ctx context.Context, areaID uint) (int64, error)
	countByStatusFn func(ctx context.Context, areaID uint, statuses []models.BoothStatus) (int64, error)
}

func (m *mockAreaRepo) Create(ctx context.Context, area *models.VenueArea) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, area)
}
func (m *mockAreaRepo) FindByID(ctx context.Context, id uint) (*models.VenueArea, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}
func (m *mockAreaRepo) FindByVenue(ctx context.Context, venueID uint) ([]models.VenueArea, error) {
	if m.findByVenueFn == nil {
		return nil, nil
	}
	return m.findByVenueFn(ctx, venueID)
}
func (m *mockAreaRepo) Update(ctx context.Context, area *models.VenueArea) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, area)
}
func (m *mockAreaRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}
func (m *mockAreaRepo) CountBooths(ctx context.Context, areaID uint) (int64, error) {
	if m.countBoothsFn == nil {
		return 0, nil
	}
	return m.countBoothsFn(ctx, areaID)
}
func (m *mockAreaRepo) CountBoothsByStatus(ctx context.Context, areaID uint, statuses []models.BoothStatus) (int64, error) {
	if m.countByStatusFn == nil {
		return 0, nil
	}
	return m.countByStatusFn(ctx, areaID, statuses)
}

type mockBoothRepo struct {
	createFn            func(ctx context.Context, booth *models.Booth) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Booth, error)
	findByAreaFn        func(ctx context.Context, areaID uint) ([]models.Booth, error)
	updateFn            func(ctx context.Context, booth *models.Booth) error
	deleteFn            func(ctx context.Context, id uint) error
	countByVenueFn      func(ctx context.Context, venueID uint) (int64, error)
	countVenueStatusFn  func(ctx context.Context, venueID uint, statuses []models.BoothStatus) (int64, error)
}

func (m *mockBoothRepo) Create(ctx context.Context, booth *models.Booth) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, booth)
}
func (m *mockBoothRepo) FindByID(ctx context.Context, id uint) (*models.Booth, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}
func (m *mockBoothRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booth, error) {
	return m.FindByID(ctx, id)
}
func (m *mockBoothRepo) FindByArea(ctx context.Context, areaID uint) ([]models.Booth, error) {
	if m.findByAreaFn == nil {
		return nil, nil
	}
	return m.findByAreaFn(ctx, areaID)
}
func (m *mockBoothRepo) Update(ctx context.Context, booth *models.Booth) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, booth)
}
func (m *mockBoothRepo) UpdateAssignment(ctx context.Context, tx *gorm.DB, boothID uint, status models.BoothStatus, vendorApplicationID *uint) error {
	return nil
}
func (m *mockBoothRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, boothID uint, status models.BoothStatus) error {
	return nil
}
func (m *mockBoothRepo) UpdateBoothNumber(ctx context.Context, tx *gorm.DB, boothID uint, number string) error {
	return nil
}
func (m *mockBoothRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}
func (m *mockBoothRepo) CountByVenue(ctx context.Context, venueID uint) (int64, error) {
	if m.countByVenueFn == nil {
		return 0, nil
	}
	return m.countByVenueFn(ctx, venueID)
}
func (m *mockBoothRepo) CountByVenueAndStatus(ctx context.Context, venueID uint, statuses []models.BoothStatus) (int64, error) {
	if m.countVenueStatusFn == nil {
		return 0, nil
	}
	return m.countVenueStatusFn(ctx, venueID, statuses)
}
func (m *mockBoothRepo) GetDB() *gorm.DB { return nil }

type mockElementRepo struct {
	createFn       func(ctx context.Context, element *models.LayoutElement) error
	findByIDFn     func(ctx context.Context, id uint) (*models.LayoutElement, error)
	findByVenueFn  func(ctx context.Context, venueID uint) ([]models.LayoutElement, error)
	findVisibleFn  func(ctx context.Context, venueID uint) ([]models.LayoutElement, error)
	updateFn       func(ctx context.Context, element *models.LayoutElement) error
	deleteFn       func(ctx context.Context, id uint) error
	maxLayerFn     func(ctx context.Context, venueID uint) (int, error)
	minLayerFn     func(ctx context.Context, venueID uint) (int, error)
	existsByTypeFn func(ctx context.Context, venueID uint, elementType models.ElementType) (bool, error)
}

func (m *mockElementRepo) Create(ctx context.Context, element *models.LayoutElement) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, element)
}
func (m *mockElementRepo) FindByID(ctx context.Context, id uint) (*models.LayoutElement, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}
func (m *mockElementRepo) FindByVenue(ctx context.Context, venueID uint) ([]models.LayoutElement, error) {
	if m.findByVenueFn == nil {
		return nil, nil
	}
	return m.findByVenueFn(ctx, venueID)
}
func (m *mockElementRepo) FindVisibleByVenue(ctx context.Context, venueID uint) ([]models.LayoutElement, error) {
	if m.findVisibleFn == nil {
		return nil, nil
	}
	return m.findVisibleFn(ctx, venueID)
}
func (m *mockElementRepo) Update(ctx context.Context, element *models.LayoutElement) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, element)
}
func (m *mockElementRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}
func (m *mockElementRepo) MaxLayer(ctx context.Context, venueID uint) (int, error) {
	if m.maxLayerFn == nil {
		return 0, nil
	}
	return m.maxLayerFn(ctx, venueID)
}
func (m *mockElementRepo) MinLayer(ctx context.Context, venueID uint) (int, error) {
	if m.minLayerFn == nil {
		return 0, nil
	}
	return m.minLayerFn(ctx, venueID)
}
func (m *mockElementRepo) ExistsByType(ctx context.Context, venueID uint, elementType models.ElementType) (bool, error) {
	if m.existsByTypeFn == nil {
		return false, nil
	}
	return m.existsByTypeFn(ctx, venueID, elementType)
}

type mockVendorRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.VendorApplication, error)
}

func (m *mockVendorRepo) FindByID(ctx context.Context, id uint) (*models.VendorApplication, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}
func (m *mockVendorRepo) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.VendorApplication, error) {
	return m.FindByID(ctx, id)
}

// denyAll refuses every actor, for permission tests.
type denyAll struct{}

func (denyAll) CanModifyVenue(ctx context.Context, actorID string, venueID uint) bool {
	return false
}

// recordingNotifier captures published notifications.
type recordingNotifier struct {
	routingKeys []string
	payloads    []any
}

func (n *recordingNotifier) Publish(routingKey string, payload any) error {
	n.routingKeys = append(n.routingKeys, routingKey)
	n.payloads = append(n.payloads, payload)
	return nil
}
