package repository

import (
	"context"

	"github.com/matsuri-platform/venue-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoothRepository interface {
	Create(ctx context.Context, booth *models.Booth) error
	FindByID(ctx context.Context, id uint) (*models.Booth, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booth, error)
	FindByArea(ctx context.Context, areaID uint) ([]models.Booth, error)
	Update(ctx context.Context, booth *models.Booth) error
	UpdateAssignment(ctx context.Context, tx *gorm.DB, boothID uint, status models.BoothStatus, vendorApplicationID *uint) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, boothID uint, status models.BoothStatus) error
	UpdateBoothNumber(ctx context.Context, tx *gorm.DB, boothID uint, number string) error
	Delete(ctx context.Context, id uint) error
	CountByVenue(ctx context.Context, venueID uint) (int64, error)
	CountByVenueAndStatus(ctx context.Context, venueID uint, statuses []models.BoothStatus) (int64, error)
	GetDB() *gorm.DB
}

type boothRepository struct {
	db *gorm.DB
}

func NewBoothRepository(db *gorm.DB) BoothRepository {
	return &boothRepository{db: db}
}

func (r *boothRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *boothRepository) Create(ctx context.Context, booth *models.Booth) error {
	return r.db.WithContext(ctx).Create(booth).Error
}

func (r *boothRepository) FindByID(ctx context.Context, id uint) (*models.Booth, error) {
	var booth models.Booth
	if err := r.db.WithContext(ctx).First(&booth, id).Error; err != nil {
		return nil, err
	}
	return &booth, nil
}

// FindByIDForUpdate locks the booth row — serializes concurrent
// assignment attempts on the same booth.
func (r *boothRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booth, error) {
	var booth models.Booth
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booth, id).Error
	if err != nil {
		return nil, err
	}
	return &booth, nil
}

func (r *boothRepository) FindByArea(ctx context.Context, areaID uint) ([]models.Booth, error) {
	var booths []models.Booth
	if err := r.db.WithContext(ctx).Where("venue_area_id = ?", areaID).Order("id ASC").Find(&booths).Error; err != nil {
		return nil, err
	}
	return booths, nil
}

func (r *boothRepository) Update(ctx context.Context, booth *models.Booth) error {
	return r.db.WithContext(ctx).Save(booth).Error
}

// UpdateAssignment writes status and vendor link together so the
// invariant "vendor present iff assigned/occupied" cannot be half-applied.
func (r *boothRepository) UpdateAssignment(ctx context.Context, tx *gorm.DB, boothID uint, status models.BoothStatus, vendorApplicationID *uint) error {
	return tx.WithContext(ctx).
		Model(&models.Booth{}).
		Where("id = ?", boothID).
		Updates(map[string]any{
			"status":                status,
			"vendor_application_id": vendorApplicationID,
		}).Error
}

func (r *boothRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, boothID uint, status models.BoothStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booth{}).
		Where("id = ?", boothID).
		Update("status", status).Error
}

func (r *boothRepository) UpdateBoothNumber(ctx context.Context, tx *gorm.DB, boothID uint, number string) error {
	return tx.WithContext(ctx).
		Model(&models.Booth{}).
		Where("id = ?", boothID).
		Update("booth_number", number).Error
}

func (r *boothRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Booth{}, id).Error
}

func (r *boothRepository) CountByVenue(ctx context.Context, venueID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booth{}).
		Joins("JOIN venue_areas ON venue_areas.id = booths.venue_area_id").
		Where("venue_areas.venue_id = ?", venueID).
		Count(&count).Error
	return count, err
}

func (r *boothRepository) CountByVenueAndStatus(ctx context.Context, venueID uint, statuses []models.BoothStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booth{}).
		Joins("JOIN venue_areas ON venue_areas.id = booths.venue_area_id").
		Where("venue_areas.venue_id = ? AND booths.status IN ?", venueID, statuses).
		Count(&count).Error
	return count, err
}
