package repository

import (
	"context"

	"github.com/matsuri-platform/venue-service/internal/models"
	"gorm.io/gorm"
)

type AreaRepository interface {
	Create(ctx context.Context, area *models.VenueArea) error
	FindByID(ctx context.Context, id uint) (*models.VenueArea, error)
	FindByVenue(ctx context.Context, venueID uint) ([]models.VenueArea, error)
	Update(ctx context.Context, area *models.VenueArea) error
	Delete(ctx context.Context, id uint) error
	CountBooths(ctx context.Context, areaID uint) (int64, error)
	CountBoothsByStatus(ctx context.Context, areaID uint, statuses []models.BoothStatus) (int64, error)
}

type areaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

func (r *areaRepository) Create(ctx context.Context, area *models.VenueArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *areaRepository) FindByID(ctx context.Context, id uint) (*models.VenueArea, error) {
	var area models.VenueArea
	if err := r.db.WithContext(ctx).First(&area, id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *areaRepository) FindByVenue(ctx context.Context, venueID uint) ([]models.VenueArea, error) {
	var areas []models.VenueArea
	if err := r.db.WithContext(ctx).Where("venue_id = ?", venueID).Order("id ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *areaRepository) Update(ctx context.Context, area *models.VenueArea) error {
	return r.db.WithContext(ctx).Save(area).Error
}

func (r *areaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.VenueArea{}, id).Error
}

func (r *areaRepository) CountBooths(ctx context.Context, areaID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booth{}).
		Where("venue_area_id = ?", areaID).
		Count(&count).Error
	return count, err
}

func (r *areaRepository) CountBoothsByStatus(ctx context.Context, areaID uint, statuses []models.BoothStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booth{}).
		Where("venue_area_id = ? AND status IN ?", areaID, statuses).
		Count(&count).Error
	return count, err
}
