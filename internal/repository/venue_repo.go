package repository

import (
	"context"

	"github.com/matsuri-platform/venue-service/internal/models"
	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindByIDWithLayout(ctx context.Context, id uint) (*models.Venue, error)
	FindByFestival(ctx context.Context, festivalID uint) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id uint) error
	SumAreaCapacity(ctx context.Context, venueID uint) (int64, error)
	GetDB() *gorm.DB
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindByIDWithLayout(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Areas", func(db *gorm.DB) *gorm.DB { return db.Order("venue_areas.id ASC") }).
		Preload("Areas.Booths", func(db *gorm.DB) *gorm.DB { return db.Order("booths.id ASC") }).
		Preload("LayoutElements", func(db *gorm.DB) *gorm.DB { return db.Order("layout_elements.layer ASC, layout_elements.id ASC") }).
		First(&venue, id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindByFestival(ctx context.Context, festivalID uint) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Where("festival_id = ?", festivalID).Order("id ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

// Delete cascades to areas, booths and layout elements via the FK
// constraints declared on the models.
func (r *venueRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Venue{}, id).Error
}

func (r *venueRepository) SumAreaCapacity(ctx context.Context, venueID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.VenueArea{}).
		Where("venue_id = ?", venueID).
		Select("COALESCE(SUM(capacity), 0)").
		Scan(&total).Error
	return total, err
}
