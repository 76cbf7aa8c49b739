package repository

import (
	"context"

	"github.com/matsuri-platform/venue-service/internal/models"
	"gorm.io/gorm"
)

type ElementRepository interface {
	Create(ctx context.Context, element *models.LayoutElement) error
	FindByID(ctx context.Context, id uint) (*models.LayoutElement, error)
	FindByVenue(ctx context.Context, venueID uint) ([]models.LayoutElement, error)
	FindVisibleByVenue(ctx context.Context, venueID uint) ([]models.LayoutElement, error)
	Update(ctx context.Context, element *models.LayoutElement) error
	Delete(ctx context.Context, id uint) error
	MaxLayer(ctx context.Context, venueID uint) (int, error)
	MinLayer(ctx context.Context, venueID uint) (int, error)
	ExistsByType(ctx context.Context, venueID uint, elementType models.ElementType) (bool, error)
}

type elementRepository struct {
	db *gorm.DB
}

func NewElementRepository(db *gorm.DB) ElementRepository {
	return &elementRepository{db: db}
}

func (r *elementRepository) Create(ctx context.Context, element *models.LayoutElement) error {
	return r.db.WithContext(ctx).Create(element).Error
}

func (r *elementRepository) FindByID(ctx context.Context, id uint) (*models.LayoutElement, error) {
	var element models.LayoutElement
	if err := r.db.WithContext(ctx).First(&element, id).Error; err != nil {
		return nil, err
	}
	return &element, nil
}

func (r *elementRepository) FindByVenue(ctx context.Context, venueID uint) ([]models.LayoutElement, error) {
	var elements []models.LayoutElement
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("layer ASC, id ASC").
		Find(&elements).Error
	if err != nil {
		return nil, err
	}
	return elements, nil
}

func (r *elementRepository) FindVisibleByVenue(ctx context.Context, venueID uint) ([]models.LayoutElement, error) {
	var elements []models.LayoutElement
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND visible = ?", venueID, true).
		Order("layer ASC, id ASC").
		Find(&elements).Error
	if err != nil {
		return nil, err
	}
	return elements, nil
}

func (r *elementRepository) Update(ctx context.Context, element *models.LayoutElement) error {
	return r.db.WithContext(ctx).Save(element).Error
}

func (r *elementRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.LayoutElement{}, id).Error
}

// MaxLayer queries the siblings at call time rather than keeping a
// counter, so concurrent edits cannot leave a stale high-water mark.
func (r *elementRepository) MaxLayer(ctx context.Context, venueID uint) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&models.LayoutElement{}).
		Where("venue_id = ?", venueID).
		Select("COALESCE(MAX(layer), 0)").
		Scan(&max).Error
	return max, err
}

func (r *elementRepository) MinLayer(ctx context.Context, venueID uint) (int, error) {
	var min int
	err := r.db.WithContext(ctx).
		Model(&models.LayoutElement{}).
		Where("venue_id = ?", venueID).
		Select("COALESCE(MIN(layer), 0)").
		Scan(&min).Error
	return min, err
}

func (r *elementRepository) ExistsByType(ctx context.Context, venueID uint, elementType models.ElementType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LayoutElement{}).
		Where("venue_id = ? AND element_type = ?", venueID, elementType).
		Count(&count).Error
	return count > 0, err
}
