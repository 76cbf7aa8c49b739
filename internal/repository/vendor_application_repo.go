package repository

import (
	"context"

	"github.com/matsuri-platform/venue-service/internal/models"
	"gorm.io/gorm"
)

type VendorApplicationRepository interface {
	FindByID(ctx context.Context, id uint) (*models.VendorApplication, error)
	FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.VendorApplication, error)
}

type vendorApplicationRepository struct {
	db *gorm.DB
}

func NewVendorApplicationRepository(db *gorm.DB) VendorApplicationRepository {
	return &vendorApplicationRepository{db: db}
}

func (r *vendorApplicationRepository) FindByID(ctx context.Context, id uint) (*models.VendorApplication, error) {
	return r.FindByIDTx(ctx, r.db, id)
}

func (r *vendorApplicationRepository) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.VendorApplication, error) {
	var app models.VendorApplication
	if err := tx.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
