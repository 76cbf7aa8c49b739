package service

import (
	"context"
	"testing"

	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func boothServiceWith(boothRepo *mockBoothRepo, areaRepo *mockAreaRepo, venueRepo *mockVenueRepo) BoothService {
	return NewBoothService(boothRepo, areaRepo, venueRepo, &mockVendorRepo{}, nil)
}

func validBooth() *models.Booth {
	return &models.Booth{
		Name:   "Takoyaki Stand",
		Width:  3,
		Height: 3,
	}
}

func TestCreateBooth_DefaultsAndAutoNumber(t *testing.T) {
	areaRepo := &mockAreaRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.VenueArea, error) {
			return &models.VenueArea{ID: 5, VenueID: 2}, nil
		},
		findByVenueFn: func(ctx context.Context, venueID uint) ([]models.VenueArea, error) {
			return []models.VenueArea{{ID: 5, VenueID: 2}}, nil
		},
		// No booths in the area yet.
		countBoothsFn: func(ctx context.Context, areaID uint) (int64, error) { return 0, nil },
	}
	venueRepo := venueRepoWith(&models.Venue{ID: 2, FestivalID: 7})
	var created *models.Booth
	boothRepo := &mockBoothRepo{
		createFn: func(ctx context.Context, booth *models.Booth) error {
			created = booth
			return nil
		},
	}
	svc := boothServiceWith(boothRepo, areaRepo, venueRepo)

	vendorID := uint(9)
	booth := validBooth()
	booth.VendorApplicationID = &vendorID // stripped on create

	out, err := svc.CreateBooth(context.Background(), 5, booth)

	assert.NoError(t, err)
	assert.Equal(t, created, out)
	assert.Equal(t, uint(5), out.VenueAreaID)
	assert.Equal(t, uint(7), out.FestivalID)
	assert.Nil(t, out.VendorApplicationID)
	assert.Equal(t, models.BoothAvailable, out.Status)
	assert.Equal(t, models.BoothMedium, out.Size)
	assert.Equal(t, "01-001", out.BoothNumber)
}

func TestCreateBooth_SecondAreaNumbering(t *testing.T) {
	areaRepo := &mockAreaRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.VenueArea, error) {
			return &models.VenueArea{ID: 6, VenueID: 2}, nil
		},
		findByVenueFn: func(ctx context.Context, venueID uint) ([]models.VenueArea, error) {
			return []models.VenueArea{{ID: 5}, {ID: 6}}, nil
		},
		countBoothsFn: func(ctx context.Context, areaID uint) (int64, error) { return 3, nil },
	}
	venueRepo := venueRepoWith(&models.Venue{ID: 2})
	svc := boothServiceWith(&mockBoothRepo{}, areaRepo, venueRepo)

	out, err := svc.CreateBooth(context.Background(), 6, validBooth())

	assert.NoError(t, err)
	assert.Equal(t, "02-004", out.BoothNumber)
}

func TestCreateBooth_KeepsExplicitNumber(t *testing.T) {
	areaRepo := &mockAreaRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.VenueArea, error) {
			return &models.VenueArea{ID: 5, VenueID: 2}, nil
		},
	}
	venueRepo := venueRepoWith(&models.Venue{ID: 2})
	svc := boothServiceWith(&mockBoothRepo{}, areaRepo, venueRepo)

	booth := validBooth()
	booth.BoothNumber = "A-17"

	out, err := svc.CreateBooth(context.Background(), 5, booth)

	assert.NoError(t, err)
	assert.Equal(t, "A-17", out.BoothNumber)
}

func TestCreateBooth_RejectsAssignmentStatuses(t *testing.T) {
	areaRepo := &mockAreaRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.VenueArea, error) {
			return &models.VenueArea{ID: 5, VenueID: 2}, nil
		},
	}
	venueRepo := venueRepoWith(&models.Venue{ID: 2})
	svc := boothServiceWith(&mockBoothRepo{}, areaRepo, venueRepo)

	for _, status := range []models.BoothStatus{models.BoothAssigned, models.BoothOccupied} {
		booth := validBooth()
		booth.Status = status
		_, err := svc.CreateBooth(context.Background(), 5, booth)
		assert.ErrorIs(t, err, ErrStatusViaAssignment, "status %s", status)
	}
}

func TestCreateBooth_AreaNotFound(t *testing.T) {
	svc := boothServiceWith(&mockBoothRepo{}, &mockAreaRepo{}, &mockVenueRepo{})

	_, err := svc.CreateBooth(context.Background(), 99, validBooth())

	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestCreateBooth_ValidationFailure(t *testing.T) {
	areaRepo := &mockAreaRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.VenueArea, error) {
			return &models.VenueArea{ID: 5, VenueID: 2}, nil
		},
	}
	venueRepo := venueRepoWith(&models.Venue{ID: 2})
	svc := boothServiceWith(&mockBoothRepo{}, areaRepo, venueRepo)

	_, err := svc.CreateBooth(context.Background(), 5, &models.Booth{Name: "", Width: 0, Height: -1})

	var verrs models.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdateBooth_PreservesOwnershipAndVendorLink(t *testing.T) {
	vendorID := uint(4)
	current := &models.Booth{
		ID:                  10,
		VenueAreaID:         5,
		FestivalID:          7,
		VendorApplicationID: &vendorID,
		Name:                "Old Name",
		BoothNumber:         "01-003",
		Size:                models.BoothLarge,
		Width:               3,
		Height:              3,
		Status:              models.BoothAssigned,
	}
	var saved *models.Booth
	boothRepo := &mockBoothRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Booth, error) { return current, nil },
		updateFn: func(ctx context.Context, booth *models.Booth) error {
			saved = booth
			return nil
		},
	}
	svc := boothServiceWith(boothRepo, &mockAreaRepo{}, &mockVenueRepo{})

	// Omitted fields fall back to current values; the vendor link and
	// ownership come from the stored row regardless of the request.
	out, err := svc.UpdateBooth(context.Background(), &models.Booth{
		ID:          10,
		VenueAreaID: 99,
		Name:        "New Name",
		Width:       4,
		Height:      4,
	})

	assert.NoError(t, err)
	assert.Equal(t, saved, out)
	assert.Equal(t, uint(5), out.VenueAreaID)
	assert.Equal(t, uint(7), out.FestivalID)
	assert.Equal(t, &vendorID, out.VendorApplicationID)
	assert.Equal(t, "01-003", out.BoothNumber)
	assert.Equal(t, models.BoothLarge, out.Size)
	assert.Equal(t, models.BoothAssigned, out.Status, "unchanged status stays")
	assert.Equal(t, "New Name", out.Name)
}

func TestUpdateBooth_RejectsTransitionToAssigned(t *testing.T) {
	boothRepo := &mockBoothRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Booth, error) {
			return &models.Booth{ID: 10, Name: "B", BoothNumber: "01-001", Size: models.BoothMedium, Width: 3, Height: 3, Status: models.BoothAvailable}, nil
		},
	}
	svc := boothServiceWith(boothRepo, &mockAreaRepo{}, &mockVenueRepo{})

	booth := &models.Booth{ID: 10, Name: "B", Width: 3, Height: 3, Status: models.BoothAssigned}
	_, err := svc.UpdateBooth(context.Background(), booth)

	assert.ErrorIs(t, err, ErrStatusViaAssignment)
}

func TestUpdateBooth_AllowsAdminStatuses(t *testing.T) {
	boothRepo := &mockBoothRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Booth, error) {
			return &models.Booth{ID: 10, Name: "B", BoothNumber: "01-001", Size: models.BoothMedium, Width: 3, Height: 3, Status: models.BoothAvailable}, nil
		},
	}
	svc := boothServiceWith(boothRepo, &mockAreaRepo{}, &mockVenueRepo{})

	for _, status := range []models.BoothStatus{models.BoothReserved, models.BoothMaintenance, models.BoothUnavailable} {
		booth := &models.Booth{ID: 10, Name: "B", Width: 3, Height: 3, Status: status}
		out, err := svc.UpdateBooth(context.Background(), booth)
		assert.NoError(t, err, "status %s", status)
		assert.Equal(t, status, out.Status)
	}
}

func TestCheckPlacement(t *testing.T) {
	area := &models.VenueArea{ID: 5, Width: 100, Height: 100}
	subject := models.Booth{ID: 1, VenueAreaID: 5, XPosition: 10, YPosition: 10, Width: 10, Height: 10}
	boothRepo := &mockBoothRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Booth, error) {
			b := subject
			return &b, nil
		},
		findByAreaFn: func(ctx context.Context, areaID uint) ([]models.Booth, error) {
			return []models.Booth{
				subject,
				{ID: 2, XPosition: 15, YPosition: 15, Width: 10, Height: 10}, // overlaps
				{ID: 3, XPosition: 20, YPosition: 10, Width: 10, Height: 10}, // edge touch counts
				{ID: 4, XPosition: 60, YPosition: 60, Width: 10, Height: 10}, // clear
			}, nil
		},
	}
	areaRepo := &mockAreaRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.VenueArea, error) { return area, nil },
	}
	svc := boothServiceWith(boothRepo, areaRepo, &mockVenueRepo{})

	report, err := svc.CheckPlacement(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, report.FitsWithinArea)
	assert.Equal(t, []uint{2, 3}, report.ConflictIDs)
}

func TestCheckPlacement_OutsideArea(t *testing.T) {
	boothRepo := &mockBoothRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Booth, error) {
			return &models.Booth{ID: 1, VenueAreaID: 5, XPosition: 95, YPosition: 95, Width: 10, Height: 10}, nil
		},
	}
	areaRepo := &mockAreaRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.VenueArea, error) {
			return &models.VenueArea{ID: 5, Width: 100, Height: 100}, nil
		},
	}
	svc := boothServiceWith(boothRepo, areaRepo, &mockVenueRepo{})

	report, err := svc.CheckPlacement(context.Background(), 1)

	assert.NoError(t, err)
	assert.False(t, report.FitsWithinArea)
	assert.Empty(t, report.ConflictIDs)
}

func TestGetBooth_NotFound(t *testing.T) {
	svc := boothServiceWith(&mockBoothRepo{}, &mockAreaRepo{}, &mockVenueRepo{})

	_, err := svc.GetBooth(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBoothNotFound)
}

func TestListBooths_AreaNotFound(t *testing.T) {
	svc := boothServiceWith(&mockBoothRepo{}, &mockAreaRepo{}, &mockVenueRepo{})

	_, err := svc.ListBooths(context.Background(), 404)

	assert.ErrorIs(t, err, ErrAreaNotFound)
}
