package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/matsuri-platform/venue-service/internal/geometry"
	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/matsuri-platform/venue-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrVenueNotGeocoded = errors.New("both venues must have coordinates")
)

// OccupancySummary aggregates booth counts for a venue or a single area.
type OccupancySummary struct {
	TotalBooths     int64   `json:"total_booths"`
	OccupiedBooths  int64   `json:"occupied_booths"`
	AvailableBooths int64   `json:"available_booths"`
	OccupancyRate   float64 `json:"occupancy_rate"`
}

// LayoutReport is the venue-wide footprint of all visible layout
// elements. Bounds are all zero when the venue has no elements.
type LayoutReport struct {
	Bounds    geometry.Bounds `json:"bounds"`
	TotalArea float64         `json:"total_area"`
}

type VenueService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	GetVenueWithLayout(ctx context.Context, id uint) (*models.Venue, error)
	ListVenues(ctx context.Context, festivalID uint) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error

	CreateArea(ctx context.Context, venueID uint, area *models.VenueArea) (*models.VenueArea, error)
	GetArea(ctx context.Context, id uint) (*models.VenueArea, error)
	ListAreas(ctx context.Context, venueID uint) ([]models.VenueArea, error)
	UpdateArea(ctx context.Context, area *models.VenueArea) (*models.VenueArea, error)
	DeleteArea(ctx context.Context, id uint) error

	TotalBoothCapacity(ctx context.Context, venueID uint) (int64, error)
	VenueOccupancy(ctx context.Context, venueID uint) (*OccupancySummary, error)
	AreaOccupancy(ctx context.Context, areaID uint) (*OccupancySummary, error)
	DistanceBetween(ctx context.Context, venueID, otherID uint) (float64, error)
	LayoutBounds(ctx context.Context, venueID uint) (*LayoutReport, error)
	GenerateBoothNumbers(ctx context.Context, venueID uint) (int, error)
}

type venueService struct {
	venueRepo   repository.VenueRepository
	areaRepo    repository.AreaRepository
	boothRepo   repository.BoothRepository
	elementRepo repository.ElementRepository
}

func NewVenueService(
	venueRepo repository.VenueRepository,
	areaRepo repository.AreaRepository,
	boothRepo repository.BoothRepository,
	elementRepo repository.ElementRepository,
) VenueService {
	return &venueService{
		venueRepo:   venueRepo,
		areaRepo:    areaRepo,
		boothRepo:   boothRepo,
		elementRepo: elementRepo,
	}
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := venue.Validate().OrNil(); err != nil {
		return nil, err
	}
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	return venue, nil
}

func (s *venueService) GetVenueWithLayout(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByIDWithLayout(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	return venue, nil
}

func (s *venueService) ListVenues(ctx context.Context, festivalID uint) ([]models.Venue, error) {
	return s.venueRepo.FindByFestival(ctx, festivalID)
}

func (s *venueService) UpdateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	current, err := s.venueRepo.FindByID(ctx, venue.ID)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	venue.FestivalID = current.FestivalID
	venue.CreatedAt = current.CreatedAt

	if err := venue.Validate().OrNil(); err != nil {
		return nil, err
	}
	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	if _, err := s.venueRepo.FindByID(ctx, id); err != nil {
		return ErrVenueNotFound
	}
	return s.venueRepo.Delete(ctx, id)
}

func (s *venueService) CreateArea(ctx context.Context, venueID uint, area *models.VenueArea) (*models.VenueArea, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}
	area.VenueID = venueID
	if err := area.Validate().OrNil(); err != nil {
		return nil, err
	}
	if err := s.areaRepo.Create(ctx, area); err != nil {
		return nil, fmt.Errorf("create area: %w", err)
	}
	return area, nil
}

func (s *venueService) GetArea(ctx context.Context, id uint) (*models.VenueArea, error) {
	area, err := s.areaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrAreaNotFound
	}
	return area, nil
}

func (s *venueService) ListAreas(ctx context.Context, venueID uint) ([]models.VenueArea, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}
	return s.areaRepo.FindByVenue(ctx, venueID)
}

func (s *venueService) UpdateArea(ctx context.Context, area *models.VenueArea) (*models.VenueArea, error) {
	current, err := s.areaRepo.FindByID(ctx, area.ID)
	if err != nil {
		return nil, ErrAreaNotFound
	}
	area.VenueID = current.VenueID
	area.CreatedAt = current.CreatedAt

	if err := area.Validate().OrNil(); err != nil {
		return nil, err
	}
	if err := s.areaRepo.Update(ctx, area); err != nil {
		return nil, fmt.Errorf("update area: %w", err)
	}
	return area, nil
}

func (s *venueService) DeleteArea(ctx context.Context, id uint) error {
	if _, err := s.areaRepo.FindByID(ctx, id); err != nil {
		return ErrAreaNotFound
	}
	return s.areaRepo.Delete(ctx, id)
}

func (s *venueService) TotalBoothCapacity(ctx context.Context, venueID uint) (int64, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return 0, ErrVenueNotFound
	}
	return s.venueRepo.SumAreaCapacity(ctx, venueID)
}

func (s *venueService) VenueOccupancy(ctx context.Context, venueID uint) (*OccupancySummary, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}

	total, err := s.boothRepo.CountByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	occupied, err := s.boothRepo.CountByVenueAndStatus(ctx, venueID, models.OccupiedStatuses)
	if err != nil {
		return nil, err
	}
	available, err := s.boothRepo.CountByVenueAndStatus(ctx, venueID, []models.BoothStatus{models.BoothAvailable})
	if err != nil {
		return nil, err
	}

	return &OccupancySummary{
		TotalBooths:     total,
		OccupiedBooths:  occupied,
		AvailableBooths: available,
		OccupancyRate:   models.OccupancyRate(occupied, total),
	}, nil
}

func (s *venueService) AreaOccupancy(ctx context.Context, areaID uint) (*OccupancySummary, error) {
	if _, err := s.areaRepo.FindByID(ctx, areaID); err != nil {
		return nil, ErrAreaNotFound
	}

	total, err := s.areaRepo.CountBooths(ctx, areaID)
	if err != nil {
		return nil, err
	}
	occupied, err := s.areaRepo.CountBoothsByStatus(ctx, areaID, models.OccupiedStatuses)
	if err != nil {
		return nil, err
	}
	available, err := s.areaRepo.CountBoothsByStatus(ctx, areaID, []models.BoothStatus{models.BoothAvailable})
	if err != nil {
		return nil, err
	}

	return &OccupancySummary{
		TotalBooths:     total,
		OccupiedBooths:  occupied,
		AvailableBooths: available,
		OccupancyRate:   models.OccupancyRate(occupied, total),
	}, nil
}

func (s *venueService) DistanceBetween(ctx context.Context, venueID, otherID uint) (float64, error) {
	venue, err := s.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		return 0, ErrVenueNotFound
	}
	other, err := s.venueRepo.FindByID(ctx, otherID)
	if err != nil {
		return 0, ErrVenueNotFound
	}
	km, ok := venue.DistanceFrom(other)
	if !ok {
		return 0, ErrVenueNotGeocoded
	}
	return km, nil
}

func (s *venueService) LayoutBounds(ctx context.Context, venueID uint) (*LayoutReport, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}

	elements, err := s.elementRepo.FindVisibleByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return &LayoutReport{}, nil
	}

	bounds := elements[0].BoundingBox()
	for i := range elements[1:] {
		bounds = bounds.Union(elements[i+1].BoundingBox())
	}
	return &LayoutReport{
		Bounds:    bounds,
		TotalArea: geometry.Round2(bounds.Width() * bounds.Height()),
	}, nil
}

// GenerateBoothNumbers renumbers every booth in the venue: areas in
// stored order, booths within each area in stored order. Existing
// numbers are overwritten. Numbers move through a placeholder first so
// the per-festival unique index never sees a transient duplicate.
func (s *venueService) GenerateBoothNumbers(ctx context.Context, venueID uint) (int, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return 0, ErrVenueNotFound
	}

	renumbered := 0
	err := s.boothRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		areas, err := s.areaRepo.FindByVenue(ctx, venueID)
		if err != nil {
			return err
		}

		type target struct {
			boothID uint
			number  string
		}
		var targets []target
		for areaIdx, area := range areas {
			booths, err := s.boothRepo.FindByArea(ctx, area.ID)
			if err != nil {
				return err
			}
			for boothIdx, booth := range booths {
				targets = append(targets, target{
					boothID: booth.ID,
					number:  fmt.Sprintf("%02d-%03d", areaIdx+1, boothIdx+1),
				})
			}
		}

		for _, t := range targets {
			if err := s.boothRepo.UpdateBoothNumber(ctx, tx, t.boothID, fmt.Sprintf("tmp-%d", t.boothID)); err != nil {
				return err
			}
		}
		for _, t := range targets {
			if err := s.boothRepo.UpdateBoothNumber(ctx, tx, t.boothID, t.number); err != nil {
				return err
			}
		}
		renumbered = len(targets)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return renumbered, nil
}
