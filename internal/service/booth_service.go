package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/matsuri-platform/venue-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBoothNotFound          = errors.New("booth not found")
	ErrAreaNotFound           = errors.New("venue area not found")
	ErrApplicationNotFound    = errors.New("vendor application not found")
	ErrBoothNotAvailable      = errors.New("booth is not available for assignment")
	ErrApplicationNotApproved = errors.New("vendor application is not approved")
	ErrBoothNotAssigned       = errors.New("booth is not assigned to a vendor")
	ErrBoothNotOccupiable     = errors.New("booth must be assigned or reserved to be occupied")
	ErrBoothHasVendor         = errors.New("booth still has a vendor; unassign first")
	ErrStatusViaAssignment    = errors.New("assigned and occupied statuses can only be set through the assignment operations")
)

// PlacementReport is the derived placement check for a booth: whether it
// fits inside its area and which sibling booths it collides with.
type PlacementReport struct {
	FitsWithinArea bool   `json:"fits_within_area"`
	ConflictIDs    []uint `json:"conflict_ids"`
}

type BoothService interface {
	CreateBooth(ctx context.Context, areaID uint, booth *models.Booth) (*models.Booth, error)
	GetBooth(ctx context.Context, id uint) (*models.Booth, error)
	ListBooths(ctx context.Context, areaID uint) ([]models.Booth, error)
	UpdateBooth(ctx context.Context, booth *models.Booth) (*models.Booth, error)
	DeleteBooth(ctx context.Context, id uint) error

	AssignToVendor(ctx context.Context, boothID, vendorApplicationID uint) (*models.Booth, error)
	UnassignFromVendor(ctx context.Context, boothID uint) (*models.Booth, error)
	MarkOccupied(ctx context.Context, boothID uint) (*models.Booth, error)
	MarkAvailable(ctx context.Context, boothID uint) (*models.Booth, error)

	CheckPlacement(ctx context.Context, boothID uint) (*PlacementReport, error)
}

type boothService struct {
	boothRepo  repository.BoothRepository
	areaRepo   repository.AreaRepository
	venueRepo  repository.VenueRepository
	vendorRepo repository.VendorApplicationRepository
	notifier   Notifier
}

func NewBoothService(
	boothRepo repository.BoothRepository,
	areaRepo repository.AreaRepository,
	venueRepo repository.VenueRepository,
	vendorRepo repository.VendorApplicationRepository,
	notifier Notifier,
) BoothService {
	return &boothService{
		boothRepo:  boothRepo,
		areaRepo:   areaRepo,
		venueRepo:  venueRepo,
		vendorRepo: vendorRepo,
		notifier:   notifier,
	}
}

func (s *boothService) CreateBooth(ctx context.Context, areaID uint, booth *models.Booth) (*models.Booth, error) {
	area, err := s.areaRepo.FindByID(ctx, areaID)
	if err != nil {
		return nil, ErrAreaNotFound
	}
	venue, err := s.venueRepo.FindByID(ctx, area.VenueID)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	booth.VenueAreaID = area.ID
	booth.FestivalID = venue.FestivalID
	booth.VendorApplicationID = nil
	if booth.Status == "" {
		booth.Status = models.BoothAvailable
	}
	if booth.Size == "" {
		booth.Size = models.BoothMedium
	}
	if err := booth.Validate().OrNil(); err != nil {
		return nil, err
	}
	if booth.Status == models.BoothAssigned || booth.Status == models.BoothOccupied {
		return nil, ErrStatusViaAssignment
	}

	if booth.BoothNumber == "" {
		number, err := s.nextBoothNumber(ctx, venue.ID, area.ID)
		if err != nil {
			return nil, err
		}
		booth.BoothNumber = number
	}

	if err := s.boothRepo.Create(ctx, booth); err != nil {
		return nil, fmt.Errorf("create booth: %w", err)
	}
	return booth, nil
}

// nextBoothNumber derives <area ordinal>-<booth ordinal> from stored
// order, matching what a full renumbering would assign to a new booth.
func (s *boothService) nextBoothNumber(ctx context.Context, venueID, areaID uint) (string, error) {
	areas, err := s.areaRepo.FindByVenue(ctx, venueID)
	if err != nil {
		return "", err
	}
	areaIndex := -1
	for i, a := range areas {
		if a.ID == areaID {
			areaIndex = i
			break
		}
	}
	if areaIndex < 0 {
		return "", ErrAreaNotFound
	}
	count, err := s.areaRepo.CountBooths(ctx, areaID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d-%03d", areaIndex+1, count+1), nil
}

func (s *boothService) GetBooth(ctx context.Context, id uint) (*models.Booth, error) {
	booth, err := s.boothRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBoothNotFound
	}
	return booth, nil
}

func (s *boothService) ListBooths(ctx context.Context, areaID uint) ([]models.Booth, error) {
	if _, err := s.areaRepo.FindByID(ctx, areaID); err != nil {
		return nil, ErrAreaNotFound
	}
	return s.boothRepo.FindByArea(ctx, areaID)
}

// UpdateBooth applies a generic write. Direct status writes cover the
// admin transitions (reserved, maintenance, unavailable, and releasing a
// vendor-free booth back to available); assigned/occupied are reachable
// only through the assignment operations.
func (s *boothService) UpdateBooth(ctx context.Context, booth *models.Booth) (*models.Booth, error) {
	current, err := s.boothRepo.FindByID(ctx, booth.ID)
	if err != nil {
		return nil, ErrBoothNotFound
	}

	// Ownership and vendor link never change through the generic write.
	booth.VenueAreaID = current.VenueAreaID
	booth.FestivalID = current.FestivalID
	booth.VendorApplicationID = current.VendorApplicationID
	booth.CreatedAt = current.CreatedAt
	if booth.Size == "" {
		booth.Size = current.Size
	}
	if booth.Status == "" {
		booth.Status = current.Status
	}
	if booth.BoothNumber == "" {
		booth.BoothNumber = current.BoothNumber
	}

	if err := booth.Validate().OrNil(); err != nil {
		return nil, err
	}
	if booth.Status != current.Status &&
		(booth.Status == models.BoothAssigned || booth.Status == models.BoothOccupied) {
		return nil, ErrStatusViaAssignment
	}

	if err := s.boothRepo.Update(ctx, booth); err != nil {
		return nil, fmt.Errorf("update booth: %w", err)
	}
	return booth, nil
}

func (s *boothService) DeleteBooth(ctx context.Context, id uint) error {
	if _, err := s.boothRepo.FindByID(ctx, id); err != nil {
		return ErrBoothNotFound
	}
	return s.boothRepo.Delete(ctx, id)
}

// AssignToVendor moves an available booth to assigned for an approved
// vendor application. The row lock plus single-transaction write ensure
// two concurrent assignments cannot both succeed. Nothing is mutated and
// no notification is sent when a precondition fails.
func (s *boothService) AssignToVendor(ctx context.Context, boothID, vendorApplicationID uint) (*models.Booth, error) {
	var result *models.Booth

	err := s.boothRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booth, err := s.boothRepo.FindByIDForUpdate(ctx, tx, boothID)
		if err != nil {
			return ErrBoothNotFound
		}
		if !booth.CanBeAssigned() {
			return ErrBoothNotAvailable
		}

		app, err := s.vendorRepo.FindByIDTx(ctx, tx, vendorApplicationID)
		if err != nil {
			return ErrApplicationNotFound
		}
		if !app.IsApproved() {
			return ErrApplicationNotApproved
		}

		if err := s.boothRepo.UpdateAssignment(ctx, tx, booth.ID, models.BoothAssigned, &app.ID); err != nil {
			return err
		}

		booth.Status = models.BoothAssigned
		booth.VendorApplicationID = &app.ID
		result = booth
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(RouteBoothAssigned, newBoothNotification(
		result, vendorApplicationID, "booth_assigned",
		"Booth assigned",
		fmt.Sprintf("Booth %s has been assigned to your application.", result.BoothNumber),
	))
	return result, nil
}

// UnassignFromVendor is the only operation that clears the vendor link
// and the status together.
func (s *boothService) UnassignFromVendor(ctx context.Context, boothID uint) (*models.Booth, error) {
	var result *models.Booth
	var previousVendor uint

	err := s.boothRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booth, err := s.boothRepo.FindByIDForUpdate(ctx, tx, boothID)
		if err != nil {
			return ErrBoothNotFound
		}
		if !booth.IsAssigned() {
			return ErrBoothNotAssigned
		}
		previousVendor = *booth.VendorApplicationID

		if err := s.boothRepo.UpdateAssignment(ctx, tx, booth.ID, models.BoothAvailable, nil); err != nil {
			return err
		}

		booth.Status = models.BoothAvailable
		booth.VendorApplicationID = nil
		result = booth
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(RouteBoothUnassigned, newBoothNotification(
		result, previousVendor, "booth_unassigned",
		"Booth assignment removed",
		fmt.Sprintf("Booth %s is no longer assigned to your application.", result.BoothNumber),
	))
	return result, nil
}

func (s *boothService) MarkOccupied(ctx context.Context, boothID uint) (*models.Booth, error) {
	var result *models.Booth

	err := s.boothRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booth, err := s.boothRepo.FindByIDForUpdate(ctx, tx, boothID)
		if err != nil {
			return ErrBoothNotFound
		}
		if !booth.CanBeOccupied() {
			return ErrBoothNotOccupiable
		}
		if err := s.boothRepo.UpdateStatus(ctx, tx, booth.ID, models.BoothOccupied); err != nil {
			return err
		}
		booth.Status = models.BoothOccupied
		result = booth
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkAvailable frees a booth only when no vendor holds it — an occupied
// booth with a vendor must go through UnassignFromVendor.
func (s *boothService) MarkAvailable(ctx context.Context, boothID uint) (*models.Booth, error) {
	var result *models.Booth

	err := s.boothRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booth, err := s.boothRepo.FindByIDForUpdate(ctx, tx, boothID)
		if err != nil {
			return ErrBoothNotFound
		}
		if !booth.CanBeFreed() {
			return ErrBoothHasVendor
		}
		if err := s.boothRepo.UpdateStatus(ctx, tx, booth.ID, models.BoothAvailable); err != nil {
			return err
		}
		booth.Status = models.BoothAvailable
		result = booth
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *boothService) CheckPlacement(ctx context.Context, boothID uint) (*PlacementReport, error) {
	booth, err := s.boothRepo.FindByID(ctx, boothID)
	if err != nil {
		return nil, ErrBoothNotFound
	}
	area, err := s.areaRepo.FindByID(ctx, booth.VenueAreaID)
	if err != nil {
		return nil, ErrAreaNotFound
	}
	siblings, err := s.boothRepo.FindByArea(ctx, booth.VenueAreaID)
	if err != nil {
		return nil, err
	}

	report := &PlacementReport{
		FitsWithinArea: booth.FitsWithinArea(area),
		ConflictIDs:    []uint{},
	}
	for i := range siblings {
		if booth.OverlapsWith(&siblings[i]) {
			report.ConflictIDs = append(report.ConflictIDs, siblings[i].ID)
		}
	}
	return report, nil
}

func (s *boothService) notify(routingKey string, payload BoothNotification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(routingKey, payload); err != nil {
		log.Printf("[BoothService] failed to publish %s for booth %d: %v", routingKey, payload.BoothID, err)
	}
}
