package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/matsuri-platform/venue-service/internal/geometry"
	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/matsuri-platform/venue-service/internal/repository"
)

var (
	ErrElementNotFound = errors.New("layout element not found")
	ErrElementLocked   = errors.New("layout element is locked")
	ErrForbidden       = errors.New("actor may not modify this venue")
)

const (
	cloneOffset     = 20.0
	cloneNameSuffix = " (copy)"
)

type LayoutService interface {
	CreateElement(ctx context.Context, venueID uint, element *models.LayoutElement) (*models.LayoutElement, error)
	GetElement(ctx context.Context, id uint) (*models.LayoutElement, error)
	ListElements(ctx context.Context, venueID uint) ([]models.LayoutElement, error)
	DeleteElement(ctx context.Context, actorID string, id uint) error

	MoveElement(ctx context.Context, actorID string, id uint, x, y float64) (*models.LayoutElement, error)
	ResizeElement(ctx context.Context, actorID string, id uint, width, height float64) (*models.LayoutElement, error)
	RotateElement(ctx context.Context, actorID string, id uint, degrees float64) (*models.LayoutElement, error)
	ToggleVisibility(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error)
	ToggleLock(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error)
	BringToFront(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error)
	SendToBack(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error)
	CloneElement(ctx context.Context, actorID string, id uint, newName string) (*models.LayoutElement, error)
	UpdateProperties(ctx context.Context, actorID string, id uint, properties map[string]any) (*models.LayoutElement, error)

	ApplyDefaultLayout(ctx context.Context, venueID uint) ([]models.LayoutElement, error)
}

type layoutService struct {
	elementRepo repository.ElementRepository
	venueRepo   repository.VenueRepository
	permissions PermissionChecker
}

func NewLayoutService(elementRepo repository.ElementRepository, venueRepo repository.VenueRepository, permissions PermissionChecker) LayoutService {
	if permissions == nil {
		permissions = AllowAll{}
	}
	return &layoutService{
		elementRepo: elementRepo,
		venueRepo:   venueRepo,
		permissions: permissions,
	}
}

// modifiable loads an element and applies the modification policy: a
// locked element is immutable no matter who asks; otherwise the venue
// permission predicate decides.
func (s *layoutService) modifiable(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error) {
	element, err := s.elementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrElementNotFound
	}
	if element.Locked {
		return nil, ErrElementLocked
	}
	if !s.permissions.CanModifyVenue(ctx, actorID, element.VenueID) {
		return nil, ErrForbidden
	}
	return element, nil
}

func (s *layoutService) CreateElement(ctx context.Context, venueID uint, element *models.LayoutElement) (*models.LayoutElement, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}
	element.VenueID = venueID
	if element.Rotation != nil {
		normalized := geometry.NormalizeDegrees(*element.Rotation)
		element.Rotation = &normalized
	}
	if err := element.Validate().OrNil(); err != nil {
		return nil, err
	}
	if err := s.elementRepo.Create(ctx, element); err != nil {
		return nil, fmt.Errorf("create layout element: %w", err)
	}
	return element, nil
}

func (s *layoutService) GetElement(ctx context.Context, id uint) (*models.LayoutElement, error) {
	element, err := s.elementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrElementNotFound
	}
	return element, nil
}

func (s *layoutService) ListElements(ctx context.Context, venueID uint) ([]models.LayoutElement, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}
	return s.elementRepo.FindByVenue(ctx, venueID)
}

func (s *layoutService) DeleteElement(ctx context.Context, actorID string, id uint) error {
	if _, err := s.modifiable(ctx, actorID, id); err != nil {
		return err
	}
	return s.elementRepo.Delete(ctx, id)
}

func (s *layoutService) MoveElement(ctx context.Context, actorID string, id uint, x, y float64) (*models.LayoutElement, error) {
	element, err := s.modifiable(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	element.XPosition = x
	element.YPosition = y
	return s.save(ctx, element)
}

func (s *layoutService) ResizeElement(ctx context.Context, actorID string, id uint, width, height float64) (*models.LayoutElement, error) {
	element, err := s.modifiable(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	element.Width = width
	element.Height = height
	return s.save(ctx, element)
}

func (s *layoutService) RotateElement(ctx context.Context, actorID string, id uint, degrees float64) (*models.LayoutElement, error) {
	element, err := s.modifiable(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	normalized := geometry.NormalizeDegrees(degrees)
	element.Rotation = &normalized
	return s.save(ctx, element)
}

func (s *layoutService) ToggleVisibility(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error) {
	element, err := s.modifiable(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	element.Visible = !element.Visible
	return s.save(ctx, element)
}

// ToggleLock skips the locked short-circuit — unlocking must work on a
// locked element — but still requires venue permission.
func (s *layoutService) ToggleLock(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error) {
	element, err := s.elementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrElementNotFound
	}
	if !s.permissions.CanModifyVenue(ctx, actorID, element.VenueID) {
		return nil, ErrForbidden
	}
	element.Locked = !element.Locked
	return s.save(ctx, element)
}

func (s *layoutService) BringToFront(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error) {
	element, err := s.modifiable(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	maxLayer, err := s.elementRepo.MaxLayer(ctx, element.VenueID)
	if err != nil {
		return nil, err
	}
	element.Layer = maxLayer + 1
	return s.save(ctx, element)
}

func (s *layoutService) SendToBack(ctx context.Context, actorID string, id uint) (*models.LayoutElement, error) {
	element, err := s.modifiable(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	minLayer, err := s.elementRepo.MinLayer(ctx, element.VenueID)
	if err != nil {
		return nil, err
	}
	layer := minLayer - 1
	if layer < 0 {
		layer = 0
	}
	element.Layer = layer
	return s.save(ctx, element)
}

// CloneElement duplicates an element offset by (+20, +20) with a fresh
// identity and a layer above every existing element.
func (s *layoutService) CloneElement(ctx context.Context, actorID string, id uint, newName string) (*models.LayoutElement, error) {
	source, err := s.elementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrElementNotFound
	}
	if !s.permissions.CanModifyVenue(ctx, actorID, source.VenueID) {
		return nil, ErrForbidden
	}
	maxLayer, err := s.elementRepo.MaxLayer(ctx, source.VenueID)
	if err != nil {
		return nil, err
	}

	name := newName
	if name == "" {
		name = source.Name + cloneNameSuffix
	}

	clone := &models.LayoutElement{
		VenueID:     source.VenueID,
		ElementType: source.ElementType,
		Name:        name,
		XPosition:   source.XPosition + cloneOffset,
		YPosition:   source.YPosition + cloneOffset,
		Width:       source.Width,
		Height:      source.Height,
		Rotation:    source.Rotation,
		Color:       source.Color,
		Layer:       maxLayer + 1,
		Locked:      source.Locked,
		Visible:     source.Visible,
		Properties:  source.Properties,
	}
	if err := s.elementRepo.Create(ctx, clone); err != nil {
		return nil, fmt.Errorf("clone layout element: %w", err)
	}
	return clone, nil
}

func (s *layoutService) UpdateProperties(ctx context.Context, actorID string, id uint, properties map[string]any) (*models.LayoutElement, error) {
	element, err := s.modifiable(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if err := element.SetProperties(properties); err != nil {
		return nil, fmt.Errorf("encode properties: %w", err)
	}
	return s.save(ctx, element)
}

// defaultLayout seeds the three elements every venue starts from.
var defaultLayout = []models.LayoutElement{
	{ElementType: models.ElementEntrance, Name: "Main Entrance", XPosition: 50, YPosition: 350, Width: 100, Height: 30, Color: "#4caf50", Layer: 1},
	{ElementType: models.ElementStage, Name: "Main Stage", XPosition: 300, YPosition: 50, Width: 200, Height: 100, Color: "#3f51b5", Layer: 1},
	{ElementType: models.ElementRestroom, Name: "Restroom", XPosition: 650, YPosition: 350, Width: 80, Height: 60, Color: "#9e9e9e", Layer: 1},
}

// ApplyDefaultLayout seeds the default elements, skipping any type the
// venue already has, so re-applying is safe.
func (s *layoutService) ApplyDefaultLayout(ctx context.Context, venueID uint) ([]models.LayoutElement, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}

	created := []models.LayoutElement{}
	for _, template := range defaultLayout {
		exists, err := s.elementRepo.ExistsByType(ctx, venueID, template.ElementType)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		element := template
		element.VenueID = venueID
		element.Visible = true
		if err := s.elementRepo.Create(ctx, &element); err != nil {
			return nil, fmt.Errorf("apply default layout: %w", err)
		}
		created = append(created, element)
	}
	return created, nil
}

func (s *layoutService) save(ctx context.Context, element *models.LayoutElement) (*models.LayoutElement, error) {
	if err := element.Validate().OrNil(); err != nil {
		return nil, err
	}
	if err := s.elementRepo.Update(ctx, element); err != nil {
		return nil, fmt.Errorf("update layout element: %w", err)
	}
	return element, nil
}
