package service

import (
	"context"
	"testing"

	"github.com/matsuri-platform/venue-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func stageElement() *models.LayoutElement {
	return &models.LayoutElement{
		ID:          1,
		VenueID:     1,
		ElementType: models.ElementStage,
		Name:        "Stage",
		XPosition:   100,
		YPosition:   100,
		Width:       50,
		Height:      30,
		Layer:       2,
		Visible:     true,
	}
}

func elementRepoWith(element *models.LayoutElement) *mockElementRepo {
	return &mockElementRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.LayoutElement, error) {
			copy := *element
			return &copy, nil
		},
	}
}

func TestRotateElement_NormalizesDegrees(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-10, 350},
		{370, 10},
		{360, 0},
		{45, 45},
	}

	for _, tc := range cases {
		var saved *models.LayoutElement
		repo := elementRepoWith(stageElement())
		repo.updateFn = func(ctx context.Context, e *models.LayoutElement) error {
			saved = e
			return nil
		}
		svc := NewLayoutService(repo, nil, AllowAll{})

		element, err := svc.RotateElement(context.Background(), "user-1", 1, tc.in)

		assert.NoError(t, err)
		assert.Equal(t, tc.want, *element.Rotation, "rotate to %v", tc.in)
		assert.Equal(t, tc.want, *saved.Rotation)
	}
}

func TestMoveElement_LockedIsImmutable(t *testing.T) {
	locked := stageElement()
	locked.Locked = true
	svc := NewLayoutService(elementRepoWith(locked), nil, AllowAll{})

	_, err := svc.MoveElement(context.Background(), "user-1", 1, 0, 0)

	assert.ErrorIs(t, err, ErrElementLocked)
}

func TestMoveElement_PermissionDenied(t *testing.T) {
	svc := NewLayoutService(elementRepoWith(stageElement()), nil, denyAll{})

	_, err := svc.MoveElement(context.Background(), "user-1", 1, 0, 0)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestToggleLock_WorksOnLockedElement(t *testing.T) {
	locked := stageElement()
	locked.Locked = true
	repo := elementRepoWith(locked)
	svc := NewLayoutService(repo, nil, AllowAll{})

	element, err := svc.ToggleLock(context.Background(), "user-1", 1)

	assert.NoError(t, err)
	assert.False(t, element.Locked, "toggling a locked element unlocks it")
}

func TestToggleVisibility(t *testing.T) {
	repo := elementRepoWith(stageElement())
	svc := NewLayoutService(repo, nil, AllowAll{})

	element, err := svc.ToggleVisibility(context.Background(), "user-1", 1)

	assert.NoError(t, err)
	assert.False(t, element.Visible)
}

func TestBringToFront_UsesSiblingMaxAtCallTime(t *testing.T) {
	repo := elementRepoWith(stageElement())
	repo.maxLayerFn = func(ctx context.Context, venueID uint) (int, error) {
		return 7, nil
	}
	svc := NewLayoutService(repo, nil, AllowAll{})

	element, err := svc.BringToFront(context.Background(), "user-1", 1)

	assert.NoError(t, err)
	assert.Equal(t, 8, element.Layer)
}

func TestSendToBack_FloorsAtZero(t *testing.T) {
	repo := elementRepoWith(stageElement())
	repo.minLayerFn = func(ctx context.Context, venueID uint) (int, error) {
		return 0, nil
	}
	svc := NewLayoutService(repo, nil, AllowAll{})

	element, err := svc.SendToBack(context.Background(), "user-1", 1)

	assert.NoError(t, err)
	assert.Equal(t, 0, element.Layer, "layer never goes negative")
}

func TestSendToBack_BelowCurrentMin(t *testing.T) {
	repo := elementRepoWith(stageElement())
	repo.minLayerFn = func(ctx context.Context, venueID uint) (int, error) {
		return 3, nil
	}
	svc := NewLayoutService(repo, nil, AllowAll{})

	element, err := svc.SendToBack(context.Background(), "user-1", 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, element.Layer)
}

func TestCloneElement_OffsetNameAndTopLayer(t *testing.T) {
	var created *models.LayoutElement
	repo := elementRepoWith(stageElement())
	repo.maxLayerFn = func(ctx context.Context, venueID uint) (int, error) {
		return 5, nil
	}
	repo.createFn = func(ctx context.Context, e *models.LayoutElement) error {
		e.ID = 42
		created = e
		return nil
	}
	svc := NewLayoutService(repo, nil, AllowAll{})

	clone, err := svc.CloneElement(context.Background(), "user-1", 1, "")

	assert.NoError(t, err)
	assert.Equal(t, uint(42), clone.ID)
	assert.Equal(t, "Stage (copy)", clone.Name)
	assert.Equal(t, 120.0, clone.XPosition)
	assert.Equal(t, 120.0, clone.YPosition)
	assert.Equal(t, 6, clone.Layer, "clone sits above every existing element")
	assert.Equal(t, created, clone)
}

func TestCloneElement_ExplicitName(t *testing.T) {
	repo := elementRepoWith(stageElement())
	repo.createFn = func(ctx context.Context, e *models.LayoutElement) error { return nil }
	svc := NewLayoutService(repo, nil, AllowAll{})

	clone, err := svc.CloneElement(context.Background(), "user-1", 1, "Second Stage")

	assert.NoError(t, err)
	assert.Equal(t, "Second Stage", clone.Name)
}

func TestUpdateProperties_ReplacesBag(t *testing.T) {
	repo := elementRepoWith(stageElement())
	svc := NewLayoutService(repo, nil, AllowAll{})

	element, err := svc.UpdateProperties(context.Background(), "user-1", 1, map[string]any{"roof": true})

	assert.NoError(t, err)
	assert.Equal(t, true, element.PropertiesMap()["roof"])
}

func TestApplyDefaultLayout_SkipsExistingTypes(t *testing.T) {
	var created []models.LayoutElement
	venueRepo := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return &models.Venue{ID: id}, nil
		},
	}
	repo := &mockElementRepo{
		existsByTypeFn: func(ctx context.Context, venueID uint, elementType models.ElementType) (bool, error) {
			return elementType == models.ElementStage, nil
		},
		createFn: func(ctx context.Context, e *models.LayoutElement) error {
			created = append(created, *e)
			return nil
		},
	}
	svc := NewLayoutService(repo, venueRepo, AllowAll{})

	seeded, err := svc.ApplyDefaultLayout(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, seeded, 2, "stage already exists, only entrance and restroom are seeded")
	types := []models.ElementType{created[0].ElementType, created[1].ElementType}
	assert.ElementsMatch(t, []models.ElementType{models.ElementEntrance, models.ElementRestroom}, types)
	for _, e := range created {
		assert.True(t, e.Visible)
		assert.Equal(t, uint(1), e.VenueID)
	}
}

func TestCreateElement_NormalizesRotationAndValidates(t *testing.T) {
	venueRepo := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return &models.Venue{ID: id}, nil
		},
	}
	repo := &mockElementRepo{
		createFn: func(ctx context.Context, e *models.LayoutElement) error { return nil },
	}
	svc := NewLayoutService(repo, venueRepo, AllowAll{})

	rotation := 370.0
	element := &models.LayoutElement{
		ElementType: models.ElementTent,
		Name:        "Beer Tent",
		Width:       10,
		Height:      10,
		Rotation:    &rotation,
		Visible:     true,
	}

	element, err := svc.CreateElement(context.Background(), 1, element)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, *element.Rotation)

	bad := &models.LayoutElement{ElementType: "volcano", Name: "", Width: 0, Height: 1}
	_, err = svc.CreateElement(context.Background(), 1, bad)

	var verrs models.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}
