package commands

import (
	"context"
	"fmt"
	"io"
	"path"

	"banana-farm-api/internal/domain/farm"
	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/pkg/errs"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrFarmRoleRequired   = errs.New("caller role cannot own a farm")
	ErrImageStoreDisabled = errs.New("image storage is not configured")
)

type CreateFarmParams struct {
	Name        string
	Description string
	Location    string
	Latitude    *float64
	Longitude   *float64
}

type FarmRepository interface {
	Create(ctx context.Context, f *farm.Farm) (*queries.FarmView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*farm.Farm, error)
	Update(ctx context.Context, f *farm.Farm) (*queries.FarmView, error)
	UpdateImageURL(ctx context.Context, farmID uuid.UUID, imageURL string) error
}

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey string) (string, error)
}

type FarmCommands interface {
	Create(ctx context.Context, params CreateFarmParams, ownerID uuid.UUID, ownerRole user.Role) (*queries.FarmView, error)
	// Update replaces the farm's editable fields. Only the owner or an admin
	// may update; the owner is never reassigned.
	Update(ctx context.Context, farmID uuid.UUID, params CreateFarmParams, actorID uuid.UUID, actorRole user.Role) (*queries.FarmView, error)
	// AttachImage stores the uploaded image and records its URL on the farm.
	AttachImage(ctx context.Context, farmID uuid.UUID, actorID uuid.UUID, actorRole user.Role, filename string, file io.Reader) (string, error)
}

type farmCommandsImpl struct {
	farmRepo   FarmRepository
	farmReader FarmReader
	images     ImageStore
	clock      clock.Clock
}

func NewFarmCommands(farmRepo FarmRepository, farmReader FarmReader, images ImageStore, clk clock.Clock) FarmCommands {
	return &farmCommandsImpl{
		farmRepo:   farmRepo,
		farmReader: farmReader,
		images:     images,
		clock:      clk,
	}
}

func (c *farmCommandsImpl) Create(ctx context.Context, params CreateFarmParams, ownerID uuid.UUID, ownerRole user.Role) (*queries.FarmView, error) {
	if !ownerRole.CanOwnFarm() {
		return nil, ErrFarmRoleRequired
	}

	f, err := farm.NewFarm(ownerID, params.Name, params.Description, params.Location, params.Latitude, params.Longitude)
	if err != nil {
		return nil, err
	}

	view, err := c.farmRepo.Create(ctx, f)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *farmCommandsImpl) Update(ctx context.Context, farmID uuid.UUID, params CreateFarmParams, actorID uuid.UUID, actorRole user.Role) (*queries.FarmView, error) {
	f, err := c.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFarmNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !f.IsOwnedBy(actorID) && actorRole != user.RoleAdmin {
		return nil, ErrNotFarmOwner
	}

	if err := f.UpdateDetails(params.Name, params.Description, params.Location, params.Latitude, params.Longitude); err != nil {
		return nil, err
	}

	view, err := c.farmRepo.Update(ctx, f)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *farmCommandsImpl) AttachImage(ctx context.Context, farmID, actorID uuid.UUID, actorRole user.Role, filename string, file io.Reader) (string, error) {
	if c.images == nil {
		return "", ErrImageStoreDisabled
	}

	snap, err := c.farmReader.FindSnapshot(ctx, farmID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrFarmNotFound
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.OwnerID != actorID && actorRole != user.RoleAdmin {
		return "", ErrNotFarmOwner
	}

	objectKey := fmt.Sprintf("farms/%s/%s%s", farmID, uuid.New(), path.Ext(filename))
	url, err := c.images.UploadFile(ctx, file, objectKey)
	if err != nil {
		return "", errs.Wrap(err, "failed to upload farm image")
	}

	if err := c.farmRepo.UpdateImageURL(ctx, farmID, url); err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return url, nil
}
