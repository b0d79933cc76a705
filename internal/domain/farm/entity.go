package farm

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("farm name cannot be empty")
	ErrNameTooLong        = errors.New("farm name exceeds maximum length")
	ErrIncompleteGeoPoint = errors.New("latitude and longitude must be set together")
)

const MaxNameLength = 120

type Farm struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	location    string
	latitude    *float64
	longitude   *float64
	imageURL    *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewFarm(ownerID uuid.UUID, name, description, location string, latitude, longitude *float64) (*Farm, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	if len(trimmed) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if (latitude == nil) != (longitude == nil) {
		return nil, ErrIncompleteGeoPoint
	}

	return &Farm{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        trimmed,
		description: strings.TrimSpace(description),
		location:    strings.TrimSpace(location),
		latitude:    latitude,
		longitude:   longitude,
	}, nil
}

func ReconstructFarm(
	id, ownerID uuid.UUID,
	name, description, location string,
	latitude, longitude *float64,
	imageURL *string,
	createdAt, updatedAt time.Time,
) *Farm {
	return &Farm{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		location:    location,
		latitude:    latitude,
		longitude:   longitude,
		imageURL:    imageURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// UpdateDetails replaces the farm's editable fields, applying the same
// validation as creation. The image URL is managed separately.
func (f *Farm) UpdateDetails(name, description, location string, latitude, longitude *float64) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if len(trimmed) > MaxNameLength {
		return ErrNameTooLong
	}
	if (latitude == nil) != (longitude == nil) {
		return ErrIncompleteGeoPoint
	}

	f.name = trimmed
	f.description = strings.TrimSpace(description)
	f.location = strings.TrimSpace(location)
	f.latitude = latitude
	f.longitude = longitude
	return nil
}

func (f *Farm) IsOwnedBy(userID uuid.UUID) bool {
	return f.ownerID == userID
}

func (f *Farm) ID() uuid.UUID       { return f.id }
func (f *Farm) OwnerID() uuid.UUID  { return f.ownerID }
func (f *Farm) Name() string        { return f.name }
func (f *Farm) Description() string { return f.description }
func (f *Farm) Location() string    { return f.location }
func (f *Farm) Latitude() *float64  { return f.latitude }
func (f *Farm) Longitude() *float64 { return f.longitude }
func (f *Farm) ImageURL() *string   { return f.imageURL }
func (f *Farm) CreatedAt() time.Time { return f.createdAt }
func (f *Farm) UpdatedAt() time.Time { return f.updatedAt }
