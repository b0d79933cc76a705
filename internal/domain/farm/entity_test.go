//go:build unit

package farm_test

import (
	"strings"
	"testing"

	"banana-farm-api/internal/domain/farm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFarm(t *testing.T) {
	owner := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		f, err := farm.NewFarm(owner, "  Suan Kluai  ", "Namwa and Hom varieties", "Chumphon", nil, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, f.ID())
		assert.Equal(t, "Suan Kluai", f.Name())
		assert.Equal(t, "Chumphon", f.Location())
		assert.True(t, f.IsOwnedBy(owner))
		assert.Nil(t, f.ImageURL())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := farm.NewFarm(owner, "   ", "", "", nil, nil)
		assert.ErrorIs(t, err, farm.ErrEmptyName)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := farm.NewFarm(owner, strings.Repeat("a", farm.MaxNameLength+1), "", "", nil, nil)
		assert.ErrorIs(t, err, farm.ErrNameTooLong)
	})

	t.Run("latitude without longitude", func(t *testing.T) {
		lat := 10.493
		_, err := farm.NewFarm(owner, "Suan Kluai", "", "", &lat, nil)
		assert.ErrorIs(t, err, farm.ErrIncompleteGeoPoint)
	})

	t.Run("full geo point", func(t *testing.T) {
		lat, lng := 10.493, 99.18
		f, err := farm.NewFarm(owner, "Suan Kluai", "", "", &lat, &lng)
		require.NoError(t, err)
		assert.Equal(t, lat, *f.Latitude())
		assert.Equal(t, lng, *f.Longitude())
	})
}
