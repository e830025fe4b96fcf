//go:build unit

package taxonomy_test

import (
	"strings"
	"testing"

	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "trimmed", input: "  Room A  ", want: "Room A"},
		{name: "empty", input: "", errIs: taxonomy.ErrEmptyName},
		{name: "whitespace only", input: "   ", errIs: taxonomy.ErrEmptyName},
		{name: "max length", input: strings.Repeat("a", taxonomy.MaxNameLength), want: strings.Repeat("a", taxonomy.MaxNameLength)},
		{name: "too long", input: strings.Repeat("a", taxonomy.MaxNameLength+1), errIs: taxonomy.ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := taxonomy.NewResourceType(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rt.Name())
			assert.NotEqual(t, uuid.Nil, rt.ID())
		})
	}
}

func TestNewLocation(t *testing.T) {
	loc, err := taxonomy.NewLocation("HQ", " 1 Main St ")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", loc.Address())

	_, err = taxonomy.NewLocation("HQ", strings.Repeat("x", taxonomy.MaxAddressLength+1))
	assert.ErrorIs(t, err, taxonomy.ErrAddressTooLong)
}

func TestNewResource(t *testing.T) {
	_, err := taxonomy.NewResource("Room A", uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, taxonomy.ErrMissingReference)

	_, err = taxonomy.NewResource("Room A", uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, taxonomy.ErrMissingReference)

	res, err := taxonomy.NewResource("Room A", uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Room A", res.Name())
}

func TestResource_CanCarry(t *testing.T) {
	roomType := uuid.New()
	projectorType := uuid.New()
	room := taxonomy.ReconstructResource(uuid.New(), "Room A", uuid.New(), roomType)

	windowTag := taxonomy.ReconstructTag(uuid.New(), "window", roomType)
	hdmiTag := taxonomy.ReconstructTag(uuid.New(), "hdmi", projectorType)

	assert.NoError(t, room.CanCarry(windowTag))

	err := room.CanCarry(hdmiTag)
	assert.ErrorIs(t, err, taxonomy.ErrTagTypeMismatch)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
