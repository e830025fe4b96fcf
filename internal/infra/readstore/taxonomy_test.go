//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"place-booking/internal/infra"
	"place-booking/internal/infra/readstore"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/tests/common/builder"
	readstoremock "place-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTaxonomyReadStore_ResourceByID(t *testing.T) {
	ctx := context.Background()
	tb := builder.NewTaxonomyBuilder()

	t.Run("inlines location and type names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockTaxonomyViewQueries(ctrl)
		store := readstore.NewTaxonomyReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetResourceDetail(ctx, gomock.Any(), tb.ResourceID).Return(sqlc.GetResourceDetailRow{
			ID:           tb.ResourceID,
			Name:         tb.ResourceName,
			LocationID:   tb.LocationID,
			LocationName: tb.LocationName,
			TypeID:       tb.TypeID,
			TypeName:     tb.TypeName,
		}, nil)

		got, err := store.ResourceByID(ctx, tb.ResourceID)
		require.NoError(t, err)
		assert.Equal(t, tb.ResourceView(), got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockTaxonomyViewQueries(ctrl)
		store := readstore.NewTaxonomyReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetResourceDetail(ctx, gomock.Any(), tb.ResourceID).Return(sqlc.GetResourceDetailRow{}, pgx.ErrNoRows)

		got, err := store.ResourceByID(ctx, tb.ResourceID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})
}

func TestTaxonomyReadStore_ResourcesByTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tb := builder.NewTaxonomyBuilder()
	mockQueries := readstoremock.NewMockTaxonomyViewQueries(ctrl)
	store := readstore.NewTaxonomyReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListResourcesByTag(ctx, gomock.Any(), tb.TagID).Return([]sqlc.ListResourcesByTagRow{{
		ID:           tb.ResourceID,
		Name:         tb.ResourceName,
		LocationID:   tb.LocationID,
		LocationName: tb.LocationName,
		TypeID:       tb.TypeID,
		TypeName:     tb.TypeName,
	}}, nil)

	got, err := store.ResourcesByTag(ctx, tb.TagID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tb.ResourceView(), got[0])
}

func TestTaxonomyReadStore_TagsByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tb := builder.NewTaxonomyBuilder()
	mockQueries := readstoremock.NewMockTaxonomyViewQueries(ctrl)
	store := readstore.NewTaxonomyReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListTagsByType(ctx, gomock.Any(), tb.TypeID).
		Return([]sqlc.Tags{{ID: tb.TagID, Name: tb.TagName, ResourceTypeID: tb.TypeID}}, nil)

	got, err := store.TagsByType(ctx, tb.TypeID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tb.TagView(), got[0])
}
