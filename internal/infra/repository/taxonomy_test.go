//go:build unit

package repository_test

import (
	"context"
	"testing"

	"place-booking/internal/infra"
	"place-booking/internal/infra/repository"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/tests/common/builder"
	repositorymock "place-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTaxonomyRepository_CreateTag(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name             string
		returnErr        error
		expectKind       infra.RepositoryErrorKind
		expectConstraint string
	}{
		{name: "success: tag created"},
		{
			name:             "error: name taken",
			returnErr:        &pgconn.PgError{Code: "23505", ConstraintName: "tags_name_key"},
			expectKind:       infra.KindDuplicateKey,
			expectConstraint: "tags_name_key",
		},
		{
			name:             "error: unknown resource type",
			returnErr:        &pgconn.PgError{Code: "23503", ConstraintName: "tags_resource_type_id_fkey"},
			expectKind:       infra.KindForeignKeyViolated,
			expectConstraint: "tags_resource_type_id_fkey",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockTaxonomyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTaxonomyRepository(mockQueries, mockDB)

			tag := builder.NewTaxonomyBuilder().Tag()
			mockQueries.EXPECT().CreateTag(ctx, mockDB, sqlc.CreateTagParams{
				ID:             tag.ID(),
				Name:           tag.Name(),
				ResourceTypeID: tag.ResourceTypeID(),
			}).Return(sqlc.Tags{}, tc.returnErr)

			err := repo.CreateTag(ctx, tag)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				assert.Equal(t, tc.expectConstraint, infra.ConstraintOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTaxonomyRepository_AttachTag(t *testing.T) {
	ctx := context.Background()
	tx := builder.NewTaxonomyBuilder()

	testCases := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "new link", affected: 1, want: true},
		{name: "existing link", affected: 0, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockTaxonomyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTaxonomyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().AttachTag(ctx, mockDB, sqlc.AttachTagParams{ResourceID: tx.ResourceID, TagID: tx.TagID}).
				Return(tc.affected, nil)

			got, err := repo.AttachTag(ctx, tx.ResourceID, tx.TagID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTaxonomyRepository_GetResource(t *testing.T) {
	ctx := context.Background()
	tx := builder.NewTaxonomyBuilder()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTaxonomyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTaxonomyRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetResource(ctx, mockDB, tx.ResourceID).Return(sqlc.Resources{
			ID: tx.ResourceID, Name: tx.ResourceName, LocationID: tx.LocationID, TypeID: tx.TypeID,
		}, nil)

		got, err := repo.GetResource(ctx, tx.ResourceID)
		require.NoError(t, err)
		assert.Equal(t, tx.TypeID, got.TypeID())
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTaxonomyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTaxonomyRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetResource(ctx, mockDB, tx.ResourceID).Return(sqlc.Resources{}, pgx.ErrNoRows)

		_, err := repo.GetResource(ctx, tx.ResourceID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
