package repository

import (
	"context"

	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/infra"
	"place-booking/internal/infra/repository/converter"
	sqlc "place-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=taxonomy.go -destination=../../../tests/mock/repository/taxonomy.go -package=repositorymock

type TaxonomyWriteQueries interface {
	CreateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLocationParams) (sqlc.Locations, error)
	CreateResourceType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceTypeParams) (sqlc.ResourceTypes, error)
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) (sqlc.Resources, error)
	CreateTag(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTagParams) (sqlc.Tags, error)
	GetResource(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	GetTag(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Tags, error)
	AttachTag(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachTagParams) (int64, error)
}

type TaxonomyRepository struct {
	queries TaxonomyWriteQueries
	db      sqlc.DBTX
}

func NewTaxonomyRepository(queries TaxonomyWriteQueries, db sqlc.DBTX) *TaxonomyRepository {
	return &TaxonomyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TaxonomyRepository) CreateLocation(ctx context.Context, l *taxonomy.Location) error {
	if _, err := r.queries.CreateLocation(ctx, r.db, converter.LocationToCreateParams(l)); err != nil {
		return infra.WrapRepoErr("failed to create location", err)
	}
	return nil
}

func (r *TaxonomyRepository) CreateResourceType(ctx context.Context, t *taxonomy.ResourceType) error {
	if _, err := r.queries.CreateResourceType(ctx, r.db, converter.ResourceTypeToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create resource type", err)
	}
	return nil
}

func (r *TaxonomyRepository) CreateResource(ctx context.Context, res *taxonomy.Resource) error {
	if _, err := r.queries.CreateResource(ctx, r.db, converter.ResourceToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

func (r *TaxonomyRepository) CreateTag(ctx context.Context, t *taxonomy.Tag) error {
	if _, err := r.queries.CreateTag(ctx, r.db, converter.TagToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create tag", err)
	}
	return nil
}

func (r *TaxonomyRepository) GetResource(ctx context.Context, id uuid.UUID) (*taxonomy.Resource, error) {
	row, err := r.queries.GetResource(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load resource", err)
	}
	return converter.ResourceFromRow(row), nil
}

func (r *TaxonomyRepository) GetTag(ctx context.Context, id uuid.UUID) (*taxonomy.Tag, error) {
	row, err := r.queries.GetTag(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load tag", err)
	}
	return converter.TagFromRow(row), nil
}

func (r *TaxonomyRepository) AttachTag(ctx context.Context, resourceID, tagID uuid.UUID) (bool, error) {
	n, err := r.queries.AttachTag(ctx, r.db, sqlc.AttachTagParams{ResourceID: resourceID, TagID: tagID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach tag", err)
	}
	return n > 0, nil
}
