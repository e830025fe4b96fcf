package readstore

import (
	"context"

	"place-booking/internal/infra"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=taxonomy.go -destination=../../../tests/mock/readstore/taxonomy.go -package=readstoremock

type TaxonomyViewQueries interface {
	ListLocations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Locations, error)
	ListResourceTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.ResourceTypes, error)
	ListTagsByType(ctx context.Context, db sqlc.DBTX, resourceTypeID uuid.UUID) ([]sqlc.Tags, error)
	ListTagsForResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]sqlc.Tags, error)
	GetResourceDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetResourceDetailRow, error)
	ListResourcesByLocation(ctx context.Context, db sqlc.DBTX, locationID uuid.UUID) ([]sqlc.ListResourcesByLocationRow, error)
	ListResourcesByType(ctx context.Context, db sqlc.DBTX, typeID uuid.UUID) ([]sqlc.ListResourcesByTypeRow, error)
	ListResourcesByTag(ctx context.Context, db sqlc.DBTX, tagID uuid.UUID) ([]sqlc.ListResourcesByTagRow, error)
}

type TaxonomyReadStore struct {
	queries TaxonomyViewQueries
	db      sqlc.DBTX
}

func NewTaxonomyReadStore(queries TaxonomyViewQueries, db sqlc.DBTX) *TaxonomyReadStore {
	return &TaxonomyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TaxonomyReadStore) Locations(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := r.queries.ListLocations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	views := make([]*queries.LocationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.LocationView{ID: row.ID, Name: row.Name, Address: row.Address})
	}
	return views, nil
}

func (r *TaxonomyReadStore) ResourceTypes(ctx context.Context) ([]*queries.ResourceTypeView, error) {
	rows, err := r.queries.ListResourceTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resource types", err)
	}
	views := make([]*queries.ResourceTypeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ResourceTypeView{ID: row.ID, Name: row.Name})
	}
	return views, nil
}

func (r *TaxonomyReadStore) TagsByType(ctx context.Context, typeID uuid.UUID) ([]*queries.TagView, error) {
	rows, err := r.queries.ListTagsByType(ctx, r.db, typeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tags by type", err)
	}
	return toTagViews(rows), nil
}

func (r *TaxonomyReadStore) TagsForResource(ctx context.Context, resourceID uuid.UUID) ([]*queries.TagView, error) {
	rows, err := r.queries.ListTagsForResource(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tags for resource", err)
	}
	return toTagViews(rows), nil
}

func (r *TaxonomyReadStore) ResourceByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceDetail(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get resource", err)
	}
	return toResourceView(row), nil
}

func (r *TaxonomyReadStore) ResourcesByLocation(ctx context.Context, locationID uuid.UUID) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResourcesByLocation(ctx, r.db, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources by location", err)
	}
	views := make([]*queries.ResourceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toResourceView(sqlc.GetResourceDetailRow(row)))
	}
	return views, nil
}

func (r *TaxonomyReadStore) ResourcesByType(ctx context.Context, typeID uuid.UUID) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResourcesByType(ctx, r.db, typeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources by type", err)
	}
	views := make([]*queries.ResourceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toResourceView(sqlc.GetResourceDetailRow(row)))
	}
	return views, nil
}

func (r *TaxonomyReadStore) ResourcesByTag(ctx context.Context, tagID uuid.UUID) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResourcesByTag(ctx, r.db, tagID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources by tag", err)
	}
	views := make([]*queries.ResourceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toResourceView(sqlc.GetResourceDetailRow(row)))
	}
	return views, nil
}

func toResourceView(row sqlc.GetResourceDetailRow) *queries.ResourceView {
	return &queries.ResourceView{
		ID:           row.ID,
		Name:         row.Name,
		LocationID:   row.LocationID,
		LocationName: row.LocationName,
		TypeID:       row.TypeID,
		TypeName:     row.TypeName,
	}
}

func toTagViews(rows []sqlc.Tags) []*queries.TagView {
	views := make([]*queries.TagView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.TagView{ID: row.ID, Name: row.Name, ResourceTypeID: row.ResourceTypeID})
	}
	return views
}
