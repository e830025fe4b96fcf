package queries

import (
	"context"

	"place-booking/internal/infra"
	"place-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=taxonomy.go -destination=../../../tests/mock/queries/taxonomy.go -package=queriesmock

var ErrResourceNotFound = errs.Mark(errs.New("resource not found"), errs.ErrNotFound)

// ResourceFilter selects resources by exactly one of its fields.
type ResourceFilter struct {
	LocationID *uuid.UUID
	TypeID     *uuid.UUID
	TagID      *uuid.UUID
}

var ErrInvalidResourceFilter = errs.Mark(errs.New("exactly one of location, type or tag must be given"), errs.ErrValidation)

type TaxonomyQueries interface {
	ListLocations(ctx context.Context) ([]*LocationView, error)
	ListResourceTypes(ctx context.Context) ([]*ResourceTypeView, error)
	ListTagsByType(ctx context.Context, typeID uuid.UUID) ([]*TagView, error)
	GetResource(ctx context.Context, id uuid.UUID) (*ResourceDetailView, error)
	// ListResources orders by id ascending.
	ListResources(ctx context.Context, filter ResourceFilter) ([]*ResourceView, error)
	ListResourcesByLocation(ctx context.Context, locationID uuid.UUID) ([]*ResourceView, error)
	ListResourcesByType(ctx context.Context, typeID uuid.UUID) ([]*ResourceView, error)
	ListResourcesByTag(ctx context.Context, tagID uuid.UUID) ([]*ResourceView, error)
}

type TaxonomyViewRepo interface {
	Locations(ctx context.Context) ([]*LocationView, error)
	ResourceTypes(ctx context.Context) ([]*ResourceTypeView, error)
	TagsByType(ctx context.Context, typeID uuid.UUID) ([]*TagView, error)
	TagsForResource(ctx context.Context, resourceID uuid.UUID) ([]*TagView, error)
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	ResourcesByLocation(ctx context.Context, locationID uuid.UUID) ([]*ResourceView, error)
	ResourcesByType(ctx context.Context, typeID uuid.UUID) ([]*ResourceView, error)
	ResourcesByTag(ctx context.Context, tagID uuid.UUID) ([]*ResourceView, error)
}

type taxonomyQueriesImpl struct {
	repo TaxonomyViewRepo
}

func NewTaxonomyQueries(repo TaxonomyViewRepo) TaxonomyQueries {
	return &taxonomyQueriesImpl{repo: repo}
}

func (q *taxonomyQueriesImpl) ListLocations(ctx context.Context) ([]*LocationView, error) {
	return q.repo.Locations(ctx)
}

func (q *taxonomyQueriesImpl) ListResourceTypes(ctx context.Context) ([]*ResourceTypeView, error) {
	return q.repo.ResourceTypes(ctx)
}

func (q *taxonomyQueriesImpl) ListTagsByType(ctx context.Context, typeID uuid.UUID) ([]*TagView, error) {
	return q.repo.TagsByType(ctx, typeID)
}

// GetResource loads the resource row and its tags concurrently. The two
// reads are independent statements; tags attached in between may or may
// not show up.
func (q *taxonomyQueriesImpl) GetResource(ctx context.Context, id uuid.UUID) (*ResourceDetailView, error) {
	var (
		resource *ResourceView
		tags     []*TagView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resource, err = q.repo.ResourceByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = q.repo.TagsForResource(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithSecondary(ErrResourceNotFound, err)
		}
		return nil, err
	}

	detail := &ResourceDetailView{ResourceView: *resource, Tags: make([]TagView, 0, len(tags))}
	for _, t := range tags {
		detail.Tags = append(detail.Tags, *t)
	}
	return detail, nil
}

func (q *taxonomyQueriesImpl) ListResources(ctx context.Context, filter ResourceFilter) ([]*ResourceView, error) {
	set := 0
	for _, id := range []*uuid.UUID{filter.LocationID, filter.TypeID, filter.TagID} {
		if id != nil {
			set++
		}
	}
	if set != 1 {
		return nil, ErrInvalidResourceFilter
	}

	switch {
	case filter.LocationID != nil:
		return q.ListResourcesByLocation(ctx, *filter.LocationID)
	case filter.TypeID != nil:
		return q.ListResourcesByType(ctx, *filter.TypeID)
	default:
		return q.ListResourcesByTag(ctx, *filter.TagID)
	}
}

func (q *taxonomyQueriesImpl) ListResourcesByLocation(ctx context.Context, locationID uuid.UUID) ([]*ResourceView, error) {
	return q.repo.ResourcesByLocation(ctx, locationID)
}

func (q *taxonomyQueriesImpl) ListResourcesByType(ctx context.Context, typeID uuid.UUID) ([]*ResourceView, error) {
	return q.repo.ResourcesByType(ctx, typeID)
}

func (q *taxonomyQueriesImpl) ListResourcesByTag(ctx context.Context, tagID uuid.UUID) ([]*ResourceView, error) {
	return q.repo.ResourcesByTag(ctx, tagID)
}
