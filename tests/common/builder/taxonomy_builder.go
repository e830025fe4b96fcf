//go:build unit || e2e

package builder

import (
	"place-booking/internal/domain/taxonomy"
	reqdto "place-booking/internal/handler/dto/request"
	"place-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// TaxonomyBuilder describes one location, one resource type, one resource
// of that type at that location, and one tag of that type.
type TaxonomyBuilder struct {
	LocationID   uuid.UUID
	LocationName string
	Address      string
	TypeID       uuid.UUID
	TypeName     string
	ResourceID   uuid.UUID
	ResourceName string
	TagID        uuid.UUID
	TagName      string
}

func NewTaxonomyBuilder() *TaxonomyBuilder {
	suffix := uuid.NewString()[:8]
	return &TaxonomyBuilder{
		LocationID:   uuid.New(),
		LocationName: "HQ " + suffix,
		Address:      "1 Main Street",
		TypeID:       uuid.New(),
		TypeName:     "Meeting room " + suffix,
		ResourceID:   uuid.New(),
		ResourceName: "Room A",
		TagID:        uuid.New(),
		TagName:      "projector " + suffix,
	}
}

func (t *TaxonomyBuilder) With(mutate func(*TaxonomyBuilder)) *TaxonomyBuilder {
	mutate(t)
	return t
}

func (t *TaxonomyBuilder) Location() *taxonomy.Location {
	return taxonomy.ReconstructLocation(t.LocationID, t.LocationName, t.Address)
}

func (t *TaxonomyBuilder) ResourceType() *taxonomy.ResourceType {
	return taxonomy.ReconstructResourceType(t.TypeID, t.TypeName)
}

func (t *TaxonomyBuilder) Resource() *taxonomy.Resource {
	return taxonomy.ReconstructResource(t.ResourceID, t.ResourceName, t.LocationID, t.TypeID)
}

func (t *TaxonomyBuilder) Tag() *taxonomy.Tag {
	return taxonomy.ReconstructTag(t.TagID, t.TagName, t.TypeID)
}

func (t *TaxonomyBuilder) ResourceView() *queries.ResourceView {
	return &queries.ResourceView{
		ID:           t.ResourceID,
		Name:         t.ResourceName,
		LocationID:   t.LocationID,
		LocationName: t.LocationName,
		TypeID:       t.TypeID,
		TypeName:     t.TypeName,
	}
}

func (t *TaxonomyBuilder) TagView() *queries.TagView {
	return &queries.TagView{ID: t.TagID, Name: t.TagName, ResourceTypeID: t.TypeID}
}

func (t *TaxonomyBuilder) BuildCreateResourceRequestDTO() reqdto.CreateResourceRequest {
	return reqdto.CreateResourceRequest{Name: t.ResourceName, LocationID: t.LocationID, TypeID: t.TypeID}
}

func (t *TaxonomyBuilder) BuildCreateTagRequestDTO() reqdto.CreateTagRequest {
	return reqdto.CreateTagRequest{Name: t.TagName, ResourceTypeID: t.TypeID}
}

// Fluent builder methods
func (t *TaxonomyBuilder) WithResourceName(name string) *TaxonomyBuilder {
	t.ResourceName = name
	return t
}
