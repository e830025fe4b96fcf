package response

import (
	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/usecase/queries"
)

type LocationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type ResourceTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TagResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ResourceTypeID string `json:"resource_type_id"`
}

type ResourceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name,omitempty"`
	TypeID       string `json:"type_id"`
	TypeName     string `json:"type_name,omitempty"`
}

type ResourceDetailResponse struct {
	ResourceResponse
	Tags []*TagResponse `json:"tags"`
}

func FromLocationViews(views []*queries.LocationView) []*LocationResponse {
	res := make([]*LocationResponse, 0, len(views))
	mustCopy(&res, views)
	return res
}

func FromResourceTypeViews(views []*queries.ResourceTypeView) []*ResourceTypeResponse {
	res := make([]*ResourceTypeResponse, 0, len(views))
	mustCopy(&res, views)
	return res
}

func FromTagViews(views []*queries.TagView) []*TagResponse {
	res := make([]*TagResponse, 0, len(views))
	mustCopy(&res, views)
	return res
}

func FromResourceViews(views []*queries.ResourceView) []*ResourceResponse {
	res := make([]*ResourceResponse, 0, len(views))
	mustCopy(&res, views)
	return res
}

func FromResourceDetail(v *queries.ResourceDetailView) *ResourceDetailResponse {
	res := &ResourceDetailResponse{Tags: make([]*TagResponse, 0, len(v.Tags))}
	mustCopy(&res.ResourceResponse, &v.ResourceView)
	mustCopy(&res.Tags, v.Tags)
	return res
}

func FromLocation(l *taxonomy.Location) *LocationResponse {
	return &LocationResponse{ID: l.ID().String(), Name: l.Name(), Address: l.Address()}
}

func FromResourceType(t *taxonomy.ResourceType) *ResourceTypeResponse {
	return &ResourceTypeResponse{ID: t.ID().String(), Name: t.Name()}
}

func FromResource(r *taxonomy.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:         r.ID().String(),
		Name:       r.Name(),
		LocationID: r.LocationID().String(),
		TypeID:     r.TypeID().String(),
	}
}

func FromTag(t *taxonomy.Tag) *TagResponse {
	return &TagResponse{ID: t.ID().String(), Name: t.Name(), ResourceTypeID: t.ResourceTypeID().String()}
}
