package request

import (
	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required,notblank,max=255"`
	Address string `json:"address" binding:"max=500"`
}

type CreateResourceTypeRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
}

type CreateResourceRequest struct {
	Name       string    `json:"name" binding:"required,notblank,max=255"`
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	TypeID     uuid.UUID `json:"type_id" binding:"required"`
}

type CreateTagRequest struct {
	Name           string    `json:"name" binding:"required,notblank,max=255"`
	ResourceTypeID uuid.UUID `json:"resource_type_id" binding:"required"`
}

// ResourceFilterQuery takes exactly one filter; the use case enforces it.
type ResourceFilterQuery struct {
	LocationID string `form:"location_id" binding:"omitempty,uuid"`
	TypeID     string `form:"type_id" binding:"omitempty,uuid"`
	TagID      string `form:"tag_id" binding:"omitempty,uuid"`
}

func (q ResourceFilterQuery) IDs() (location, resourceType, tag *uuid.UUID) {
	return parseOptional(q.LocationID), parseOptional(q.TypeID), parseOptional(q.TagID)
}

// parseOptional expects input already checked by the uuid binding tag.
func parseOptional(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
