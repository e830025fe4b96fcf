package queries

import (
	"time"

	"github.com/google/uuid"
)

// Each view states which related entities travel inline. Anything else is
// returned by id only and must be fetched separately.

// BookingView inlines the resource name; the user is by id only.
type BookingView struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	CreatedAt    time.Time
}

type LocationView struct {
	ID      uuid.UUID
	Name    string
	Address string
}

type ResourceTypeView struct {
	ID   uuid.UUID
	Name string
}

// TagView carries its resource type by id only.
type TagView struct {
	ID             uuid.UUID
	Name           string
	ResourceTypeID uuid.UUID
}

// ResourceView inlines location and type names. Tags are not included in
// list results.
type ResourceView struct {
	ID           uuid.UUID
	Name         string
	LocationID   uuid.UUID
	LocationName string
	TypeID       uuid.UUID
	TypeName     string
}

// ResourceDetailView adds the attached tags, ordered by id.
type ResourceDetailView struct {
	ResourceView
	Tags []TagView
}
