package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingEvents struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	ResourceID  uuid.UUID
	EventType   string
	Payload     []byte
	CreatedAt   pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
}

type Bookings struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ResourceID uuid.UUID
	StartTime  pgtype.Timestamptz
	EndTime    pgtype.Timestamptz
	Status     string
	CreatedAt  pgtype.Timestamptz
}

type Locations struct {
	ID      uuid.UUID
	Name    string
	Address string
}

type ResourceTags struct {
	ResourceID uuid.UUID
	TagID      uuid.UUID
}

type ResourceTypes struct {
	ID   uuid.UUID
	Name string
}

type Resources struct {
	ID         uuid.UUID
	Name       string
	LocationID uuid.UUID
	TypeID     uuid.UUID
}

type Tags struct {
	ID             uuid.UUID
	Name           string
	ResourceTypeID uuid.UUID
}
