package taxonomy

import (
	"strings"

	"place-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errs.Mark(errs.New("name cannot be empty"), errs.ErrValidation)
	ErrNameTooLong      = errs.Mark(errs.New("name is too long (max 255 characters)"), errs.ErrValidation)
	ErrAddressTooLong   = errs.Mark(errs.New("address is too long (max 500 characters)"), errs.ErrValidation)
	ErrMissingReference = errs.Mark(errs.New("referenced id is required"), errs.ErrValidation)
	ErrTagTypeMismatch  = errs.Mark(errs.New("tag belongs to a different resource type"), errs.ErrValidation)
)

const (
	MaxNameLength    = 255
	MaxAddressLength = 500
)

type Location struct {
	id      uuid.UUID
	name    string
	address string
}

func NewLocation(name, address string) (*Location, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	address = strings.TrimSpace(address)
	if len(address) > MaxAddressLength {
		return nil, ErrAddressTooLong
	}
	return &Location{id: uuid.New(), name: name, address: address}, nil
}

func ReconstructLocation(id uuid.UUID, name, address string) *Location {
	return &Location{id: id, name: name, address: address}
}

func (l *Location) ID() uuid.UUID   { return l.id }
func (l *Location) Name() string    { return l.name }
func (l *Location) Address() string { return l.address }

type ResourceType struct {
	id   uuid.UUID
	name string
}

func NewResourceType(name string) (*ResourceType, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return &ResourceType{id: uuid.New(), name: name}, nil
}

func ReconstructResourceType(id uuid.UUID, name string) *ResourceType {
	return &ResourceType{id: id, name: name}
}

func (t *ResourceType) ID() uuid.UUID { return t.id }
func (t *ResourceType) Name() string  { return t.name }

type Resource struct {
	id         uuid.UUID
	name       string
	locationID uuid.UUID
	typeID     uuid.UUID
}

func NewResource(name string, locationID, typeID uuid.UUID) (*Resource, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if locationID == uuid.Nil || typeID == uuid.Nil {
		return nil, ErrMissingReference
	}
	return &Resource{id: uuid.New(), name: name, locationID: locationID, typeID: typeID}, nil
}

func ReconstructResource(id uuid.UUID, name string, locationID, typeID uuid.UUID) *Resource {
	return &Resource{id: id, name: name, locationID: locationID, typeID: typeID}
}

// CanCarry enforces that tags are scoped to their resource type's vocabulary.
func (r *Resource) CanCarry(tag *Tag) error {
	if tag.resourceTypeID != r.typeID {
		return ErrTagTypeMismatch
	}
	return nil
}

func (r *Resource) ID() uuid.UUID         { return r.id }
func (r *Resource) Name() string          { return r.name }
func (r *Resource) LocationID() uuid.UUID { return r.locationID }
func (r *Resource) TypeID() uuid.UUID     { return r.typeID }

type Tag struct {
	id             uuid.UUID
	name           string
	resourceTypeID uuid.UUID
}

func NewTag(name string, resourceTypeID uuid.UUID) (*Tag, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if resourceTypeID == uuid.Nil {
		return nil, ErrMissingReference
	}
	return &Tag{id: uuid.New(), name: name, resourceTypeID: resourceTypeID}, nil
}

func ReconstructTag(id uuid.UUID, name string, resourceTypeID uuid.UUID) *Tag {
	return &Tag{id: id, name: name, resourceTypeID: resourceTypeID}
}

func (t *Tag) ID() uuid.UUID             { return t.id }
func (t *Tag) Name() string              { return t.name }
func (t *Tag) ResourceTypeID() uuid.UUID { return t.resourceTypeID }

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
