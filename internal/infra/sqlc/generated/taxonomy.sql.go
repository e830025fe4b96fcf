// source: taxonomy.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const createLocation = `-- name: CreateLocation :one
INSERT INTO locations (id, name, address)
VALUES ($1, $2, $3)
RETURNING id, name, address
`

type CreateLocationParams struct {
	ID      uuid.UUID
	Name    string
	Address string
}

func (q *Queries) CreateLocation(ctx context.Context, db DBTX, arg CreateLocationParams) (Locations, error) {
	row := db.QueryRow(ctx, createLocation, arg.ID, arg.Name, arg.Address)
	var i Locations
	err := row.Scan(&i.ID, &i.Name, &i.Address)
	return i, err
}

const createResourceType = `-- name: CreateResourceType :one
INSERT INTO resource_types (id, name)
VALUES ($1, $2)
RETURNING id, name
`

type CreateResourceTypeParams struct {
	ID   uuid.UUID
	Name string
}

func (q *Queries) CreateResourceType(ctx context.Context, db DBTX, arg CreateResourceTypeParams) (ResourceTypes, error) {
	row := db.QueryRow(ctx, createResourceType, arg.ID, arg.Name)
	var i ResourceTypes
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const createResource = `-- name: CreateResource :one
INSERT INTO resources (id, name, location_id, type_id)
VALUES ($1, $2, $3, $4)
RETURNING id, name, location_id, type_id
`

type CreateResourceParams struct {
	ID         uuid.UUID
	Name       string
	LocationID uuid.UUID
	TypeID     uuid.UUID
}

func (q *Queries) CreateResource(ctx context.Context, db DBTX, arg CreateResourceParams) (Resources, error) {
	row := db.QueryRow(ctx, createResource, arg.ID, arg.Name, arg.LocationID, arg.TypeID)
	var i Resources
	err := row.Scan(&i.ID, &i.Name, &i.LocationID, &i.TypeID)
	return i, err
}

const createTag = `-- name: CreateTag :one
INSERT INTO tags (id, name, resource_type_id)
VALUES ($1, $2, $3)
RETURNING id, name, resource_type_id
`

type CreateTagParams struct {
	ID             uuid.UUID
	Name           string
	ResourceTypeID uuid.UUID
}

func (q *Queries) CreateTag(ctx context.Context, db DBTX, arg CreateTagParams) (Tags, error) {
	row := db.QueryRow(ctx, createTag, arg.ID, arg.Name, arg.ResourceTypeID)
	var i Tags
	err := row.Scan(&i.ID, &i.Name, &i.ResourceTypeID)
	return i, err
}

const attachTag = `-- name: AttachTag :execrows
INSERT INTO resource_tags (resource_id, tag_id)
VALUES ($1, $2)
ON CONFLICT (resource_id, tag_id) DO NOTHING
`

type AttachTagParams struct {
	ResourceID uuid.UUID
	TagID      uuid.UUID
}

func (q *Queries) AttachTag(ctx context.Context, db DBTX, arg AttachTagParams) (int64, error) {
	result, err := db.Exec(ctx, attachTag, arg.ResourceID, arg.TagID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getLocation = `-- name: GetLocation :one
SELECT id, name, address FROM locations WHERE id = $1
`

func (q *Queries) GetLocation(ctx context.Context, db DBTX, id uuid.UUID) (Locations, error) {
	row := db.QueryRow(ctx, getLocation, id)
	var i Locations
	err := row.Scan(&i.ID, &i.Name, &i.Address)
	return i, err
}

const getResourceType = `-- name: GetResourceType :one
SELECT id, name FROM resource_types WHERE id = $1
`

func (q *Queries) GetResourceType(ctx context.Context, db DBTX, id uuid.UUID) (ResourceTypes, error) {
	row := db.QueryRow(ctx, getResourceType, id)
	var i ResourceTypes
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const getResource = `-- name: GetResource :one
SELECT id, name, location_id, type_id FROM resources WHERE id = $1
`

func (q *Queries) GetResource(ctx context.Context, db DBTX, id uuid.UUID) (Resources, error) {
	row := db.QueryRow(ctx, getResource, id)
	var i Resources
	err := row.Scan(&i.ID, &i.Name, &i.LocationID, &i.TypeID)
	return i, err
}

const getTag = `-- name: GetTag :one
SELECT id, name, resource_type_id FROM tags WHERE id = $1
`

func (q *Queries) GetTag(ctx context.Context, db DBTX, id uuid.UUID) (Tags, error) {
	row := db.QueryRow(ctx, getTag, id)
	var i Tags
	err := row.Scan(&i.ID, &i.Name, &i.ResourceTypeID)
	return i, err
}

const lockResource = `-- name: LockResource :one
SELECT id FROM resources WHERE id = $1 FOR NO KEY UPDATE
`

func (q *Queries) LockResource(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	row := db.QueryRow(ctx, lockResource, id)
	err := row.Scan(&id)
	return id, err
}

const listLocations = `-- name: ListLocations :many
SELECT id, name, address FROM locations ORDER BY id
`

func (q *Queries) ListLocations(ctx context.Context, db DBTX) ([]Locations, error) {
	rows, err := db.Query(ctx, listLocations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Locations
	for rows.Next() {
		var i Locations
		if err := rows.Scan(&i.ID, &i.Name, &i.Address); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listResourceTypes = `-- name: ListResourceTypes :many
SELECT id, name FROM resource_types ORDER BY id
`

func (q *Queries) ListResourceTypes(ctx context.Context, db DBTX) ([]ResourceTypes, error) {
	rows, err := db.Query(ctx, listResourceTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ResourceTypes
	for rows.Next() {
		var i ResourceTypes
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listTagsByType = `-- name: ListTagsByType :many
SELECT id, name, resource_type_id FROM tags WHERE resource_type_id = $1 ORDER BY id
`

func (q *Queries) ListTagsByType(ctx context.Context, db DBTX, resourceTypeID uuid.UUID) ([]Tags, error) {
	rows, err := db.Query(ctx, listTagsByType, resourceTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tags
	for rows.Next() {
		var i Tags
		if err := rows.Scan(&i.ID, &i.Name, &i.ResourceTypeID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getResourceDetail = `-- name: GetResourceDetail :one
SELECT r.id, r.name, r.location_id, l.name AS location_name, r.type_id, t.name AS type_name
FROM resources r
JOIN locations l ON l.id = r.location_id
JOIN resource_types t ON t.id = r.type_id
WHERE r.id = $1
`

type GetResourceDetailRow struct {
	ID           uuid.UUID
	Name         string
	LocationID   uuid.UUID
	LocationName string
	TypeID       uuid.UUID
	TypeName     string
}

func (q *Queries) GetResourceDetail(ctx context.Context, db DBTX, id uuid.UUID) (GetResourceDetailRow, error) {
	row := db.QueryRow(ctx, getResourceDetail, id)
	var i GetResourceDetailRow
	err := row.Scan(&i.ID, &i.Name, &i.LocationID, &i.LocationName, &i.TypeID, &i.TypeName)
	return i, err
}

type ListResourcesByLocationRow struct {
	ID           uuid.UUID
	Name         string
	LocationID   uuid.UUID
	LocationName string
	TypeID       uuid.UUID
	TypeName     string
}

const listResourcesByLocation = `-- name: ListResourcesByLocation :many
SELECT r.id, r.name, r.location_id, l.name AS location_name, r.type_id, t.name AS type_name
FROM resources r
JOIN locations l ON l.id = r.location_id
JOIN resource_types t ON t.id = r.type_id
WHERE r.location_id = $1
ORDER BY r.id
`

func (q *Queries) ListResourcesByLocation(ctx context.Context, db DBTX, locationID uuid.UUID) ([]ListResourcesByLocationRow, error) {
	rows, err := db.Query(ctx, listResourcesByLocation, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListResourcesByLocationRow
	for rows.Next() {
		var i ListResourcesByLocationRow
		if err := rows.Scan(&i.ID, &i.Name, &i.LocationID, &i.LocationName, &i.TypeID, &i.TypeName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type ListResourcesByTypeRow struct {
	ID           uuid.UUID
	Name         string
	LocationID   uuid.UUID
	LocationName string
	TypeID       uuid.UUID
	TypeName     string
}

const listResourcesByType = `-- name: ListResourcesByType :many
SELECT r.id, r.name, r.location_id, l.name AS location_name, r.type_id, t.name AS type_name
FROM resources r
JOIN locations l ON l.id = r.location_id
JOIN resource_types t ON t.id = r.type_id
WHERE r.type_id = $1
ORDER BY r.id
`

func (q *Queries) ListResourcesByType(ctx context.Context, db DBTX, typeID uuid.UUID) ([]ListResourcesByTypeRow, error) {
	rows, err := db.Query(ctx, listResourcesByType, typeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListResourcesByTypeRow
	for rows.Next() {
		var i ListResourcesByTypeRow
		if err := rows.Scan(&i.ID, &i.Name, &i.LocationID, &i.LocationName, &i.TypeID, &i.TypeName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type ListResourcesByTagRow struct {
	ID           uuid.UUID
	Name         string
	LocationID   uuid.UUID
	LocationName string
	TypeID       uuid.UUID
	TypeName     string
}

const listResourcesByTag = `-- name: ListResourcesByTag :many
SELECT r.id, r.name, r.location_id, l.name AS location_name, r.type_id, t.name AS type_name
FROM resources r
JOIN resource_tags rt ON rt.resource_id = r.id
JOIN locations l ON l.id = r.location_id
JOIN resource_types t ON t.id = r.type_id
WHERE rt.tag_id = $1
ORDER BY r.id
`

func (q *Queries) ListResourcesByTag(ctx context.Context, db DBTX, tagID uuid.UUID) ([]ListResourcesByTagRow, error) {
	rows, err := db.Query(ctx, listResourcesByTag, tagID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListResourcesByTagRow
	for rows.Next() {
		var i ListResourcesByTagRow
		if err := rows.Scan(&i.ID, &i.Name, &i.LocationID, &i.LocationName, &i.TypeID, &i.TypeName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listTagsForResource = `-- name: ListTagsForResource :many
SELECT t.id, t.name, t.resource_type_id
FROM tags t
JOIN resource_tags rt ON rt.tag_id = t.id
WHERE rt.resource_id = $1
ORDER BY t.id
`

func (q *Queries) ListTagsForResource(ctx context.Context, db DBTX, resourceID uuid.UUID) ([]Tags, error) {
	rows, err := db.Query(ctx, listTagsForResource, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tags
	for rows.Next() {
		var i Tags
		if err := rows.Scan(&i.ID, &i.Name, &i.ResourceTypeID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
