package converter

import (
	"place-booking/internal/domain/taxonomy"
	sqlc "place-booking/internal/infra/sqlc/generated"
)

func LocationToCreateParams(l *taxonomy.Location) sqlc.CreateLocationParams {
	return sqlc.CreateLocationParams{ID: l.ID(), Name: l.Name(), Address: l.Address()}
}

func ResourceTypeToCreateParams(t *taxonomy.ResourceType) sqlc.CreateResourceTypeParams {
	return sqlc.CreateResourceTypeParams{ID: t.ID(), Name: t.Name()}
}

func ResourceToCreateParams(r *taxonomy.Resource) sqlc.CreateResourceParams {
	return sqlc.CreateResourceParams{
		ID:         r.ID(),
		Name:       r.Name(),
		LocationID: r.LocationID(),
		TypeID:     r.TypeID(),
	}
}

func TagToCreateParams(t *taxonomy.Tag) sqlc.CreateTagParams {
	return sqlc.CreateTagParams{ID: t.ID(), Name: t.Name(), ResourceTypeID: t.ResourceTypeID()}
}

func ResourceFromRow(row sqlc.Resources) *taxonomy.Resource {
	return taxonomy.ReconstructResource(row.ID, row.Name, row.LocationID, row.TypeID)
}

func TagFromRow(row sqlc.Tags) *taxonomy.Tag {
	return taxonomy.ReconstructTag(row.ID, row.Name, row.ResourceTypeID)
}
