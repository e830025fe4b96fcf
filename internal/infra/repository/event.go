package repository

import (
	"context"

	"place-booking/internal/infra"
	"place-booking/internal/infra/repository/converter"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/usecase/shared"
)

//go:generate mockgen -source=event.go -destination=../../../tests/mock/repository/event.go -package=repositorymock

type EventWriteQueries interface {
	InsertBookingEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingEventParams) error
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Append(ctx context.Context, event shared.BookingEvent) error {
	if err := r.queries.InsertBookingEvent(ctx, r.db, converter.EventToInsertParams(event)); err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}
