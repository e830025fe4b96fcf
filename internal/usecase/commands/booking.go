package commands

import (
	"context"
	"time"

	"place-booking/internal/domain/booking"
	"place-booking/internal/domain/user"
	"place-booking/internal/infra"
	"place-booking/internal/pkg/clock"
	"place-booking/internal/pkg/errs"
	"place-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

var (
	ErrResourceNotFound = errs.Mark(errs.New("resource not found"), errs.ErrNotFound)
	ErrBookingNotFound  = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
)

var tracer = otel.Tracer("place-booking/usecase/commands")

// Actor is the (currentUserId, currentUserRole) pair supplied by the auth
// collaborator. It is trusted as given.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID, resourceID uuid.UUID, start, end time.Time) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor Actor) (*booking.Booking, error)
	RescheduleBooking(ctx context.Context, bookingID uuid.UUID, start, end time.Time, actor Actor) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	checker *ConflictChecker
	clock   clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, checker *ConflictChecker, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, checker: checker, clock: clk}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, userID, resourceID uuid.UUID, start, end time.Time) (*booking.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.CreateBooking", trace.WithAttributes(
		attribute.String("booking.resource_id", resourceID.String()),
	))
	defer span.End()

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, endSpan(span, err)
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		if derr := repo.LockResource(ctx, resourceID); derr != nil {
			return notFoundAs(derr, ErrResourceNotFound)
		}
		if derr := uc.checker.Check(ctx, repo, resourceID, slot, nil); derr != nil {
			return derr
		}

		b, derr := booking.NewBooking(userID, resourceID, slot, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = repo.Create(ctx, b); derr != nil {
			return derr
		}
		if derr = uc.appendEvent(ctx, tx, shared.EventBookingCreated, b); derr != nil {
			return derr
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, endSpan(span, surface(err, errs.ErrConflict))
	}

	span.SetAttributes(attribute.String("booking.id", created.ID().String()))
	return created, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor Actor) (*booking.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.CancelBooking", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
	))
	defer span.End()

	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		b, derr := repo.GetForUpdate(ctx, bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}
		if derr = b.Cancel(actor.UserID, actor.Role.IsElevated()); derr != nil {
			return derr
		}
		if derr = repo.UpdateStatus(ctx, b); derr != nil {
			return derr
		}
		if derr = uc.appendEvent(ctx, tx, shared.EventBookingCancelled, b); derr != nil {
			return derr
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, endSpan(span, surface(err, errs.ErrConflict))
	}
	return cancelled, nil
}

func (uc *bookingUseCaseImpl) RescheduleBooking(ctx context.Context, bookingID uuid.UUID, start, end time.Time, actor Actor) (*booking.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.RescheduleBooking", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
	))
	defer span.End()

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, endSpan(span, err)
	}

	var moved *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		b, derr := repo.GetForUpdate(ctx, bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}
		if derr = b.AuthorizeChange(actor.UserID, actor.Role.IsElevated()); derr != nil {
			return derr
		}
		if !b.IsActive() {
			return booking.ErrAlreadyCancelled
		}
		if b.TimeSlot().Equal(slot) {
			moved = b
			return nil
		}

		if derr = repo.LockResource(ctx, b.ResourceID()); derr != nil {
			return notFoundAs(derr, ErrResourceNotFound)
		}
		id := b.ID()
		if derr = uc.checker.Check(ctx, repo, b.ResourceID(), slot, &id); derr != nil {
			return derr
		}

		if derr = b.Reschedule(slot); derr != nil {
			return derr
		}
		if derr = repo.UpdateSlot(ctx, b); derr != nil {
			return derr
		}
		if derr = uc.appendEvent(ctx, tx, shared.EventBookingRescheduled, b); derr != nil {
			return derr
		}
		moved = b
		return nil
	})
	if err != nil {
		return nil, endSpan(span, surface(err, errs.ErrConflict))
	}
	return moved, nil
}

func (uc *bookingUseCaseImpl) appendEvent(ctx context.Context, tx shared.Tx, eventType string, b *booking.Booking) error {
	event, err := shared.NewBookingEvent(eventType, b, uc.clock.Now())
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	return tx.Events().Append(ctx, event)
}

// notFoundAs replaces a bare not-found from the store with a named sentinel
// so callers can tell which entity was missing.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.WithSecondary(sentinel, err)
	}
	return err
}

func endSpan(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
