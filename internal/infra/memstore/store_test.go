//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"place-booking/internal/domain/booking"
	"place-booking/internal/domain/user"
	"place-booking/internal/infra/memstore"
	"place-booking/internal/pkg/clock"
	"place-booking/internal/pkg/config"
	"place-booking/internal/pkg/errs"
	"place-booking/internal/usecase/commands"
	"place-booking/internal/usecase/queries"
	"place-booking/internal/usecase/shared"
	"place-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	bookings commands.BookingCommands
	taxonomy commands.TaxonomyCommands
	reads    queries.BookingQueries
	catalog  queries.TaxonomyQueries

	resourceID uuid.UUID
	typeID     uuid.UUID
}

func newFixture(t *testing.T, mutate ...func(*config.Config)) *fixture {
	t.Helper()
	cfg := config.NewTestConfig()
	for _, m := range mutate {
		m(&cfg)
	}

	store := memstore.New(cfg)
	clk := clock.NewMockClock(builder.At(7, 0))
	f := &fixture{
		store:    store,
		clock:    clk,
		bookings: commands.NewBookingUseCase(store, commands.NewConflictChecker(), clk),
		taxonomy: commands.NewTaxonomyUseCase(store),
		reads:    queries.NewBookingQueries(store.BookingViews()),
		catalog:  queries.NewTaxonomyQueries(store.TaxonomyViews()),
	}

	ctx := context.Background()
	loc, err := f.taxonomy.CreateLocation(ctx, "HQ", "1 Main Street")
	require.NoError(t, err)
	rt, err := f.taxonomy.CreateResourceType(ctx, "Meeting room")
	require.NoError(t, err)
	res, err := f.taxonomy.CreateResource(ctx, "Room A", loc.ID(), rt.ID())
	require.NoError(t, err)
	f.resourceID, f.typeID = res.ID(), rt.ID()
	return f
}

func (f *fixture) book(t *testing.T, start, end time.Time) *booking.Booking {
	t.Helper()
	b, err := f.bookings.CreateBooking(context.Background(), uuid.New(), f.resourceID, start, end)
	require.NoError(t, err)
	return b
}

func TestCreateBooking_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	created, err := f.bookings.CreateBooking(ctx, userID, f.resourceID, builder.At(9, 0), builder.At(10, 0))
	require.NoError(t, err)

	got, err := f.reads.ListBookingsForResource(ctx, f.resourceID, nil, nil)
	require.NoError(t, err)
	want := []*queries.BookingView{{
		ID:           created.ID(),
		UserID:       userID,
		ResourceID:   f.resourceID,
		ResourceName: "Room A",
		StartTime:    builder.At(9, 0),
		EndTime:      builder.At(10, 0),
		Status:       "active",
		CreatedAt:    builder.At(7, 0),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bookings mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateBooking_SubMicrosecondInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.bookings.CreateBooking(ctx, uuid.New(), f.resourceID,
		builder.At(9, 0).Add(700*time.Nanosecond), builder.At(10, 0).Add(300*time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, builder.At(9, 0), created.Start())
	assert.Equal(t, builder.At(10, 0), created.End())

	got, err := f.reads.GetBooking(ctx, created.ID())
	require.NoError(t, err)
	assert.True(t, got.StartTime.Equal(created.Start()))
	assert.True(t, got.EndTime.Equal(created.End()))

	_, err = f.bookings.CreateBooking(ctx, uuid.New(), f.resourceID,
		builder.At(12, 0).Add(100*time.Nanosecond), builder.At(12, 0).Add(900*time.Nanosecond))
	assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
}

func TestCreateBooking_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		wantKind   error
	}{
		{name: "touching before", start: builder.At(8, 0), end: builder.At(9, 0)},
		{name: "touching after", start: builder.At(10, 0), end: builder.At(11, 0)},
		{name: "overlap by one minute at the end", start: builder.At(9, 59), end: builder.At(11, 0), wantKind: errs.ErrConflict},
		{name: "overlap by one minute at the start", start: builder.At(8, 0), end: builder.At(9, 1), wantKind: errs.ErrConflict},
		{name: "contained", start: builder.At(9, 15), end: builder.At(9, 45), wantKind: errs.ErrConflict},
		{name: "enclosing", start: builder.At(8, 0), end: builder.At(11, 0), wantKind: errs.ErrConflict},
		{name: "identical", start: builder.At(9, 0), end: builder.At(10, 0), wantKind: errs.ErrConflict},
		{name: "inverted", start: builder.At(12, 0), end: builder.At(11, 0), wantKind: errs.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.book(t, builder.At(9, 0), builder.At(10, 0))

			_, err := f.bookings.CreateBooking(context.Background(), uuid.New(), f.resourceID, tt.start, tt.end)
			if tt.wantKind == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestCreateBooking_UnknownResource(t *testing.T) {
	f := newFixture(t)
	_, err := f.bookings.CreateBooking(context.Background(), uuid.New(), uuid.New(), builder.At(9, 0), builder.At(10, 0))
	assert.ErrorIs(t, err, commands.ErrResourceNotFound)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestCreateBooking_CancelledSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, builder.At(9, 0), builder.At(10, 0))
	_, err := f.bookings.CancelBooking(ctx, b.ID(), commands.Actor{UserID: b.UserID(), Role: user.RoleViewer})
	require.NoError(t, err)

	t.Run("exact triple stays reserved", func(t *testing.T) {
		_, err := f.bookings.CreateBooking(ctx, uuid.New(), f.resourceID, builder.At(9, 0), builder.At(10, 0))
		assert.ErrorIs(t, err, commands.ErrSlotTaken)
	})

	t.Run("overlapping slot is free again", func(t *testing.T) {
		_, err := f.bookings.CreateBooking(ctx, uuid.New(), f.resourceID, builder.At(9, 0), builder.At(9, 30))
		assert.NoError(t, err)
	})
}

func TestCreateBooking_Concurrent(t *testing.T) {
	f := newFixture(t)
	const workers = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// Every request overlaps 09:00-10:00, no two share a triple.
			_, err := f.bookings.CreateBooking(context.Background(), uuid.New(), f.resourceID,
				builder.At(9, 0).Add(time.Duration(i)*time.Minute), builder.At(10, 0))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errs.Is(err, errs.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	got, err := f.reads.ListBookingsForResource(context.Background(), f.resourceID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCancelBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, builder.At(9, 0), builder.At(10, 0))
	owner := commands.Actor{UserID: b.UserID(), Role: user.RoleViewer}

	t.Run("stranger is forbidden", func(t *testing.T) {
		_, err := f.bookings.CancelBooking(ctx, b.ID(), commands.Actor{UserID: uuid.New(), Role: user.RoleOperator})
		assert.ErrorIs(t, err, booking.ErrNotOwner)
	})

	t.Run("owner cancels", func(t *testing.T) {
		got, err := f.bookings.CancelBooking(ctx, b.ID(), owner)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, got.Status())
	})

	t.Run("second cancel reports already cancelled and changes nothing", func(t *testing.T) {
		before, err := f.reads.GetBooking(ctx, b.ID())
		require.NoError(t, err)

		_, err = f.bookings.CancelBooking(ctx, b.ID(), owner)
		assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled))

		after, err := f.reads.GetBooking(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("admin may cancel any booking", func(t *testing.T) {
		other := f.book(t, builder.At(11, 0), builder.At(12, 0))
		_, err := f.bookings.CancelBooking(ctx, other.ID(), commands.Actor{UserID: uuid.New(), Role: user.RoleAdmin})
		assert.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := f.bookings.CancelBooking(ctx, uuid.New(), owner)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestRescheduleBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("moves in place", func(t *testing.T) {
		f := newFixture(t)
		b := f.book(t, builder.At(9, 0), builder.At(10, 0))
		f.clock.Add(time.Hour)

		moved, err := f.bookings.RescheduleBooking(ctx, b.ID(), builder.At(9, 30), builder.At(10, 30),
			commands.Actor{UserID: b.UserID(), Role: user.RoleViewer})
		require.NoError(t, err)
		assert.Equal(t, b.ID(), moved.ID())
		assert.Equal(t, b.CreatedAt(), moved.CreatedAt())
		assert.Equal(t, builder.At(9, 30), moved.Start())
	})

	t.Run("conflict leaves the original untouched", func(t *testing.T) {
		f := newFixture(t)
		b := f.book(t, builder.At(9, 0), builder.At(10, 0))
		f.book(t, builder.At(11, 0), builder.At(12, 0))

		before, err := f.reads.GetBooking(ctx, b.ID())
		require.NoError(t, err)

		_, err = f.bookings.RescheduleBooking(ctx, b.ID(), builder.At(11, 30), builder.At(12, 30),
			commands.Actor{UserID: b.UserID(), Role: user.RoleViewer})
		assert.True(t, errs.Is(err, errs.ErrConflict))

		after, err := f.reads.GetBooking(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Len(t, f.store.Events(), 2)
	})

	t.Run("cancelled booking cannot move", func(t *testing.T) {
		f := newFixture(t)
		b := f.book(t, builder.At(9, 0), builder.At(10, 0))
		owner := commands.Actor{UserID: b.UserID(), Role: user.RoleViewer}
		_, err := f.bookings.CancelBooking(ctx, b.ID(), owner)
		require.NoError(t, err)

		_, err = f.bookings.RescheduleBooking(ctx, b.ID(), builder.At(13, 0), builder.At(14, 0), owner)
		assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled))
	})

	t.Run("overlap with its own old slot is allowed", func(t *testing.T) {
		f := newFixture(t)
		b := f.book(t, builder.At(9, 0), builder.At(10, 0))
		_, err := f.bookings.RescheduleBooking(ctx, b.ID(), builder.At(9, 0), builder.At(11, 0),
			commands.Actor{UserID: b.UserID(), Role: user.RoleViewer})
		assert.NoError(t, err)
	})
}

func TestWithin_Timeout(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Booking.TxTimeout = 50 * time.Millisecond })

	holding := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Bookings().LockResource(ctx, f.resourceID); err != nil {
				return err
			}
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	_, err := f.bookings.CreateBooking(context.Background(), uuid.New(), f.resourceID, builder.At(9, 0), builder.At(10, 0))
	close(release)
	<-done

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrTransient), "got %v", err)
}

func TestWithin_RollbackOnError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")

	b := builder.NewBookingBuilder().WithResourceID(f.resourceID).MustReconstruct()
	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = f.reads.GetBooking(context.Background(), b.ID())
	assert.ErrorIs(t, err, queries.ErrBookingNotFound)
}

func TestListBookingsForUser_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	var ids []uuid.UUID
	for h := 9; h < 12; h++ {
		b, err := f.bookings.CreateBooking(ctx, userID, f.resourceID, builder.At(h, 0), builder.At(h+1, 0))
		require.NoError(t, err)
		ids = append([]uuid.UUID{b.ID()}, ids...)
		f.clock.Add(time.Minute)
	}

	got, err := f.reads.ListBookingsForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, v := range got {
		assert.Equal(t, ids[i], v.ID)
	}
}

func TestListBookingsForResource_Window(t *testing.T) {
	f := newFixture(t)
	f.book(t, builder.At(8, 0), builder.At(9, 0))
	mid := f.book(t, builder.At(10, 0), builder.At(11, 0))
	f.book(t, builder.At(12, 0), builder.At(13, 0))

	from, to := builder.At(9, 0), builder.At(12, 0)
	got, err := f.reads.ListBookingsForResource(context.Background(), f.resourceID, &from, &to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mid.ID(), got[0].ID)
}

func TestAttachTag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tag, err := f.taxonomy.CreateTag(ctx, "projector", f.typeID)
	require.NoError(t, err)

	t.Run("attach is idempotent", func(t *testing.T) {
		require.NoError(t, f.taxonomy.AttachTag(ctx, f.resourceID, tag.ID()))
		require.NoError(t, f.taxonomy.AttachTag(ctx, f.resourceID, tag.ID()))

		detail, err := f.catalog.GetResource(ctx, f.resourceID)
		require.NoError(t, err)
		require.Len(t, detail.Tags, 1)
		assert.Equal(t, tag.ID(), detail.Tags[0].ID)

		byTag, err := f.catalog.ListResourcesByTag(ctx, tag.ID())
		require.NoError(t, err)
		require.Len(t, byTag, 1)
		assert.Equal(t, f.resourceID, byTag[0].ID)
	})

	t.Run("tag of another type is rejected", func(t *testing.T) {
		other, err := f.taxonomy.CreateResourceType(ctx, "Projector")
		require.NoError(t, err)
		foreign, err := f.taxonomy.CreateTag(ctx, "hdmi", other.ID())
		require.NoError(t, err)

		err = f.taxonomy.AttachTag(ctx, f.resourceID, foreign.ID())
		assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
	})

	t.Run("unknown tag", func(t *testing.T) {
		err := f.taxonomy.AttachTag(ctx, f.resourceID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrTagNotFound)
	})
}

func TestTaxonomy_DuplicateNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.taxonomy.CreateResourceType(ctx, "Meeting room")
	assert.True(t, errs.Is(err, errs.ErrDuplicateName))

	_, err = f.taxonomy.CreateTag(ctx, "wifi", uuid.New())
	assert.ErrorIs(t, err, commands.ErrResourceTypeNotFound)
}

func TestTaxonomy_RepeatedLocationAndResourceNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.taxonomy.CreateLocation(ctx, "HQ", "2 Other Street")
	require.NoError(t, err)

	res, err := f.catalog.GetResource(ctx, f.resourceID)
	require.NoError(t, err)

	_, err = f.taxonomy.CreateResource(ctx, "Room A", res.LocationID, f.typeID)
	require.NoError(t, err)
	_, err = f.taxonomy.CreateResource(ctx, "Room A", other.ID(), f.typeID)
	require.NoError(t, err)

	byType, err := f.catalog.ListResourcesByType(ctx, f.typeID)
	require.NoError(t, err)
	assert.Len(t, byType, 3)
}

func TestEvents_OnePerChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, builder.At(9, 0), builder.At(10, 0))
	owner := commands.Actor{UserID: b.UserID(), Role: user.RoleViewer}

	_, err := f.bookings.RescheduleBooking(ctx, b.ID(), builder.At(10, 0), builder.At(11, 0), owner)
	require.NoError(t, err)
	_, err = f.bookings.CancelBooking(ctx, b.ID(), owner)
	require.NoError(t, err)

	var types []string
	for _, e := range f.store.Events() {
		assert.Equal(t, b.ID(), e.BookingID)
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{shared.EventBookingCreated, shared.EventBookingRescheduled, shared.EventBookingCancelled}, types)
}
