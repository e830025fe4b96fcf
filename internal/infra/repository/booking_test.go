//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"place-booking/internal/domain/booking"
	"place-booking/internal/infra"
	"place-booking/internal/infra/repository"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/tests/common/builder"
	repositorymock "place-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, *builder.BookingBuilder, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking inserted",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *builder.BookingBuilder, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: overlapping active booking rejected by exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *builder.BookingBuilder, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, pgErr)
			},
			expectKind: infra.KindExclusionViolated,
		},
		{
			name: "error: same triple rejected by unique constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *builder.BookingBuilder, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_resource_slot_key"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, pgErr)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: unknown resource",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *builder.BookingBuilder, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "bookings_resource_id_fkey"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, pgErr)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *builder.BookingBuilder, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder()
			domainBooking, err := b.BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.Create(ctx, domainBooking)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

func TestBookingRepository_CreateParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	b := builder.NewBookingBuilder()
	domainBooking, err := b.BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
			assert.Equal(t, domainBooking.ID(), arg.ID)
			assert.Equal(t, b.ResourceID, arg.ResourceID)
			assert.Equal(t, b.Start, arg.StartTime.Time)
			assert.Equal(t, b.End, arg.EndTime.Time)
			assert.Equal(t, "active", arg.Status)
			return sqlc.Bookings{}, nil
		})

	require.NoError(t, repo.Create(ctx, domainBooking))
}

// =============================================================================
// Lock and Lookup Tests
// =============================================================================

func TestBookingRepository_LockResource(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: lock taken"},
		{name: "error: resource missing", returnErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: lock wait timed out", returnErr: &pgconn.PgError{Code: "55P03"}, expectKind: infra.KindTimeout},
		{name: "error: deadlock", returnErr: &pgconn.PgError{Code: "40P01"}, expectKind: infra.KindRetryable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().LockResource(ctx, mockDB, resourceID).Return(resourceID, tc.returnErr)

			err := repo.LockResource(ctx, resourceID)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRepository_SlotTaken(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		row       sqlc.Bookings
		returnErr error
		want      bool
		wantErr   bool
	}{
		{name: "taken", row: b.BuildInfra(), want: true},
		{name: "free", returnErr: pgx.ErrNoRows, want: false},
		{name: "database error", returnErr: errors.New("boom"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().FindBookingBySlot(ctx, mockDB, gomock.Any()).Return(tc.row, tc.returnErr)

			got, err := repo.SlotTaken(ctx, b.ResourceID, slot)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBookingRepository_FindOverlapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	existing := builder.NewBookingBuilder()
	slot, err := booking.NewTimeSlot(builder.At(9, 30), builder.At(10, 30))
	require.NoError(t, err)
	exclude := uuid.New()

	mockQueries.EXPECT().FindOverlappingActiveBookings(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.FindOverlappingActiveBookingsParams) ([]sqlc.Bookings, error) {
			assert.Equal(t, existing.ResourceID, arg.ResourceID)
			assert.True(t, arg.ExcludeID.Valid)
			assert.Equal(t, [16]byte(exclude), arg.ExcludeID.Bytes)
			return []sqlc.Bookings{existing.BuildInfra()}, nil
		})

	got, err := repo.FindOverlapping(ctx, existing.ResourceID, slot, &exclude)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, existing.ID, got[0].ID())
}

// =============================================================================
// Update Tests
// =============================================================================

func TestBookingRepository_Updates(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		call       func(*repository.BookingRepository, *booking.Booking) error
		setupMock  func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: status updated",
			call: func(r *repository.BookingRepository, b *booking.Booking) error { return r.UpdateStatus(ctx, b) },
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: status update hit no row",
			call: func(r *repository.BookingRepository, b *booking.Booking) error { return r.UpdateStatus(ctx, b) },
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "success: slot updated",
			call: func(r *repository.BookingRepository, b *booking.Booking) error { return r.UpdateSlot(ctx, b) },
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingSlot(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: slot update hit no active row",
			call: func(r *repository.BookingRepository, b *booking.Booking) error { return r.UpdateSlot(ctx, b) },
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingSlot(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: new slot overlaps another booking",
			call: func(r *repository.BookingRepository, b *booking.Booking) error { return r.UpdateSlot(ctx, b) },
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingSlot(ctx, tx, gomock.Any()).Return(int64(0), &pgconn.PgError{Code: "23P01"})
			},
			expectKind: infra.KindExclusionViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			err := tc.call(repo, builder.NewBookingBuilder().MustReconstruct())
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
