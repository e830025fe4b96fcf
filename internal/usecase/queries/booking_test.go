//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"place-booking/internal/domain/booking"
	"place-booking/internal/infra"
	"place-booking/internal/pkg/errs"
	"place-booking/internal/usecase/queries"
	"place-booking/tests/common/builder"
	queriesmock "place-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		view := builder.NewBookingBuilder().BuildView()
		repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		got, err := queries.NewBookingQueries(repo).GetBooking(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		id := uuid.New()
		repo.EXPECT().FindByID(ctx, id).Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking not found"))

		_, err := queries.NewBookingQueries(repo).GetBooking(ctx, id)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestBookingQueries_ListBookingsForResource(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	from, to := builder.At(9, 0), builder.At(12, 0)

	testCases := []struct {
		name      string
		from, to  *time.Time
		expectErr bool
	}{
		{name: "no range"},
		{name: "closed range", from: &from, to: &to},
		{name: "open end", from: &from},
		{name: "inverted range", from: &to, to: &from, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockBookingViewRepo(ctrl)
			if !tc.expectErr {
				repo.EXPECT().FindByResource(ctx, resourceID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, window booking.TimeRange) ([]*queries.BookingView, error) {
						assert.Equal(t, tc.from, window.From)
						assert.Equal(t, tc.to, window.To)
						return nil, nil
					})
			}

			_, err := queries.NewBookingQueries(repo).ListBookingsForResource(ctx, resourceID, tc.from, tc.to)
			if tc.expectErr {
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}
