//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/pricing"
	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/repository"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/errs"
	"stay-ledger/tests/common/builder"
	repositorymock "stay-ledger/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlstore.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectDupCode bool
	}{
		{
			name: "success: booking and lines inserted",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlstore.DBTX) {
				mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.CreateBookingParams) error {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, b.Code(), arg.Code)
						assert.Equal(t, "pending", arg.Status)
						assert.Equal(t, "CZK", arg.Currency)
						assert.Equal(t, arg.AccommodationAmount+arg.ServicesAmount, arg.TotalAmount)
						assert.True(t, arg.CheckIn.Valid)
						assert.False(t, arg.Note.Valid)
						return nil
					})
				mock.EXPECT().CreateBookingServices(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, lines []sqlstore.BookingServices) error {
						require.Len(t, lines, 2)
						assert.Equal(t, int32(1), lines[0].Position)
						assert.Equal(t, int32(2), lines[1].Position)
						assert.Equal(t, "per_night", lines[0].PriceType)
						assert.Equal(t, b.ID(), lines[1].BookingID)
						return nil
					})
			},
		},
		{
			name: "error: duplicate booking code is marked",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlstore.DBTX) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: repository.ConstraintBookingCode}
				mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
			expectDupCode: true,
		},
		{
			name: "error: duplicate on another constraint is not a code collision",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlstore.DBTX) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_pkey"}
				mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: unknown property violates foreign key",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlstore.DBTX) {
				mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).Return(&pgconn.PgError{Code: "23503"})
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: line insert fails",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlstore.DBTX) {
				mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).Return(nil)
				mock.EXPECT().CreateBookingServices(ctx, db, gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB, discardLogger())

			b, err := builder.NewBookingBuilder().
				WithLine("Breakfast", pricing.PerNight, 15000, 2).
				WithLine("Sauna", pricing.Fixed, 80000, 1).
				BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.Create(ctx, b)

			if !tc.expectedError {
				assert.NoError(t, actualError)
				return
			}
			require.Error(t, actualError)
			assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			assert.Equal(t, tc.expectDupCode, errs.Is(actualError, errs.ErrDuplicateBookingCode))
		})
	}
}
