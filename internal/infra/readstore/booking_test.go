//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/domain/pricing"
	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/readstore"
	"stay-ledger/tests/common/builder"
	readstoremock "stay-ledger/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	folioID := uuid.New()

	b := builder.NewBookingBuilder().
		WithLine("Breakfast", pricing.PerNight, 15000, 2).
		WithNote("late arrival")

	t.Run("success: builds the view with lines and folio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingReadStore(mockQueries, mockDB, discardLogger())

		row := b.BuildViewRow(id)
		row.FolioID = pgtype.UUID{Bytes: folioID, Valid: true}
		row.FolioStatus = pgtype.Text{String: "open", Valid: true}
		mockQueries.EXPECT().GetBookingViewByID(ctx, mockDB, id).Return(row, nil)
		mockQueries.EXPECT().ListBookingServices(ctx, mockDB, id).Return(b.BuildInfraLines(id), nil)

		view, err := store.FindByID(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, id, view.ID)
		assert.Equal(t, b.Code, view.Code)
		assert.Equal(t, "Chata Pod Lesem", view.PropertyName)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, "Pending", view.StatusLabel)
		assert.Equal(t, money.New(750000, money.CZK), view.Accommodation)
		assert.Equal(t, money.New(90000, money.CZK), view.Services)
		assert.Equal(t, money.New(840000, money.CZK), view.Total)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "per_night", view.Lines[0].PriceType)
		assert.Equal(t, money.New(90000, money.CZK), view.Lines[0].LineTotal)
		require.NotNil(t, view.FolioID)
		assert.Equal(t, folioID, *view.FolioID)
		assert.Equal(t, "open", view.FolioStatus)
		assert.Equal(t, "late arrival", view.Note)
	})

	t.Run("booking without folio has nil folio id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingReadStore(mockQueries, mockDB, discardLogger())

		mockQueries.EXPECT().GetBookingViewByID(ctx, mockDB, id).Return(b.BuildViewRow(id), nil)
		mockQueries.EXPECT().ListBookingServices(ctx, mockDB, id).Return(nil, nil)

		view, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, view.FolioID)
		assert.Empty(t, view.Lines)
	})

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockBookingViewQueries, *mockDBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, db *mockDBTX) {
				mock.EXPECT().GetBookingViewByID(ctx, db, id).Return(b.BuildViewRow(uuid.Nil), pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: lines query fails",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, db *mockDBTX) {
				mock.EXPECT().GetBookingViewByID(ctx, db, id).Return(b.BuildViewRow(id), nil)
				mock.EXPECT().ListBookingServices(ctx, db, id).Return(nil, errors.New("timeout"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewBookingReadStore(mockQueries, mockDB, discardLogger())
			tc.setupMock(mockQueries, mockDB)

			view, err := store.FindByID(ctx, id)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			assert.Nil(t, view)
		})
	}
}

func TestBookingCodeStore_Exists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBookingCodeQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewBookingCodeStore(mockQueries, mockDB, discardLogger())

	mockQueries.EXPECT().BookingCodeExists(ctx, mockDB, "BK-TAKEN1").Return(true, nil)
	mockQueries.EXPECT().BookingCodeExists(ctx, mockDB, "BK-FREE22").Return(false, nil)
	mockQueries.EXPECT().BookingCodeExists(ctx, mockDB, "BK-BROKEN").Return(false, errors.New("conn refused"))

	exists, err := store.Exists(ctx, "BK-TAKEN1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "BK-FREE22")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Exists(ctx, "BK-BROKEN")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
