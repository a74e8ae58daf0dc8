//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/invoice"
	"stay-ledger/internal/domain/lifecycle"
	"stay-ledger/internal/domain/payment"
	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/handler/api"
	resdto "stay-ledger/internal/handler/dto/response"
	"stay-ledger/internal/pkg/errs"
	"stay-ledger/internal/usecase/commands"
	"stay-ledger/internal/usecase/queries"
	"stay-ledger/tests/common/httptest"
	commandsmock "stay-ledger/tests/mock/commands"
	queriesmock "stay-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TransitionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTransitionCommands
}

func (s *TransitionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTransitionCommands(s.mockCtrl)
	h := api.NewTransitionHandler(s.mockCommands)

	s.router.POST("/api/bookings/:id/transitions", h.Transition(booking.Domain))
	s.router.POST("/api/invoices/:id/transitions", h.Transition(invoice.Domain))
}

func (s *TransitionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTransitionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransitionHandlerTestSuite))
}

func (s *TransitionHandlerTestSuite) TestTransition() {
	id := uuid.New()

	s.Run("success: returns the applied transition", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), commands.TransitionParams{
			Domain:   booking.Domain,
			EntityID: id,
			To:       "confirmed",
		}).Return(&commands.TransitionResult{
			Domain:   booking.Domain,
			EntityID: id,
			From:     booking.StatusPending,
			To:       booking.StatusConfirmed,
			Changed:  true,
			Label:    "Confirmed",
			Next:     []sm.State{booking.StatusCheckedIn, booking.StatusCancelled, booking.StatusNoShow},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+id.String()+"/transitions", map[string]string{"to": "confirmed"})

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("booking", body.Domain)
		s.Equal("pending", body.From)
		s.Equal("confirmed", body.To)
		s.True(body.Changed)
		s.Equal([]string{"checked_in", "cancelled", "no_show"}, body.Next)
	})

	s.Run("success: repeated transition reports no change", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(&commands.TransitionResult{
			Domain:   invoice.Domain,
			EntityID: id,
			From:     invoice.StatusPaid,
			To:       invoice.StatusPaid,
			Label:    "Paid",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/invoices/"+id.String()+"/transitions", map[string]string{"to": "paid"})

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Changed)
		s.NotNil(body.Next)
		s.Empty(body.Next)
	})

	s.Run("error: 400 Bad Request on missing target", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+id.String()+"/transitions", map[string]string{})
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidRequest)
	})

	s.Run("error: 400 Bad Request on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/42/transitions", map[string]string{"to": "confirmed"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidRequest)
	})

	s.Run("error: 422 on a forbidden transition", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil, &sm.InvalidTransitionError{
			Domain: booking.Domain,
			From:   booking.StatusCheckedIn,
			To:     booking.StatusCancelled,
		})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+id.String()+"/transitions", map[string]string{"to": "cancelled"})

		body := httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, api.CodeInvalidTransition)
		s.Equal(map[string]any{"domain": "booking", "from": "checked_in", "to": "cancelled"}, body.Detail)
	})

	s.Run("error: 400 on an unknown target state", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any()).
			Return(nil, &sm.UnknownStateError{Domain: booking.Domain, Tag: "archived"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+id.String()+"/transitions", map[string]string{"to": "archived"})

		body := httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeUnknownState)
		s.Equal("archived", body.Detail["state"])
	})

	s.Run("error: 404 when the entity does not exist", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrEntityNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+id.String()+"/transitions", map[string]string{"to": "confirmed"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, api.CodeNotFound)
	})
}

type StateHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	registry *sm.Registry
}

func (s *StateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	registry, err := lifecycle.NewRegistry()
	s.Require().NoError(err)
	s.registry = registry

	h := api.NewStateHandler(queries.NewStateQueries(registry))
	s.router.GET("/api/states", h.List)
	s.router.GET("/api/states/:domain", h.Get)
}

func TestStateHandlerSuite(t *testing.T) {
	suite.Run(t, new(StateHandlerTestSuite))
}

func (s *StateHandlerTestSuite) TestList() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/states", nil)

	var body []queries.DomainStatesView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, len(s.registry.Domains()))
}

func (s *StateHandlerTestSuite) TestGet() {
	s.Run("success: payment lifecycle", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/states/payment", nil)

		var body queries.DomainStatesView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(payment.Domain.String(), body.Domain)
		s.Equal("pending", body.States[0].State)
		s.True(body.States[0].Default)
	})

	s.Run("error: 404 on unknown domain", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/states/voucher", nil)
		body := httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, api.CodeUnknownDomain)
		s.Equal("voucher", body.Detail["domain"])
	})
}

func TestStateHandler_UsesQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gin.SetMode(gin.TestMode)

	q := queriesmock.NewMockStateQueries(ctrl)
	q.EXPECT().DescribeAll().Return([]*queries.DomainStatesView{{Domain: "booking"}})

	router := gin.New()
	router.GET("/api/states", api.NewStateHandler(q).List)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/states", nil)

	var body []queries.DomainStatesView
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "booking", body[0].Domain)
}
