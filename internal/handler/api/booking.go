package api

import (
	"net/http"

	reqdto "stay-ledger/internal/handler/dto/request"
	resdto "stay-ledger/internal/handler/dto/response"
	"stay-ledger/internal/handler/httperr"
	"stay-ledger/internal/usecase/commands"
	"stay-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Price the stay, allocate a booking code and store the booking with its folio
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidRequest, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidRequest, "Invalid date", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), params)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Description Get a booking with its service lines and folio
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidRequest, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
