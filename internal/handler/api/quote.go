package api

import (
	"net/http"

	reqdto "stay-ledger/internal/handler/dto/request"
	resdto "stay-ledger/internal/handler/dto/response"
	"stay-ledger/internal/handler/httperr"
	"stay-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.PricingQueries
}

func NewQuoteHandler(q queries.PricingQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Quote a stay
// @Description Price breakdown for a stay and selected services, nothing is stored
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.BreakdownResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidRequest, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidRequest, "Invalid date", nil)
		return
	}

	breakdown, err := h.q.Quote(c.Request.Context(), params)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}
