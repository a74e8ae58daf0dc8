package api

import (
	"net/http"

	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StateHandler struct {
	q queries.StateQueries
}

func NewStateHandler(q queries.StateQueries) *StateHandler {
	return &StateHandler{q: q}
}

// @Summary List state machines
// @Description States, labels, colors and allowed transitions of every domain
// @Tags states
// @Produce json
// @Success 200 {array} queries.DomainStatesView
// @Router /states [get]
func (h *StateHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.DescribeAll())
}

// @Summary Get state machine
// @Description States, labels, colors and allowed transitions of one domain
// @Tags states
// @Produce json
// @Param domain path string true "booking, folio, invoice or payment"
// @Success 200 {object} queries.DomainStatesView
// @Failure 404 {object} httperr.Response
// @Router /states/{domain} [get]
func (h *StateHandler) Get(c *gin.Context) {
	view, err := h.q.Describe(sm.Domain(c.Param("domain")))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
