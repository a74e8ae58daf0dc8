package api

import (
	"net/http"

	sm "stay-ledger/internal/domain/statemachine"
	reqdto "stay-ledger/internal/handler/dto/request"
	resdto "stay-ledger/internal/handler/dto/response"
	"stay-ledger/internal/handler/httperr"
	"stay-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransitionHandler struct {
	cmds commands.TransitionCommands
}

func NewTransitionHandler(cmds commands.TransitionCommands) *TransitionHandler {
	return &TransitionHandler{cmds: cmds}
}

// Transition returns the handler for one domain's transition route.
//
// @Summary Transition status
// @Description Move a booking, folio, invoice or payment to another state
// @Tags transitions
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param request body reqdto.TransitionRequest true "Target state"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/transitions [post]
// @Router /folios/{id}/transitions [post]
// @Router /invoices/{id}/transitions [post]
// @Router /payments/{id}/transitions [post]
func (h *TransitionHandler) Transition(domain sm.Domain) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidRequest, "Invalid id", nil)
			return
		}
		var req reqdto.TransitionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidRequest, "Invalid request", nil)
			return
		}

		result, err := h.cmds.Transition(c.Request.Context(), commands.TransitionParams{
			Domain:   domain,
			EntityID: id,
			To:       req.To,
		})
		if err != nil {
			abortWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
	}
}
