package api

import (
	"errors"
	"net/http"

	"stay-ledger/internal/domain/bookingcode"
	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/domain/pricing"
	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/handler/httperr"
	"stay-ledger/internal/pkg/errs"
	"stay-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the "code" field of error bodies.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeInvalidTransition   = "invalid_transition"
	CodeServiceSelection    = "service_selection"
	CodeDateRange           = "date_range"
	CodePrecisionLoss       = "precision_loss"
	CodeCurrencyMismatch    = "currency_mismatch"
	CodeAmountOverflow      = "amount_overflow"
	CodeUnknownState        = "unknown_state"
	CodeUnknownDomain       = "unknown_domain"
	CodeNotFound            = "not_found"
	CodeValidation          = "validation_failed"
	CodeCodeSpaceExhausted  = "booking_code_exhausted"
	CodeInternalServerError = "internal_error"
)

// abortWithDomainError maps core and use case errors to HTTP responses.
func abortWithDomainError(c *gin.Context, err error) {
	var (
		transitionErr *sm.InvalidTransitionError
		unknownState  *sm.UnknownStateError
		unknownDomain *sm.UnknownDomainError
		selectionErr  *pricing.ServiceSelectionError
		rangeErr      *pricing.DateRangeError
		precisionErr  *money.PrecisionLossError
		mismatchErr   *money.CurrencyMismatchError
		exhaustedErr  *bookingcode.CodeGenerationExhaustedError
	)

	switch {
	case errors.As(err, &transitionErr):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, CodeInvalidTransition, "Transition not allowed", gin.H{
			"domain": transitionErr.Domain,
			"from":   transitionErr.From,
			"to":     transitionErr.To,
		})
	case errors.As(err, &selectionErr):
		detail := gin.H{
			"service_id": selectionErr.ServiceID,
			"constraint": selectionErr.Constraint,
			"quantity":   selectionErr.Quantity,
		}
		if selectionErr.Constraint == pricing.ConstraintExceedsMaximum {
			detail["max"] = selectionErr.Max
		}
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, CodeServiceSelection, "Service selection rejected", detail)
	case errors.As(err, &mismatchErr):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, CodeCurrencyMismatch, "Currency mismatch", gin.H{
			"left":  mismatchErr.Left,
			"right": mismatchErr.Right,
		})
	case errs.Is(err, money.ErrAmountOverflow):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, CodeAmountOverflow, "Amount is too large", nil)
	case errors.As(err, &rangeErr):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeDateRange, "Check-out must be after check-in", nil)
	case errors.As(err, &precisionErr):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodePrecisionLoss, "Amount must be an integer number of minor units", nil)
	case errors.As(err, &unknownState):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeUnknownState, "Unknown state", gin.H{
			"domain": unknownState.Domain,
			"state":  unknownState.Tag,
		})
	case errors.As(err, &unknownDomain):
		httperr.AbortWithCode(c, http.StatusNotFound, err, CodeUnknownDomain, "Unknown domain", gin.H{"domain": unknownDomain.Domain})
	case errs.Is(err, errs.ErrPropertyNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, CodeNotFound, "Property not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound), errs.Is(err, errs.ErrEntityNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, CodeNotFound, "Not found", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeValidation, "Validation failed", nil)
	case errors.As(err, &exhaustedErr), errs.Is(err, commands.ErrCodeCollisionsExhausted):
		httperr.AbortWithCode(c, http.StatusInternalServerError, err, CodeCodeSpaceExhausted, "Could not allocate a booking code", nil)
	default:
		httperr.AbortWithCode(c, http.StatusInternalServerError, err, CodeInternalServerError, "Internal server error", nil)
	}
}
