package middleware

import (
	"log/slog"
	"net/http"

	"stay-ledger/internal/handler/httperr"
	"stay-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error if a handler recorded one
// without writing a body itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			return
		}

		resp := httperr.Response{Status: http.StatusInternalServerError, RequestID: GetRequestID(c)}
		resp.Error.Message = "Internal server error"
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// CustomRecovery turns a panic into a 500 JSON body and logs the top of the stack.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				panicErr := errs.Newf("panic: %v", rec)
				slog.Error("recovered from panic",
					slog.Any("error", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)),
					slog.Any("stack", errs.ExtractStackLines(panicErr, 12)))

				resp := httperr.Response{Status: http.StatusInternalServerError, RequestID: GetRequestID(c)}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
