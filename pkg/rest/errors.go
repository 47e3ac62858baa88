package rest

import (
	"net/http"

	reasoncodes "ecertify/pkg/reason_codes"

	"github.com/gin-gonic/gin"
)

var statusByCode = map[reasoncodes.ReasonCode]int{
	reasoncodes.ErrNotFound:       http.StatusNotFound,
	reasoncodes.ErrInvalidState:   http.StatusConflict,
	reasoncodes.ErrUnauthorized:   http.StatusForbidden,
	reasoncodes.ErrInvalidInput:   http.StatusBadRequest,
	reasoncodes.ErrUnmarshal:      http.StatusBadRequest,
	reasoncodes.ErrTransientStore: http.StatusServiceUnavailable,
	reasoncodes.ErrContentStore:   http.StatusBadGateway,
	reasoncodes.ErrLedger:         http.StatusBadGateway,
}

type ErrorResponse struct {
	Code  reasoncodes.ReasonCode `json:"code"`
	Error string                 `json:"error"`
}

func StatusFor(code reasoncodes.ReasonCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// RespondError writes err as {"code", "error"}. Uncoded errors become InternalError and
// their text is not exposed.
func RespondError(c *gin.Context, err error) {
	code := reasoncodes.CodeOf(err)
	msg := "internal error"
	if code != reasoncodes.ErrInternal {
		msg = reasoncodes.MessageOf(err)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(StatusFor(code), ErrorResponse{Code: code, Error: msg})
}

func RespondBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Code: reasoncodes.ErrInvalidInput, Error: msg})
}
