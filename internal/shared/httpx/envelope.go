// Package httpx holds the `{data: ...}` envelope helpers shared by the HTTP
// adapters.
package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/melvan27/GrubDash/internal/shared/payload"
)

type requestEnvelope struct {
	Data payload.Payload `json:"data"`
}

type responseEnvelope struct {
	Data any `json:"data"`
}

// BindData decodes the request's `data` object. A missing or malformed body
// yields an empty payload so the validation stages report the first missing
// field instead of a decoding error.
func BindData(c *gin.Context) payload.Payload {
	var envelope requestEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil || envelope.Data == nil {
		return payload.Payload{}
	}
	return envelope.Data
}

// RespondData writes v wrapped in a `data` envelope.
func RespondData(c *gin.Context, status int, v any) {
	c.JSON(status, responseEnvelope{Data: v})
}
