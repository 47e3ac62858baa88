package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// IntParam parses a positive integer path parameter and responds 400 when it is not one.
func IntParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		RespondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

// BindJSON binds the request body into dst and responds 400 on malformed input.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondBadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}
