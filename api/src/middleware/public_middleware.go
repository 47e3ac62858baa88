package middleware

import (
	"net/http"
	"strings"

	reasoncodes "ecertify/pkg/reason_codes"
	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
)

const (
	WalletAddressHeader = "X-Wallet-Address"
	actorAddressKey     = "actor_address"
)

// NormalizeAddress makes wallet addresses comparable regardless of letter casing.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// WalletAddressMiddleware stores the caller's wallet address, when sent, for the handlers.
func WalletAddressMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if address := NormalizeAddress(c.GetHeader(WalletAddressHeader)); address != "" {
			c.Set(actorAddressKey, address)
		}
		c.Next()
	}
}

func ActorAddress(c *gin.Context) (string, bool) {
	address := c.GetString(actorAddressKey)
	return address, address != ""
}

// RequireActor responds 401 and returns false when the request carries no wallet address.
func RequireActor(c *gin.Context) (string, bool) {
	address, ok := ActorAddress(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, rest.ErrorResponse{
			Code:  reasoncodes.ErrUnauthorized,
			Error: "missing " + WalletAddressHeader + " header",
		})
	}
	return address, ok
}

func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+WalletAddressHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
