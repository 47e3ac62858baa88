package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecertify/api/src/middleware"
	"ecertify/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{{Key: "service", Value: "api-test"}},
	})
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware("http://localhost:8081"), middleware.WalletAddressMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		address, ok := middleware.RequireActor(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, address)
	})
	return r
}

func TestWalletAddressIsNormalized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(middleware.WalletAddressHeader, "  0xAbCdEF ")
	w := httptest.NewRecorder()

	newRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0xabcdef", w.Body.String())
	assert.Equal(t, "http://localhost:8081", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMissingWalletAddressIsUnauthorized(t *testing.T) {
	w := httptest.NewRecorder()

	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"code":"Unauthorized","error":"missing X-Wallet-Address header"}`, w.Body.String())
}

func TestPreflightShortCircuits(t *testing.T) {
	w := httptest.NewRecorder()

	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/whoami", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), middleware.WalletAddressHeader)
}

func TestRequestIdIsEchoedOrGenerated(t *testing.T) {
	r := newRouter()
	r.Use(middleware.RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIdHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIdHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(middleware.RequestIdHeader), 36)
}
