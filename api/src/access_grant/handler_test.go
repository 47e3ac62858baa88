package accessgrant_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	accessgrant "ecertify/api/src/access_grant"
	"ecertify/api/src/middleware"
	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) serve(method, path, actor, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WalletAddressMiddleware())
	rest.Register(r.Group("/v1"), accessgrant.NewHandler(f.grants, f.dir).Routes()...)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(middleware.WalletAddressHeader, actor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGrantAndFetchOverHttp(t *testing.T) {
	f := newFixture(t, true)
	base := "/v1/certificates/" + strconv.Itoa(f.certificate.Id)

	w := f.serve(http.MethodGet, base+"/content", "0xviewer", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.serve(http.MethodPost, base+"/grants", "0xissuer", `{"viewer_address":"0xviewer","duration_hours":1}`)
	assert.Equal(t, http.StatusForbidden, w.Code, "institutes cannot grant")

	w = f.serve(http.MethodGet, base+"/grants/active", "0xviewer", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.serve(http.MethodPost, base+"/grants", "0xowner", `{"viewer_address":"0xviewer","duration_hours":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.serve(http.MethodGet, base+"/grants/active", "0xViewer", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"viewer_address":"0xviewer"`)

	w = f.serve(http.MethodPost, base+"/grants", "0xowner", `{"viewer_address":"0xviewer","duration_hours":3000000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.serve(http.MethodGet, base+"/content", "0xviewer", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "certificate file", w.Body.String())

	w = f.serve(http.MethodGet, base+"/content", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.serve(http.MethodGet, base+"/access-logs", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer_address":"0xviewer"`)
}

func TestShareCodeOverHttp(t *testing.T) {
	f := newFixture(t, false)

	w := f.serve(http.MethodGet, "/v1/certificates/"+strconv.Itoa(f.certificate.Id)+"/share-qr?viewer=0xviewer", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = f.serve(http.MethodGet, "/v1/certificates/"+strconv.Itoa(f.certificate.Id)+"/share-qr", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
