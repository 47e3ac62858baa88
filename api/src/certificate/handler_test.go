package certificate_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"ecertify/api/src/certificate"
	"ecertify/api/src/middleware"
	"ecertify/api/src/model"
	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WalletAddressMiddleware())
	rest.Register(r.Group("/v1"), certificate.NewHandler(e.certs, e.dir).Routes()...)
	return r
}

func send(r http.Handler, req *http.Request, actor string) *httptest.ResponseRecorder {
	if actor != "" {
		req.Header.Set(middleware.WalletAddressHeader, actor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestIssueAndApproveOverHttp(t *testing.T) {
	env := newEnv(t)
	institute := env.institute(t, "0xinst")
	env.student(t, "0xstud", &institute.Id)
	r := env.router()

	w := send(r, jsonRequest(http.MethodPost, "/v1/certificates", `{"student_address":"0xSTUD","content_id":"QmFile"}`), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = send(r, jsonRequest(http.MethodPost, "/v1/certificates", `{"student_address":"0xstud","content_id":"QmFile"}`), "0xstud")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = send(r, jsonRequest(http.MethodPost, "/v1/certificates", `{"student_address":"0xSTUD","content_id":"QmFile"}`), "0xINST")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var issued model.Certificate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))

	w = send(r, httptest.NewRequest(http.MethodGet, "/v1/institutes/0xinst/certificates/pending", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	var pending []model.Certificate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.Len(t, pending, 1)

	approvePath := "/v1/certificates/" + strconv.Itoa(issued.Id) + "/approve"
	w = send(r, httptest.NewRequest(http.MethodPost, approvePath, nil), "0xinst")
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, httptest.NewRequest(http.MethodGet, "/v1/students/0xstud/certificates", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	var owned []model.Certificate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &owned))
	require.Len(t, owned, 1)
	assert.True(t, owned[0].Approved)
}

func TestUploadOverHttp(t *testing.T) {
	env := newEnv(t)
	institute := env.institute(t, "0xinst")
	env.student(t, "0xstud", &institute.Id)
	r := env.router()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("student_address", "0xstud"))
	part, err := form.CreateFormFile("file", "diploma.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF diploma"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/certificates/upload", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := send(r, req, "0xinst")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var issued model.Certificate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
	data, err := env.store.Get(env.ctx, issued.ContentId)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF diploma"), data)

	w = send(r, httptest.NewRequest(http.MethodPost, "/v1/certificates/upload", nil), "0xinst")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsOversizedBodies(t *testing.T) {
	env := newEnv(t)
	institute := env.institute(t, "0xinst")
	env.student(t, "0xstud", &institute.Id)
	r := env.router()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("student_address", "0xstud"))
	part, err := form.CreateFormFile("file", "huge.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 12<<20))
	require.NoError(t, err)
	require.NoError(t, form.Close())
	payload := body.Bytes()

	req := httptest.NewRequest(http.MethodPost, "/v1/certificates/upload", bytes.NewReader(payload))
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := send(r, req, "0xinst")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too large")

	req = httptest.NewRequest(http.MethodPost, "/v1/certificates/upload", bytes.NewReader(payload))
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.ContentLength = -1
	w = send(r, req, "0xinst")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := send(r, httptest.NewRequest(http.MethodGet, "/v1/students/0xstud/certificates", nil), "")
	assert.NotContains(t, list.Body.String(), `"content_id"`)
}

func TestGetCertificateErrors(t *testing.T) {
	env := newEnv(t)
	r := env.router()

	w := send(r, httptest.NewRequest(http.MethodGet, "/v1/certificates/77", nil), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":"NotFound","error":"certificate 77 not found"}`, w.Body.String())

	w = send(r, httptest.NewRequest(http.MethodGet, "/v1/certificates/abc", nil), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
