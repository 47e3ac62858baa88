package certificate

import (
	"errors"
	"io"
	"net/http"

	"ecertify/api/src/directory"
	"ecertify/api/src/middleware"
	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
)

const (
	maxUploadBytes = 10 << 20
	// room for the multipart envelope and the other form fields
	maxFormOverhead = 1 << 20
)

type Handler struct {
	Service   *Service
	Directory *directory.Service
}

func NewHandler(service *Service, dir *directory.Service) *Handler {
	return &Handler{Service: service, Directory: dir}
}

type IssueRequest struct {
	StudentAddress string `json:"student_address" binding:"required"`
	ContentId      string `json:"content_id" binding:"required"`
}

// Issue godoc
// @Summary      Issue a certificate
// @Description  Records a certificate for an already stored file. The caller must be the issuing institute
// @Tags         Certificates
// @Accept       json
// @Produce      json
// @Param        X-Wallet-Address  header  string        true  "Institute wallet address"
// @Param        body              body    certificate.IssueRequest  true  "Certificate"
// @Success      201  {object}  model.Certificate
// @Failure      400  {object}  rest.ErrorResponse
// @Failure      403  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/certificates [post]
func (h *Handler) Issue(c *gin.Context) {
	actor, ok := middleware.RequireActor(c)
	if !ok {
		return
	}
	var req IssueRequest
	if !rest.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	institute, err := h.Directory.ActorInstitute(ctx, actor)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	student, err := h.Directory.GetStudentByAddress(ctx, req.StudentAddress)
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	certificate, err := h.Service.Issue(ctx, student.Id, institute.Id, req.ContentId)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, certificate)
}

// Upload godoc
// @Summary      Upload and issue a certificate
// @Description  Stores the file in the content store and issues a certificate for it
// @Tags         Certificates
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Wallet-Address  header    string  true  "Institute wallet address"
// @Param        student_address   formData  string  true  "Student wallet address"
// @Param        file              formData  file    true  "Certificate file"
// @Success      201  {object}  model.Certificate
// @Failure      400  {object}  rest.ErrorResponse
// @Failure      403  {object}  rest.ErrorResponse
// @Failure      502  {object}  rest.ErrorResponse
// @Router       /v1/certificates/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	actor, ok := middleware.RequireActor(c)
	if !ok {
		return
	}

	if c.Request.ContentLength > maxUploadBytes+maxFormOverhead {
		rest.RespondBadRequest(c, "file is too large")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes+maxFormOverhead)

	header, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		rest.RespondBadRequest(c, "file is too large")
		return
	}
	if err != nil {
		rest.RespondBadRequest(c, "file is required")
		return
	}
	if header.Size > maxUploadBytes {
		rest.RespondBadRequest(c, "file is too large")
		return
	}
	file, err := header.Open()
	if err != nil {
		rest.RespondBadRequest(c, "could not read file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		rest.RespondBadRequest(c, "could not read file")
		return
	}

	ctx := c.Request.Context()
	institute, err := h.Directory.ActorInstitute(ctx, actor)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	student, err := h.Directory.GetStudentByAddress(ctx, c.PostForm("student_address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	certificate, err := h.Service.Upload(ctx, institute.Id, student.Id, data)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, certificate)
}

// Approve godoc
// @Summary      Approve a certificate
// @Description  Only the issuing institute may approve. Approving twice is a no-op
// @Tags         Certificates
// @Produce      json
// @Param        X-Wallet-Address  header  string  true  "Institute wallet address"
// @Param        id                path    int     true  "Certificate ID"
// @Success      200  {object}  model.Certificate
// @Failure      403  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	actor, ok := middleware.RequireActor(c)
	if !ok {
		return
	}
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	institute, err := h.Directory.ActorInstitute(ctx, actor)
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	certificate, err := h.Service.Approve(ctx, id, institute.Id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificate)
}

// Get godoc
// @Summary      Get certificate
// @Tags         Certificates
// @Produce      json
// @Param        id  path  int  true  "Certificate ID"
// @Success      200  {object}  model.Certificate
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	certificate, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificate)
}

// ListForStudent godoc
// @Summary      Certificates of a student
// @Description  Newest first
// @Tags         Certificates
// @Produce      json
// @Param        address  path  string  true  "Student wallet address"
// @Success      200  {array}   model.Certificate
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/students/{address}/certificates [get]
func (h *Handler) ListForStudent(c *gin.Context) {
	ctx := c.Request.Context()
	student, err := h.Directory.GetStudentByAddress(ctx, c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	certificates, err := h.Service.ListForStudent(ctx, student.Id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificates)
}

// ListPendingForInstitute godoc
// @Summary      Certificates awaiting approval
// @Tags         Certificates
// @Produce      json
// @Param        address  path  string  true  "Institute wallet address"
// @Success      200  {array}   model.Certificate
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/institutes/{address}/certificates/pending [get]
func (h *Handler) ListPendingForInstitute(c *gin.Context) {
	ctx := c.Request.Context()
	institute, err := h.Directory.GetInstituteByAddress(ctx, c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	certificates, err := h.Service.ListPendingForInstitute(ctx, institute.Id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificates)
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "certificates", h.Issue),
		rest.NewRoute(rest.POST, "v1", "certificates/upload", h.Upload),
		rest.NewRoute(rest.GET, "v1", "certificates/:id", h.Get),
		rest.NewRoute(rest.POST, "v1", "certificates/:id/approve", h.Approve),
		rest.NewRoute(rest.GET, "v1", "students/:address/certificates", h.ListForStudent),
		rest.NewRoute(rest.GET, "v1", "institutes/:address/certificates/pending", h.ListPendingForInstitute),
	}
}
