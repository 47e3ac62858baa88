package accessgrant

import (
	"net/http"

	"ecertify/api/src/directory"
	"ecertify/api/src/middleware"
	reasoncodes "ecertify/pkg/reason_codes"
	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service   *Service
	Directory *directory.Service
}

func NewHandler(service *Service, dir *directory.Service) *Handler {
	return &Handler{Service: service, Directory: dir}
}

type GrantRequest struct {
	ViewerAddress string `json:"viewer_address" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required"`
}

// Grant godoc
// @Summary      Grant access to a certificate
// @Description  The owning student lets a viewer see the certificate for a number of hours
// @Tags         Access
// @Accept       json
// @Produce      json
// @Param        X-Wallet-Address  header  string        true  "Student wallet address"
// @Param        id                path    int           true  "Certificate ID"
// @Param        body              body    accessgrant.GrantRequest  true  "Grant"
// @Success      201  {object}  model.AccessGrant
// @Failure      400  {object}  rest.ErrorResponse
// @Failure      403  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id}/grants [post]
func (h *Handler) Grant(c *gin.Context) {
	actor, ok := middleware.RequireActor(c)
	if !ok {
		return
	}
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}
	var req GrantRequest
	if !rest.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	student, err := h.Directory.ActorStudent(ctx, actor)
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	grant, err := h.Service.Grant(ctx, id, req.ViewerAddress, student.Id, req.DurationHours)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grant)
}

// ListGrants godoc
// @Summary      Grants of a certificate
// @Tags         Access
// @Produce      json
// @Param        id  path  int  true  "Certificate ID"
// @Success      200  {array}   model.AccessGrant
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id}/grants [get]
func (h *Handler) ListGrants(c *gin.Context) {
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	grants, err := h.Service.ListGrants(c.Request.Context(), id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}

// ActiveGrant godoc
// @Summary      The caller's active grant on a certificate
// @Tags         Access
// @Produce      json
// @Param        X-Wallet-Address  header  string  true  "Viewer wallet address"
// @Param        id                path    int     true  "Certificate ID"
// @Success      200  {object}  model.AccessGrant
// @Failure      401  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id}/grants/active [get]
func (h *Handler) ActiveGrant(c *gin.Context) {
	actor, ok := middleware.RequireActor(c)
	if !ok {
		return
	}
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	grant, err := h.Service.ActiveGrant(c.Request.Context(), id, actor, h.Service.Now())
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	if grant == nil {
		rest.RespondError(c, reasoncodes.New(reasoncodes.ErrNotFound, "%s has no active grant for certificate %d", actor, id))
		return
	}
	c.JSON(http.StatusOK, grant)
}

// FetchContent godoc
// @Summary      Download the certificate file
// @Description  The owner and the issuer may always download. Other viewers need an active grant when grants are enforced
// @Tags         Access
// @Produce      octet-stream
// @Param        X-Wallet-Address  header  string  true  "Viewer wallet address"
// @Param        id                path    int     true  "Certificate ID"
// @Success      200
// @Failure      403  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Failure      502  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id}/content [get]
func (h *Handler) FetchContent(c *gin.Context) {
	actor, ok := middleware.RequireActor(c)
	if !ok {
		return
	}
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	data, err := h.Service.FetchContent(c.Request.Context(), id, actor)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}

// ListAccessLogs godoc
// @Summary      Who viewed a certificate
// @Tags         Access
// @Produce      json
// @Param        id  path  int  true  "Certificate ID"
// @Success      200  {array}   model.AccessLog
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id}/access-logs [get]
func (h *Handler) ListAccessLogs(c *gin.Context) {
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	logs, err := h.Service.ListAccessLogs(c.Request.Context(), id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ShareCode godoc
// @Summary      QR code of a share link
// @Tags         Access
// @Produce      png
// @Param        id      path   int     true  "Certificate ID"
// @Param        viewer  query  string  true  "Viewer wallet address"
// @Success      200
// @Failure      400  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id}/share-qr [get]
func (h *Handler) ShareCode(c *gin.Context) {
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	png, err := h.Service.ShareCode(c.Request.Context(), id, c.Query("viewer"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "certificates/:id/grants", h.Grant),
		rest.NewRoute(rest.GET, "v1", "certificates/:id/grants", h.ListGrants),
		rest.NewRoute(rest.GET, "v1", "certificates/:id/grants/active", h.ActiveGrant),
		rest.NewRoute(rest.GET, "v1", "certificates/:id/content", h.FetchContent),
		rest.NewRoute(rest.GET, "v1", "certificates/:id/access-logs", h.ListAccessLogs),
		rest.NewRoute(rest.GET, "v1", "certificates/:id/share-qr", h.ShareCode),
	}
}
