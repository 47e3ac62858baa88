package transfer

import (
	"net/http"

	"ecertify/api/src/directory"
	"ecertify/api/src/middleware"
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

type TransferRequestBody struct {
	FromInstituteAddress string `json:"from_institute_address"`
	ToInstituteAddress   string `json:"to_institute_address" binding:"required"`
}

type ApproveTransferBody struct {
	StudentAddress string `json:"student_address" binding:"required"`
}

// Request godoc
// @Summary      Request an institute transfer
// @Description  The calling student asks to move from from_institute_address (empty when unaffiliated) to to_institute_address
// @Tags         Transfers
// @Accept       json
// @Produce      json
// @Param        X-Wallet-Address  header  string               true  "Student wallet address"
// @Param        body              body    transfer.TransferRequestBody  true  "Transfer"
// @Success      201  {object}  model.TransferRequest
// @Failure      403  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Failure      409  {object}  rest.ErrorResponse
// @Router       /v1/transfers [post]
func (h *Handler) Request(c *gin.Context) {
	actor, ok := middleware.RequireActor(c)
	if !ok {
		return
	}
	var req TransferRequestBody
	if !rest.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	student, err := h.Directory.ActorStudent(ctx, actor)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	to, err := h.Directory.GetInstituteByAddress(ctx, req.ToInstituteAddress)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	var fromId *int
	if req.FromInstituteAddress != "" {
		from, err := h.Directory.GetInstituteByAddress(ctx, req.FromInstituteAddress)
		if err != nil {
			rest.RespondError(c, err)
			return
		}
		fromId = &from.Id
	}

	request, err := h.Service.Request(ctx, student.Id, fromId, to.Id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// Get godoc
// @Summary      Get transfer request
// @Tags         Transfers
// @Produce      json
// @Param        id  path  int  true  "Transfer request ID"
// @Success      200  {object}  model.TransferRequest
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/transfers/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	request, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// Approve godoc
// @Summary      Approve a transfer
// @Description  Only the target institute may approve. The student becomes affiliated with it
// @Tags         Transfers
// @Accept       json
// @Produce      json
// @Param        X-Wallet-Address  header  string               true  "Institute wallet address"
// @Param        id                path    int                  true  "Transfer request ID"
// @Param        body              body    transfer.ApproveTransferBody  true  "Student of the request"
// @Success      200  {object}  model.TransferRequest
// @Failure      403  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Failure      409  {object}  rest.ErrorResponse
// @Router       /v1/transfers/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	actor, ok := middleware.RequireActor(c)
	if !ok {
		return
	}
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}
	var req ApproveTransferBody
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

	request, err := h.Service.Approve(ctx, id, student.Id, institute.Id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// Decline godoc
// @Summary      Decline a transfer
// @Description  Only the target institute may decline. The student keeps the current institute
// @Tags         Transfers
// @Produce      json
// @Param        X-Wallet-Address  header  string  true  "Institute wallet address"
// @Param        id                path    int     true  "Transfer request ID"
// @Success      200  {object}  model.TransferRequest
// @Failure      403  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Failure      409  {object}  rest.ErrorResponse
// @Router       /v1/transfers/{id}/decline [post]
func (h *Handler) Decline(c *gin.Context) {
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

	request, err := h.Service.Decline(ctx, id, institute.Id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// ListPendingForInstitute godoc
// @Summary      Transfers awaiting an institute
// @Tags         Transfers
// @Produce      json
// @Param        address  path  string  true  "Institute wallet address"
// @Success      200  {array}   model.TransferRequest
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/institutes/{address}/transfers/pending [get]
func (h *Handler) ListPendingForInstitute(c *gin.Context) {
	ctx := c.Request.Context()
	institute, err := h.Directory.GetInstituteByAddress(ctx, c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	requests, err := h.Service.ListPendingForInstitute(ctx, institute.Id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "transfers", h.Request),
		rest.NewRoute(rest.GET, "v1", "transfers/:id", h.Get),
		rest.NewRoute(rest.POST, "v1", "transfers/:id/approve", h.Approve),
		rest.NewRoute(rest.POST, "v1", "transfers/:id/decline", h.Decline),
		rest.NewRoute(rest.GET, "v1", "institutes/:address/transfers/pending", h.ListPendingForInstitute),
	}
}
