package directory

import (
	"net/http"

	"ecertify/api/src/middleware"
	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

type RegisterInstituteRequest struct {
	WalletAddress string `json:"wallet_address"`
	DisplayName   string `json:"display_name" binding:"required"`
	ContactEmail  string `json:"contact_email"`
}

type RegisterStudentRequest struct {
	WalletAddress string `json:"wallet_address"`
	DisplayName   string `json:"display_name" binding:"required"`
	ContactEmail  string `json:"contact_email"`
	InstituteId   *int   `json:"institute_id,omitempty"`
}

// registrant defaults the registered address to the caller's wallet.
func registrant(c *gin.Context, address string) string {
	if address != "" {
		return address
	}
	actor, _ := middleware.ActorAddress(c)
	return actor
}

// RegisterInstitute godoc
// @Summary      Register an institute
// @Description  Creates the institute or updates its display name and contact email
// @Tags         Directory
// @Accept       json
// @Produce      json
// @Param        X-Wallet-Address  header  string                     false  "Caller wallet address"
// @Param        body              body    directory.RegisterInstituteRequest  true   "Institute profile"
// @Success      200  {object}  model.Institute
// @Failure      400  {object}  rest.ErrorResponse
// @Router       /v1/institutes [post]
func (h *Handler) RegisterInstitute(c *gin.Context) {
	var req RegisterInstituteRequest
	if !rest.BindJSON(c, &req) {
		return
	}

	institute, err := h.Service.UpsertInstitute(c.Request.Context(), registrant(c, req.WalletAddress), req.DisplayName, req.ContactEmail)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, institute)
}

// ProvisionInstitute godoc
// @Summary      Provision a placeholder institute
// @Description  Returns the institute for the address, creating one with placeholder details if needed
// @Tags         Directory
// @Produce      json
// @Param        address  path  string  true  "Institute wallet address"
// @Success      200  {object}  model.Institute
// @Failure      400  {object}  rest.ErrorResponse
// @Router       /v1/institutes/{address}/provision [post]
func (h *Handler) ProvisionInstitute(c *gin.Context) {
	institute, err := h.Service.ProvisionPlaceholderInstitute(c.Request.Context(), c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, institute)
}

// GetInstitute godoc
// @Summary      Get institute by wallet address
// @Tags         Directory
// @Produce      json
// @Param        address  path  string  true  "Institute wallet address"
// @Success      200  {object}  model.Institute
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/institutes/{address} [get]
func (h *Handler) GetInstitute(c *gin.Context) {
	institute, err := h.Service.GetInstituteByAddress(c.Request.Context(), c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, institute)
}

// ListStudents godoc
// @Summary      Students of an institute
// @Description  Lists the students currently affiliated with the institute
// @Tags         Directory
// @Produce      json
// @Param        address  path  string  true  "Institute wallet address"
// @Success      200  {array}   model.Student
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/institutes/{address}/students [get]
func (h *Handler) ListStudents(c *gin.Context) {
	ctx := c.Request.Context()
	institute, err := h.Service.GetInstituteByAddress(ctx, c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	students, err := h.Service.ListStudentsForInstitute(ctx, institute.Id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// RegisterStudent godoc
// @Summary      Register a student
// @Description  Creates the student or updates the profile. institute_id may only be set while the student is unaffiliated
// @Tags         Directory
// @Accept       json
// @Produce      json
// @Param        X-Wallet-Address  header  string                  false  "Caller wallet address"
// @Param        body              body    directory.RegisterStudentRequest  true   "Student profile"
// @Success      200  {object}  model.Student
// @Failure      400  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Failure      409  {object}  rest.ErrorResponse
// @Router       /v1/students [post]
func (h *Handler) RegisterStudent(c *gin.Context) {
	var req RegisterStudentRequest
	if !rest.BindJSON(c, &req) {
		return
	}

	student, err := h.Service.UpsertStudent(c.Request.Context(), registrant(c, req.WalletAddress),
		req.DisplayName, req.ContactEmail, req.InstituteId)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// GetStudent godoc
// @Summary      Get student by wallet address
// @Tags         Directory
// @Produce      json
// @Param        address  path  string  true  "Student wallet address"
// @Success      200  {object}  model.Student
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/students/{address} [get]
func (h *Handler) GetStudent(c *gin.Context) {
	student, err := h.Service.GetStudentByAddress(c.Request.Context(), c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "institutes", h.RegisterInstitute),
		rest.NewRoute(rest.GET, "v1", "institutes/:address", h.GetInstitute),
		rest.NewRoute(rest.POST, "v1", "institutes/:address/provision", h.ProvisionInstitute),
		rest.NewRoute(rest.GET, "v1", "institutes/:address/students", h.ListStudents),
		rest.NewRoute(rest.POST, "v1", "students", h.RegisterStudent),
		rest.NewRoute(rest.GET, "v1", "students/:address", h.GetStudent),
	}
}
