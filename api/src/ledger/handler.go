package ledger

import (
	"net/http"

	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo AnchorRepository
}

func NewHandler(repo AnchorRepository) *Handler {
	return &Handler{repo: repo}
}

// ListAnchors godoc
// @Summary      Ledger receipts of a certificate
// @Tags         Certificates
// @Produce      json
// @Param        id  path  int  true  "Certificate ID"
// @Success      200  {array}   model.LedgerAnchor
// @Failure      400  {object}  rest.ErrorResponse
// @Router       /v1/certificates/{id}/anchors [get]
func (h *Handler) ListAnchors(c *gin.Context) {
	id, ok := rest.IntParam(c, "id")
	if !ok {
		return
	}

	anchors, err := h.repo.ListForCertificate(id)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, anchors)
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.GET, "v1", "certificates/:id/anchors", h.ListAnchors),
	}
}
