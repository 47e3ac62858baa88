package content

import (
	"net/http"

	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Verify godoc
// @Summary      Verify a content id
// @Description  Reports whether the file is stored and whether the id is well formed
// @Tags         Content
// @Produce      json
// @Param        cid  path  string  true  "Content ID"
// @Success      200  {object}  content.Verification
// @Failure      502  {object}  rest.ErrorResponse
// @Router       /v1/content/{cid}/verify [get]
func (h *Handler) Verify(c *gin.Context) {
	v, err := Verify(c.Request.Context(), h.store, c.Param("cid"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.GET, "v1", "content/:cid/verify", h.Verify),
	}
}
