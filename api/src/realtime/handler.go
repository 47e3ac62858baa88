package realtime

import (
	"context"
	"io"
	"time"

	"ecertify/api/src/middleware"
	reasoncodes "ecertify/pkg/reason_codes"
	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
)

const defaultHeartbeat = 15 * time.Second

// ActorLookup resolves wallet addresses to directory ids.
type ActorLookup interface {
	FindInstituteId(ctx context.Context, address string) (*int, error)
	FindStudentId(ctx context.Context, address string) (*int, error)
}

type Handler struct {
	hub       *Hub
	lookup    ActorLookup
	heartbeat time.Duration
}

func NewHandler(hub *Hub, lookup ActorLookup) *Handler {
	return &Handler{hub: hub, lookup: lookup, heartbeat: defaultHeartbeat}
}

func (h *Handler) WithHeartbeat(d time.Duration) *Handler {
	h.heartbeat = d
	return h
}

// InstituteFeed godoc
// @Summary      Live feed for an institute
// @Description  Server-sent events for certificate and transfer changes of the institute
// @Tags         Feeds
// @Produce      text/event-stream
// @Param        address  path  string  true  "Institute wallet address"
// @Success      200
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/feeds/institutes/{address} [get]
func (h *Handler) InstituteFeed(c *gin.Context) {
	address := middleware.NormalizeAddress(c.Param("address"))
	id, err := h.lookup.FindInstituteId(c.Request.Context(), address)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	if id == nil {
		rest.RespondError(c, reasoncodes.New(reasoncodes.ErrNotFound, "institute %s not found", address))
		return
	}

	h.stream(c, RoleInstitute, InstituteFeedFilters(*id))
}

// StudentFeed godoc
// @Summary      Live feed for a student
// @Description  Server-sent events for certificate, transfer and access grant changes of the student
// @Tags         Feeds
// @Produce      text/event-stream
// @Param        address  path  string  true  "Student wallet address"
// @Success      200
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /v1/feeds/students/{address} [get]
func (h *Handler) StudentFeed(c *gin.Context) {
	address := middleware.NormalizeAddress(c.Param("address"))
	id, err := h.lookup.FindStudentId(c.Request.Context(), address)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	if id == nil {
		rest.RespondError(c, reasoncodes.New(reasoncodes.ErrNotFound, "student %s not found", address))
		return
	}

	h.stream(c, RoleStudent, StudentFeedFilters(*id))
}

type feedStatus struct {
	NeedsRefresh bool `json:"needs_refresh"`
	Notices      int  `json:"notices"`
}

func (h *Handler) stream(c *gin.Context, role Role, filters []Filter) {
	sub := h.hub.Subscribe(filters...)
	defer sub.Unsubscribe()

	feed := NewFeed(role)
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("status", feedStatus{})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case e, ok := <-sub.C():
			if !ok {
				return false
			}
			c.SSEvent("change", e)
			if notice, has := feed.Apply(e); has {
				c.SSEvent("notice", notice)
			}
			return true
		case <-ticker.C:
			// the refresh flag is reported once per heartbeat window
			c.SSEvent("status", feedStatus{NeedsRefresh: feed.NeedsRefresh(), Notices: len(feed.Notices())})
			feed.Clear()
			return true
		}
	})
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.GET, "v1", "feeds/institutes/:address", h.InstituteFeed),
		rest.NewRoute(rest.GET, "v1", "feeds/students/:address", h.StudentFeed),
	}
}
