package logaudit

import (
	"fmt"
	"net/http"
	"strconv"

	"ecertify/pkg/rest"

	"github.com/gin-gonic/gin"
)

type LogAuditHandler struct {
	service LogAuditService
}

func NewLogAuditHandler(service LogAuditService) *LogAuditHandler {
	return &LogAuditHandler{
		service: service,
	}
}

func pageFromQuery(c *gin.Context) (Page, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageLimit)))
	if err != nil || limit <= 0 {
		rest.RespondBadRequest(c, "limit must be a positive integer")
		return Page{}, false
	}
	if limit > MaxPageLimit {
		rest.RespondBadRequest(c, fmt.Sprintf("limit cannot exceed %d", MaxPageLimit))
		return Page{}, false
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		rest.RespondBadRequest(c, "offset must be a non-negative integer")
		return Page{}, false
	}
	return Page{Limit: limit, Offset: offset}, true
}

// GetLogEntries godoc
// @Summary      Audit log entries
// @Tags         Logs
// @Produce      json
// @Param        limit   query  int  false  "Page size (max 1000)"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {array}   model.LogAuditEntry
// @Failure      400  {object}  rest.ErrorResponse
// @Router       /v1/logs [get]
func (h *LogAuditHandler) GetLogEntries(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	entries, err := h.service.GetLogEntries(page)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetLogEntriesByService godoc
// @Summary      Audit log entries of one service
// @Tags         Logs
// @Produce      json
// @Param        service  path   string  true   "Service name"
// @Param        limit    query  int     false  "Page size (max 1000)"
// @Param        offset   query  int     false  "Page offset"
// @Success      200  {array}   model.LogAuditEntry
// @Failure      400  {object}  rest.ErrorResponse
// @Router       /v1/logs/service/{service} [get]
func (h *LogAuditHandler) GetLogEntriesByService(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	entries, err := h.service.GetLogEntriesByService(c.Param("service"), page)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetLogEntriesByLevel godoc
// @Summary      Audit log entries of one level
// @Tags         Logs
// @Produce      json
// @Param        level   path   string  true   "Log level"
// @Param        limit   query  int     false  "Page size (max 1000)"
// @Param        offset  query  int     false  "Page offset"
// @Success      200  {array}   model.LogAuditEntry
// @Failure      400  {object}  rest.ErrorResponse
// @Router       /v1/logs/level/{level} [get]
func (h *LogAuditHandler) GetLogEntriesByLevel(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	entries, err := h.service.GetLogEntriesByLevel(c.Param("level"), page)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LogAuditHandler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.GET, "v1", "logs", h.GetLogEntries),
		rest.NewRoute(rest.GET, "v1", "logs/service/:service", h.GetLogEntriesByService),
		rest.NewRoute(rest.GET, "v1", "logs/level/:level", h.GetLogEntriesByLevel),
	}
}
