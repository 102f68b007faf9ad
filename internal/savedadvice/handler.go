package savedadvice

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/ideas"
	"advisor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the saved-advice service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches saved-advice routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/saved-advice", h.create)
	rg.GET("/saved-advice", h.list)
	rg.GET("/saved-advice/:id", h.get)
	rg.DELETE("/saved-advice/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	req.Advice = strings.TrimSpace(req.Advice)
	if req.Question == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}
	if req.Advice == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "advice is required", nil)
		return
	}

	saved, err := h.Svc.Create(c.Request.Context(), req.Question, req.Advice)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save advice: "+err.Error(), nil)
		return
	}

	respond.Created(c, saved)
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list saved advice: "+err.Error(), nil)
		return
	}
	respond.OK(c, all)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	saved, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ideas.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "saved advice not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch saved advice: "+err.Error(), nil)
		}
		return
	}

	respond.OK(c, saved)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	confirmation, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ideas.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "saved advice not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete saved advice: "+err.Error(), nil)
		}
		return
	}

	respond.OK(c, confirmation)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id must be an integer", nil)
		return 0, false
	}
	return id, true
}
