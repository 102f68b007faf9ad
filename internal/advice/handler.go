package advice

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the advice service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches advice routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/advice", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}

	resp, err := h.Svc.Generate(c.Request.Context(), req.Question, req.Category)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate advice: "+err.Error(), nil)
		return
	}

	respond.OK(c, resp)
}
