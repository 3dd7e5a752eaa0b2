package employers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/employers", h.list)
	rg.GET("/employers/by-id/:id", h.getByID)
	rg.GET("/employers/by-name/:name", h.getByName)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list employers", nil)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) getByID(c *gin.Context) {
	h.getOne(c, func() (Employer, error) {
		return h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	})
}

func (h *Handler) getByName(c *gin.Context) {
	h.getOne(c, func() (Employer, error) {
		return h.Svc.GetByName(c.Request.Context(), c.Param("name"))
	})
}

func (h *Handler) getOne(c *gin.Context, fetch func() (Employer, error)) {
	employer, err := fetch()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "employer not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load employer", nil)
		return
	}
	respond.OK(c, employer)
}
