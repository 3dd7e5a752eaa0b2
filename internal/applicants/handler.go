package applicants

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
	rg.GET("/applicants", h.list)
	rg.GET("/applicants/by-id/:id", h.getByID)
	rg.GET("/applicants/by-name/:name", h.getByName)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applicants", nil)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) getByID(c *gin.Context) {
	h.getOne(c, func() (Applicant, error) {
		return h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	})
}

func (h *Handler) getByName(c *gin.Context) {
	h.getOne(c, func() (Applicant, error) {
		return h.Svc.GetByName(c.Request.Context(), c.Param("name"))
	})
}

func (h *Handler) getOne(c *gin.Context, fetch func() (Applicant, error)) {
	applicant, err := fetch()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "applicant not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load applicant", nil)
		return
	}
	respond.OK(c, applicant)
}
