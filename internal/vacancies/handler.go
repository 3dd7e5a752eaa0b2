package vacancies

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes mounts the reads that need no principal.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vacancies", h.list)
	rg.GET("/vacancies/search", h.search)
}

// RegisterRoutes mounts the authenticated vacancy surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vacancies/mine", h.mine)
	rg.GET("/vacancies/archived", h.archived)
	rg.GET("/vacancies/by-id/:id", h.getByID)
	rg.GET("/vacancies/by-title/:title", h.getByTitle)
	rg.POST("/vacancies", h.create)
	rg.PUT("/vacancies/:id", h.update)
	rg.DELETE("/vacancies/:id", h.delete)
	rg.PUT("/vacancies/:id/activate", h.activate)
	rg.PUT("/vacancies/:id/deactivate", h.deactivate)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list vacancies", nil)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) search(c *gin.Context) {
	view, err := h.Svc.SearchByTitle(c.Request.Context(), c.Query("title"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) mine(c *gin.Context) {
	out, err := h.Svc.Mine(c.Request.Context(), middleware.PrincipalFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) archived(c *gin.Context) {
	out, err := h.Svc.Archived(c.Request.Context(), middleware.PrincipalFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) getByID(c *gin.Context) {
	view, err := h.Svc.GetByID(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) getByTitle(c *gin.Context) {
	view, err := h.Svc.GetByTitle(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("title"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	view, err := h.Svc.Create(c.Request.Context(), middleware.PrincipalFromContext(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.Created(c, view)
}

func (h *Handler) update(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	view, err := h.Svc.Update(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) activate(c *gin.Context) {
	view, err := h.Svc.Activate(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) deactivate(c *gin.Context) {
	view, err := h.Svc.Deactivate(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrTitleTaken):
		respond.Error(c, http.StatusUnprocessableEntity, "already_exists", "a vacancy with this title already exists", nil)
	case errors.Is(err, ErrAlreadyActive):
		respond.Error(c, http.StatusBadRequest, "already_active", "vacancy is already active", nil)
	case errors.Is(err, ErrAlreadyInactive):
		respond.Error(c, http.StatusBadRequest, "already_inactive", "vacancy is already inactive", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "vacancy not found", nil)
	case errors.Is(err, ErrUnauthorized):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "not authorized for this vacancy", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "vacancy operation failed", nil)
	}
}
