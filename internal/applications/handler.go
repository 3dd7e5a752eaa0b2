package applications

import (
	"errors"
	"net/http"
	"time"

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
	rg.GET("/applications", h.list)
	rg.GET("/applications/:id", h.getByID)
	rg.GET("/applications/by-date/:date", h.byDate)
}

// RegisterRoutes mounts the authenticated application surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.apply)
	rg.GET("/applications/by-applicant/:name", h.byApplicant)
	rg.GET("/vacancies/:id/applicants", h.applicantsOfVacancy)
}

type applyRequest struct {
	VacancyTitle string `json:"vacancyTitle"`
}

func (h *Handler) apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	app, err := h.Svc.Apply(c.Request.Context(), middleware.PrincipalFromContext(c), req.VacancyTitle)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.Created(c, app)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) getByID(c *gin.Context) {
	app, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, app)
}

func (h *Handler) byDate(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "date must be yyyy-mm-dd", nil)
		return
	}
	out, err := h.Svc.ByDate(c.Request.Context(), day)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) byApplicant(c *gin.Context) {
	out, err := h.Svc.HistoryByApplicant(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) applicantsOfVacancy(c *gin.Context) {
	names, err := h.Svc.ApplicantsOfVacancy(c.Request.Context(), middleware.PrincipalFromContext(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, names)
}

func (h *Handler) fail(c *gin.Context, err error) {
	var cooldown *CooldownError
	switch {
	case errors.As(err, &cooldown):
		respond.Error(c, http.StatusBadRequest, "cooldown_active", cooldown.Error(), gin.H{
			"retryAfterSeconds": cooldown.RetryAfterSeconds(),
		})
	case errors.Is(err, ErrCapacityReached):
		respond.Error(c, http.StatusBadRequest, "capacity_reached", ErrCapacityReached.Error(), nil)
	case errors.Is(err, ErrVacancyExpired):
		respond.Error(c, http.StatusBadRequest, "vacancy_expired", ErrVacancyExpired.Error(), nil)
	case errors.Is(err, ErrVacancyInactive):
		respond.Error(c, http.StatusBadRequest, "vacancy_inactive", ErrVacancyInactive.Error(), nil)
	case errors.Is(err, ErrVacancyNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "vacancy not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, ErrUnauthorized):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "not authorized", nil)
	case errors.Is(err, ErrPersistence):
		respond.Error(c, http.StatusInternalServerError, "persistence_failed", "failed to store application", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "application operation failed", nil)
	}
}
