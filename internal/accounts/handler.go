package accounts

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
	rg.POST("/auth/register/employer", h.registerEmployer)
	rg.POST("/auth/register/applicant", h.registerApplicant)
	rg.POST("/auth/login", h.login)
}

func (h *Handler) registerEmployer(c *gin.Context) {
	var in RegisterEmployerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	employer, err := h.Svc.RegisterEmployer(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.Created(c, employer)
}

func (h *Handler) registerApplicant(c *gin.Context) {
	var in RegisterApplicantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	applicant, err := h.Svc.RegisterApplicant(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.Created(c, applicant)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, token)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrUsernameTaken):
		respond.Error(c, http.StatusUnprocessableEntity, "already_exists", "username already in use", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "account not found", nil)
	case errors.Is(err, ErrInvalidCredentials):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "account operation failed", nil)
	}
}
