package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetBilling(c *gin.Context) {
	resp, err := h.service.GetBillingView(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateOverride(c *gin.Context) {
	var req CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateOverride(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("user_id"),
		c.GetString("role"),
		req,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) DeleteOverride(c *gin.Context) {
	err := h.service.DeleteOverride(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("user_id"),
		c.GetString("role"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddNote(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("user_id"),
		c.GetString("role"),
		req,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListNotes(c *gin.Context) {
	resp, err := h.service.ListNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreatePortalLink(c *gin.Context) {
	resp, err := h.service.CreatePortalLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
