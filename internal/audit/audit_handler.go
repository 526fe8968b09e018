package audit

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load audit log", nil)
		return
	}

	response.Success(c, http.StatusOK, entries, nil)
}

func mapToListResponse(entries []Entry) []EntryResponse {
	result := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := EntryResponse{
			ID:         e.ID.String(),
			ActorID:    e.ActorID.String(),
			ActorRole:  e.ActorRole,
			Action:     e.Action,
			TargetType: e.TargetType,
			TargetID:   e.TargetID,
			CreatedAt:  e.CreatedAt,
		}
		if len(e.Metadata) > 0 {
			var meta map[string]any
			if json.Unmarshal(e.Metadata, &meta) == nil {
				resp.Metadata = meta
			}
		}
		result = append(result, resp)
	}
	return result
}
