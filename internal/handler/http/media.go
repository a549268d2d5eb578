package http

import (
	"encoding/json"
	"net/http"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/utils"
	"github.com/konstrukt-app/konstrukt-be/models"
)

type uploadMediaRequest struct {
	InitData string `json:"initData"`

	File     string `json:"file"`
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

func (h *Handler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req uploadMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]string{"error": "Некорректный запрос"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.RequireAdmin(ctx, credentialsFromRequest(r, req.InitData)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	url, err := h.services.MediaService.UploadMedia(ctx, models.MediaUpload{
		File:     req.File,
		Filename: req.Filename,
		Type:     req.Type,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"url": url}, http.StatusCreated)
}
