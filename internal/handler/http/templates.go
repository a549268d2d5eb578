package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/utils"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// templateRequest accepts both payload shapes the frontend has used over
// time: fields nested under "template" or spread flat across the body.
// The nested shape wins when both are present.
type templateRequest struct {
	InitData string `json:"initData"`
	ID       string `json:"id"`

	Template *models.TemplateInput `json:"template"`
	models.TemplateInput
}

func (req *templateRequest) input() models.TemplateInput {
	if req.Template != nil {
		return *req.Template
	}
	return req.TemplateInput
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.services.AuthService.RequireAdmin(ctx, credentialsFromRequest(r, "")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	templates, err := h.services.TemplateService.ListTemplates(ctx, true)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}

	utils.WriteJSON(w, map[string]any{"templates": templates}, http.StatusOK)
}

func (h *Handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]string{"error": "Некорректный запрос"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.RequireAdmin(ctx, credentialsFromRequest(r, req.InitData)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	template, err := h.services.TemplateService.CreateTemplate(ctx, req.input())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{"template": template}, http.StatusCreated)
}

func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]string{"error": "Некорректный запрос"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.RequireAdmin(ctx, credentialsFromRequest(r, req.InitData)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	template, err := h.services.TemplateService.UpdateTemplate(ctx, req.ID, req.input())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{"template": template}, http.StatusOK)
}

func (h *Handler) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// DELETE may carry the id in the body or as a query parameter.
	var req templateRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Debug().Err(err).Msg("unreadable delete body, falling back to query params")
		}
	}
	if req.ID == "" {
		req.ID = r.URL.Query().Get("id")
	}

	if _, err := h.services.AuthService.RequireAdmin(ctx, credentialsFromRequest(r, req.InitData)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if err := h.services.TemplateService.DeleteTemplate(ctx, req.ID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}
