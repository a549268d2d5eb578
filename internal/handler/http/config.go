package http

import (
	"net/http"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/utils"
	"github.com/konstrukt-app/konstrukt-be/models"
)

type clientConfigResponse struct {
	BotConfigured bool              `json:"botConfigured"`
	Templates     []models.Template `json:"templates"`
}

// clientConfig serves the bootstrap data the Mini App loads on startup.
// Template loading failures degrade to an empty list so the frontend can
// still render.
func (h *Handler) clientConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	templates, err := h.services.TemplateService.ListTemplates(ctx, false)
	if err != nil {
		log.Err(err).Msg("loading active templates for client config failed")
		templates = nil
	}
	if templates == nil {
		templates = []models.Template{}
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	utils.WriteJSON(w, clientConfigResponse{
		BotConfigured: h.services.BotService.Configured(),
		Templates:     templates,
	}, http.StatusOK)
}
