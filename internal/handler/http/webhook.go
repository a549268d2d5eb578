package http

import (
	"encoding/json"
	"net/http"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/service"
	"github.com/konstrukt-app/konstrukt-be/internal/utils"
	"github.com/konstrukt-app/konstrukt-be/models"
)

func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.services.BotService.Configured() {
		h.writeServiceError(w, r, service.ErrBotNotConfigured)
		return
	}

	var update models.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		// Always acknowledge: a non-2xx makes the Bot API redeliver the
		// same broken update indefinitely.
		log.Err(err).Msg("invalid webhook payload")
		utils.WriteJSON(w, map[string]bool{"ok": true}, http.StatusOK)
		return
	}

	if err := h.services.BotService.HandleUpdate(ctx, update); err != nil {
		log.Err(err).Int64("update_id", update.UpdateID).Msg("processing webhook update failed")
	}

	utils.WriteJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (h *Handler) setupWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	url, err := h.services.BotService.RegisterWebhook(ctx)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Info().Str("url", url).Msg("webhook registered")
	utils.WriteJSON(w, map[string]any{"ok": true, "url": url}, http.StatusOK)
}
