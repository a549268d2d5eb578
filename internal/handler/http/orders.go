package http

import (
	"encoding/json"
	"net/http"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/utils"
	"github.com/konstrukt-app/konstrukt-be/models"
)

type reviewOrderRequest struct {
	InitData string `json:"initData"`

	ID              string  `json:"id"`
	Approved        *bool   `json:"approved"`
	RevisionComment *string `json:"revision_comment"`
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.services.AuthService.RequireAdmin(ctx, credentialsFromRequest(r, "")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	orders, err := h.services.OrderService.ListOrders(ctx)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.WriteJSON(w, map[string]any{"orders": orders}, http.StatusOK)
}

func (h *Handler) reviewOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req reviewOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]string{"error": "Некорректный запрос"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.RequireAdmin(ctx, credentialsFromRequest(r, req.InitData)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	order, err := h.services.OrderService.ReviewOrder(ctx, models.OrderReview{
		ID:              req.ID,
		Approved:        req.Approved,
		RevisionComment: req.RevisionComment,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{"order": order}, http.StatusOK)
}
