package http

import (
	"errors"
	"net/http"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/service"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
	"github.com/konstrukt-app/konstrukt-be/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrCommentRequired:     http.StatusBadRequest,
	service.ErrMediaNotConfigured:  http.StatusInternalServerError,
	service.ErrBotNotConfigured:    http.StatusInternalServerError,

	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrOrderNotFound:     http.StatusNotFound,
	store.ErrTemplateNotFound:  http.StatusNotFound,
	store.ErrTemplateNameTaken: http.StatusConflict,
	store.ErrNothingToUpdate:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the user-facing messages shown inside the Mini App.
// The frontend renders them verbatim, hence Russian.
var errorMessageMap = map[error]string{
	service.ErrUnauthenticated:    "Необходима авторизация",
	service.ErrForbidden:          "Доступ запрещён",
	service.ErrCommentRequired:    "Комментарий обязателен при отправке на доработку",
	service.ErrMediaNotConfigured: "Хранилище файлов не настроено",
	service.ErrBotNotConfigured:   "Бот не настроен",

	store.ErrOrderNotFound:     "Заказ не найден",
	store.ErrTemplateNotFound:  "Шаблон не найден",
	store.ErrTemplateNameTaken: "Шаблон с таким названием уже существует",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if status >= http.StatusInternalServerError {
		return "Внутренняя ошибка сервера"
	}
	return err.Error()
}

// writeServiceError maps a service or store error onto an HTTP status and a
// JSON error body. Unknown errors become 500 without leaking their text.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err, status)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, map[string]string{"error": message}, status)
}
