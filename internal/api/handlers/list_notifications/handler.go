package list_notifications

import (
	"net/http"
	"strconv"

	"github.com/m04kA/AgriRent-BookingService/internal/api/handlers"
	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidParams = "некорректное значение unreadOnly"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/notifications
// Query params: unreadOnly (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	unreadOnly := false
	if v := r.URL.Query().Get("unreadOnly"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /users/me/notifications - Invalid unreadOnly: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		unreadOnly = parsed
	}

	result, err := h.service.List(r.Context(), userID, unreadOnly)
	if err != nil {
		h.logger.Error("GET /users/me/notifications - Failed to list notifications: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
