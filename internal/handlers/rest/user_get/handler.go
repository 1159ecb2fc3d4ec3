package user_get

import (
	"errors"
	"net/http"

	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/service/user"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpio.Actor(r)
	if !ok {
		httpio.WriteError(w, h.log, http.StatusUnauthorized, httpio.ErrUnauthorized)
		return
	}

	userID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	detail, err := h.service.Detail(r.Context(), actor, userID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID):
			httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, user.ErrAccessDenied):
			httpio.WriteError(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, user.ErrUserNotFound):
			httpio.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			httpio.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, dto.UserDetail{
		User:           presenter.User(detail.User),
		RecentBookings: presenter.Bookings(detail.RecentBookings),
		BookingsCount:  detail.BookingsCount,
	})
}
