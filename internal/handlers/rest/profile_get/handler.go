package profile_get

import (
	"errors"
	"net/http"

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

	profile, err := h.service.Profile(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			httpio.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			httpio.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.User(*profile))
}
