package partners_get

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

	partners, err := h.service.Partners(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrAccessDenied):
			httpio.WriteError(w, h.log, http.StatusForbidden, err)
		default:
			httpio.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.Users(partners))
}
